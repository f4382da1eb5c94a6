package mocks

import (
	"context"

	"helpmap/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockHelpRequestRepository struct {
	mock.Mock
}

func (m *MockHelpRequestRepository) Create(ctx context.Context, hr *model.HelpRequest) (*model.HelpRequest, error) {
	args := m.Called(ctx, hr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestRepository) List(ctx context.Context) ([]model.HelpRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestRepository) FindByID(ctx context.Context, id int64) (*model.HelpRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestRepository) DeleteByIDAndIP(ctx context.Context, id int64, ip string) (bool, error) {
	args := m.Called(ctx, id, ip)
	return args.Bool(0), args.Error(1)
}
