package mocks

import (
	"context"

	"helpmap/internal/model"
	"helpmap/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockHelpRequestService struct {
	mock.Mock
}

func (m *MockHelpRequestService) Submit(ctx context.Context, in service.SubmitInput, ip string) error {
	args := m.Called(ctx, in, ip)
	return args.Error(0)
}

func (m *MockHelpRequestService) List(ctx context.Context) ([]model.HelpRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestService) Get(ctx context.Context, id int64) (*model.HelpRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestService) Delete(ctx context.Context, id int64, ip string) error {
	args := m.Called(ctx, id, ip)
	return args.Error(0)
}
