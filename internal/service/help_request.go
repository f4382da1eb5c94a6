package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"helpmap/internal/model"
	"helpmap/internal/repository"
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidCoordinates = errors.New("latitude and longitude must be numbers")
	ErrForbidden          = errors.New("request not found or not authorized to delete")
	ErrNotFound           = errors.New("help request not found")
)

// SubmitInput carries the raw form fields of a submission.
type SubmitInput struct {
	Name      string
	Contact   string
	Location  string
	Latitude  string
	Longitude string
	Message   string
}

// HelpRequestService defines the use cases for help requests.
type HelpRequestService interface {
	// Submit validates presence of every field, stamps time and caller IP, and persists a new row.
	Submit(ctx context.Context, in SubmitInput, ip string) error

	// List returns every stored help request.
	List(ctx context.Context) ([]model.HelpRequest, error)

	// Get returns a single help request by ID.
	Get(ctx context.Context, id int64) (*model.HelpRequest, error)

	// Delete removes the row with id only if it was submitted from ip.
	// A missing row and a foreign row both yield ErrForbidden.
	Delete(ctx context.Context, id int64, ip string) error
}

type helpRequestService struct {
	repo repository.HelpRequestRepository
	loc  *time.Location
	now  func() time.Time
}

// NewHelpRequestService constructs a HelpRequestService stamping timestamps in loc.
func NewHelpRequestService(repo repository.HelpRequestRepository, loc *time.Location) HelpRequestService {
	if loc == nil {
		loc = time.UTC
	}
	return &helpRequestService{repo: repo, loc: loc, now: time.Now}
}

func (s *helpRequestService) Submit(ctx context.Context, in SubmitInput, ip string) error {
	in = SubmitInput{
		Name:      strings.TrimSpace(in.Name),
		Contact:   strings.TrimSpace(in.Contact),
		Location:  strings.TrimSpace(in.Location),
		Latitude:  strings.TrimSpace(in.Latitude),
		Longitude: strings.TrimSpace(in.Longitude),
		Message:   strings.TrimSpace(in.Message),
	}
	for _, v := range []string{in.Name, in.Contact, in.Location, in.Latitude, in.Longitude, in.Message} {
		if v == "" {
			return ErrMissingFields
		}
	}

	lat, err := parseCoordinate(in.Latitude)
	if err != nil {
		return err
	}
	lng, err := parseCoordinate(in.Longitude)
	if err != nil {
		return err
	}

	hr := &model.HelpRequest{
		Name:      in.Name,
		Contact:   in.Contact,
		Location:  in.Location,
		Latitude:  lat,
		Longitude: lng,
		Message:   in.Message,
		Timestamp: s.now().In(s.loc).Format(model.TimestampLayout),
		IPAddress: ip,
	}
	if _, err := s.repo.Create(ctx, hr); err != nil {
		return fmt.Errorf("create help request: %w", err)
	}
	return nil
}

func (s *helpRequestService) List(ctx context.Context) ([]model.HelpRequest, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list help requests: %w", err)
	}
	return items, nil
}

func (s *helpRequestService) Get(ctx context.Context, id int64) (*model.HelpRequest, error) {
	hr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return hr, nil
}

func (s *helpRequestService) Delete(ctx context.Context, id int64, ip string) error {
	deleted, err := s.repo.DeleteByIDAndIP(ctx, id, ip)
	if err != nil {
		return fmt.Errorf("delete help request: %w", err)
	}
	if !deleted {
		return ErrForbidden
	}
	return nil
}

// parseCoordinate accepts any finite decimal number.
func parseCoordinate(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidCoordinates
	}
	return f, nil
}
