package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sympohub/dashboard/internal/clock"
	"github.com/sympohub/dashboard/internal/domain"
)

type AdminRepository interface {
	CreateEvent(ctx context.Context, event domain.Event) error
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

type AdminService struct {
	repo     AdminRepository
	clock    clock.Clock
	validate *validator.Validate
}

func NewAdminService(repo AdminRepository, clk clock.Clock) *AdminService {
	return &AdminService{
		repo:     repo,
		clock:    clk,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type CreateEventInput struct {
	Name             string `validate:"required"`
	StartDate        *time.Time
	ParticipantCount int                `validate:"gte=0"`
	Status           domain.EventStatus `validate:"omitempty,oneof=active pending completed cancelled"`
}

func (s *AdminService) CreateEvent(ctx context.Context, in CreateEventInput) (domain.Event, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate.Struct(in); err != nil {
		return domain.Event{}, inputError(err)
	}

	startDate := clock.Today(s.clock)
	if in.StartDate != nil {
		startDate = clock.DateOf(*in.StartDate)
	}
	status := in.Status
	if status == "" {
		status = domain.EventStatusPending
	}

	event := domain.Event{
		ID:               newUUID(),
		Name:             in.Name,
		StartDate:        startDate,
		ParticipantCount: in.ParticipantCount,
		Status:           status,
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *AdminService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.repo.ListEvents(ctx)
}

// inputError maps the first failed field onto its domain error.
func inputError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].Field() {
	case "Name":
		return domain.ErrEventNameRequired
	case "ParticipantCount":
		return domain.ErrInvalidParticipantCount
	case "Status":
		return domain.ErrInvalidStatus
	default:
		return err
	}
}
