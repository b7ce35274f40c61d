package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/campusai-api/internal/models"
	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
)

type eventRepository interface {
	List(ctx context.Context) ([]models.EventWithTags, error)
	FindFeatured(ctx context.Context) (*models.EventWithTags, error)
	Register(ctx context.Context, eventID, userID int) (*models.EventRegistration, error)
}

// EventService serves campus events and registrations.
type EventService struct {
	repo   eventRepository
	logger *zap.Logger
}

// NewEventService constructs an EventService.
func NewEventService(repo eventRepository, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, logger: logger}
}

// List returns every event, tags attached, soonest first.
func (s *EventService) List(ctx context.Context) ([]models.EventWithTags, error) {
	return s.repo.List(ctx)
}

// Featured returns the featured event, nil when none is flagged.
func (s *EventService) Featured(ctx context.Context) (*models.EventWithTags, error) {
	return s.repo.FindFeatured(ctx)
}

// Register signs the user up for the event. Repeating the call returns the
// original registration.
func (s *EventService) Register(ctx context.Context, eventID, userID int) (*models.EventRegistration, error) {
	if eventID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid event id")
	}

	reg, err := s.repo.Register(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("event registration",
		zap.Int("event_id", eventID),
		zap.Int("user_id", userID),
		zap.Int("registration_id", reg.ID))
	return reg, nil
}
