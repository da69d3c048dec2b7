package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/ikaros55439147/craft-booking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	logger    logger.Logger
}

func NewEventService(eventRepo ports.EventRepo, userRepo ports.UserRepo, logger logger.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: event title is required", domain.ErrValidation)
	}
	if !input.StartsAt.Before(input.EndsAt) {
		return nil, fmt.Errorf("%w: event must start before it ends", domain.ErrValidation)
	}
	if input.MaxParticipants != nil && *input.MaxParticipants <= 0 {
		return nil, fmt.Errorf("%w: max participants must be positive", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, input.OrganizerID); err != nil {
		return nil, fmt.Errorf("check organizer: %w", err)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Description:     input.Description,
		OrganizerID:     input.OrganizerID,
		StartsAt:        input.StartsAt,
		EndsAt:          input.EndsAt,
		MaxParticipants: input.MaxParticipants,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", event.OrganizerID),
		logger.String("title", event.Title),
	)

	return event, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// GetDetails returns the event together with its live confirmed and
// waitlisted counts.
func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	details, err := s.eventRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}
	return details, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
