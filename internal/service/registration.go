package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/ikaros55439147/craft-booking/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	registrationRepo ports.RegistrationRepo
	eventRepo        ports.EventRepo
	userRepo         ports.UserRepo
	notifier         ports.Notifier
	logger           logger.Logger
}

func NewRegistrationService(
	registrationRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		logger:           logger,
	}
}

// Register signs the user up for the event. The confirmed/waitlisted
// decision happens inside the repository transaction; this layer only
// checks existence up front and reports the outcome.
func (s *RegistrationService) Register(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	reg := &domain.Registration{
		ID:           uuid.New().String(),
		EventID:      eventID,
		UserID:       userID,
		RegisteredAt: time.Now().UTC(),
	}
	if err = s.registrationRepo.Register(ctx, reg); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("status", string(reg.Status)),
	)

	n := domain.Notification{
		Type:     domain.NotificationRegistrationConfirmed,
		Title:    "Registration confirmed",
		Message:  fmt.Sprintf("Your seat for %q is confirmed.", event.Title),
		Metadata: map[string]string{"event_id": eventID},
	}
	if reg.Status == domain.RegistrationStatusWaitlisted {
		n.Type = domain.NotificationRegistrationWaitlisted
		n.Title = "Added to waitlist"
		n.Message = fmt.Sprintf("%q is full. You are on the waitlist and will be promoted automatically when a seat frees up.", event.Title)
	}
	go s.notifier.Notify(context.WithoutCancel(ctx), user, n)

	return reg, nil
}

// Cancel withdraws the user's registration. When the cancellation
// frees a confirmed seat, the repository promotes the oldest
// waitlisted registration and we notify the promoted user here.
func (s *RegistrationService) Cancel(ctx context.Context, eventID, userID string) (*domain.CancelResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	result, err := s.registrationRepo.Cancel(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("cancel registration: %w", err)
	}

	s.logger.Info("registration cancelled",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	if user, uerr := s.userRepo.GetByID(ctx, userID); uerr == nil {
		go s.notifier.Notify(context.WithoutCancel(ctx), user, domain.Notification{
			Type:     domain.NotificationRegistrationCancelled,
			Title:    "Registration cancelled",
			Message:  fmt.Sprintf("Your registration for %q was cancelled.", event.Title),
			Metadata: map[string]string{"event_id": eventID},
		})
	} else {
		s.logger.Error("get user for cancellation notification",
			logger.String("user_id", userID),
			logger.Any("error", uerr),
		)
	}

	if result.Promoted != nil {
		s.logger.Info("waitlist promotion",
			logger.String("event_id", eventID),
			logger.String("promoted_user_id", result.Promoted.UserID),
		)

		promotedUser, uerr := s.userRepo.GetByID(ctx, result.Promoted.UserID)
		if uerr != nil {
			s.logger.Error("get promoted user for notification",
				logger.String("user_id", result.Promoted.UserID),
				logger.Any("error", uerr),
			)
		} else {
			go s.notifier.Notify(context.WithoutCancel(ctx), promotedUser, domain.Notification{
				Type:     domain.NotificationWaitlistPromoted,
				Title:    "You got a seat",
				Message:  fmt.Sprintf("A seat for %q opened up and your waitlist spot was promoted to a confirmed registration.", event.Title),
				Metadata: map[string]string{"event_id": eventID},
			})
		}
	}

	return result, nil
}

// MarkAttendance records attended/no_show for a participant. Only the
// event organizer may do this, and only after the event has ended.
func (s *RegistrationService) MarkAttendance(ctx context.Context, eventID, requesterID, userID string, outcome domain.RegistrationStatus) error {
	if !outcome.IsAttendanceOutcome() {
		return fmt.Errorf("%w: %q is not an attendance outcome", domain.ErrValidation, outcome)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}
	if event.OrganizerID != requesterID {
		return fmt.Errorf("%w: only the organizer can record attendance", domain.ErrAccessDenied)
	}

	now := time.Now().UTC()
	if !event.Ended(now) {
		return fmt.Errorf("%w: attendance can only be recorded after the event ends", domain.ErrInvalidTransition)
	}

	if err = s.registrationRepo.MarkAttendance(ctx, eventID, userID, outcome, now); err != nil {
		return fmt.Errorf("mark attendance: %w", err)
	}

	s.logger.Info("attendance recorded",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("outcome", string(outcome)),
	)

	return nil
}

// SubmitFeedback stores a one-time rating and comment from an attendee.
func (s *RegistrationService) SubmitFeedback(ctx context.Context, eventID, userID, feedback string, rating int) error {
	if !domain.ValidRating(rating) {
		return domain.ErrInvalidRating
	}

	if err := s.registrationRepo.SetFeedback(ctx, eventID, userID, feedback, rating); err != nil {
		return fmt.Errorf("submit feedback: %w", err)
	}

	s.logger.Info("feedback submitted",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("rating", rating),
	)

	return nil
}

func (s *RegistrationService) Get(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	reg, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return reg, nil
}

// ListByEvent returns the event roster. Organizer only.
func (s *RegistrationService) ListByEvent(ctx context.Context, eventID, requesterID string) ([]*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.OrganizerID != requesterID {
		return nil, fmt.Errorf("%w: only the organizer can view the roster", domain.ErrAccessDenied)
	}

	regs, err := s.registrationRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
