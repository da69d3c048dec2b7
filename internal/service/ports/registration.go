package ports

import (
	"context"
	"time"

	"github.com/ikaros55439147/craft-booking/internal/domain"
)

type RegistrationRepo interface {
	// Register inserts the registration inside one transaction,
	// deciding confirmed vs waitlisted against the seat count read
	// under the same lock. The chosen status is written back to reg.
	Register(ctx context.Context, reg *domain.Registration) error

	// Cancel transitions a registration to cancelled and, when a
	// confirmed seat was freed, promotes the oldest waitlisted
	// registration for the same event.
	Cancel(ctx context.Context, eventID, userID string) (*domain.CancelResult, error)

	MarkAttendance(ctx context.Context, eventID, userID string, outcome domain.RegistrationStatus, at time.Time) error
	SetFeedback(ctx context.Context, eventID, userID, feedback string, rating int) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
}
