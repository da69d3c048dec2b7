package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusConfirmed  RegistrationStatus = "confirmed"
	RegistrationStatusWaitlisted RegistrationStatus = "waitlisted"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"
	RegistrationStatusAttended   RegistrationStatus = "attended"
	RegistrationStatusNoShow     RegistrationStatus = "no_show"
)

// AttendanceOutcomes are the statuses an organizer may record after an
// event ends.
var AttendanceOutcomes = []RegistrationStatus{
	RegistrationStatusAttended,
	RegistrationStatusNoShow,
}

// IsAttendanceOutcome reports whether s is a valid post-event outcome.
func (s RegistrationStatus) IsAttendanceOutcome() bool {
	return s == RegistrationStatusAttended || s == RegistrationStatusNoShow
}

// Registration ties a user to an event seat or waitlist slot.
// One registration per (event, user) pair; a cancelled row still
// blocks re-registration.
type Registration struct {
	ID           string             `json:"id"`
	EventID      string             `json:"event_id"`
	UserID       string             `json:"user_id"`
	Status       RegistrationStatus `json:"status"`
	RegisteredAt time.Time          `json:"registered_at"`
	AttendedAt   *time.Time         `json:"attended_at,omitempty"`
	Feedback     *string            `json:"feedback,omitempty"`
	Rating       *int               `json:"rating,omitempty"`
}

// CancelResult reports what a cancellation did: the cancelled
// registration and, when a confirmed seat was freed, the waitlisted
// registration promoted into it. Promotion notifications are
// dispatched by the caller, not by the state transition itself.
type CancelResult struct {
	Cancelled *Registration
	Promoted  *Registration
}

// ValidRating reports whether r is an acceptable feedback rating.
func ValidRating(r int) bool {
	return r >= 1 && r <= 5
}
