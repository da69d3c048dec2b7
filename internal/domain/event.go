package domain

import "time"

// Event is a craft course or workshop with an optional seat cap.
// A nil MaxParticipants means the event is uncapped.
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	OrganizerID     string    `json:"organizer_id"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RegistrationOpen reports whether new registrations are accepted.
// The window closes the moment the event starts.
func (e *Event) RegistrationOpen(now time.Time) bool {
	return now.Before(e.StartsAt)
}

// Ended reports whether the event is over. Attendance can only be
// recorded once this is true.
func (e *Event) Ended(now time.Time) bool {
	return now.After(e.EndsAt)
}

// HasSeatFor reports whether one more confirmed registration fits
// given the current confirmed count.
func (e *Event) HasSeatFor(confirmed int) bool {
	return e.MaxParticipants == nil || confirmed < *e.MaxParticipants
}

type EventDetails struct {
	Event           Event `json:"event"`
	ConfirmedCount  int   `json:"confirmed_count"`
	WaitlistedCount int   `json:"waitlisted_count"`
}

type CreateEventInput struct {
	Title           string
	Description     string
	OrganizerID     string
	StartsAt        time.Time
	EndsAt          time.Time
	MaxParticipants *int
}
