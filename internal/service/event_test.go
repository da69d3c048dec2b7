package service

import (
	"context"
	"testing"
	"time"

	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/ikaros55439147/craft-booking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockUserRepo) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewEventService(eventRepo, userRepo, newTestLogger(t))
	return svc, eventRepo, userRepo
}

func TestEventService_Create_OK(t *testing.T) {
	svc, eventRepo, userRepo := newEventService(t)

	cap := 12
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(&domain.User{ID: "org1"}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:           "Cheongsam tailoring basics",
		OrganizerID:     "org1",
		StartsAt:        time.Now().Add(24 * time.Hour),
		EndsAt:          time.Now().Add(27 * time.Hour),
		MaxParticipants: &cap,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	require.NotNil(t, event.MaxParticipants)
	assert.Equal(t, 12, *event.MaxParticipants)
}

func TestEventService_Create_UncappedAllowed(t *testing.T) {
	svc, eventRepo, userRepo := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(&domain.User{ID: "org1"}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "Open studio day",
		OrganizerID: "org1",
		StartsAt:    time.Now().Add(time.Hour),
		EndsAt:      time.Now().Add(5 * time.Hour),
	})

	require.NoError(t, err)
	assert.Nil(t, event.MaxParticipants)
}

func TestEventService_Create_BadWindow(t *testing.T) {
	svc, _, _ := newEventService(t)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "Backwards event",
		OrganizerID: "org1",
		StartsAt:    time.Now().Add(5 * time.Hour),
		EndsAt:      time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_ZeroCapRejected(t *testing.T) {
	svc, _, _ := newEventService(t)

	zero := 0
	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:           "No seats",
		OrganizerID:     "org1",
		StartsAt:        time.Now().Add(time.Hour),
		EndsAt:          time.Now().Add(2 * time.Hour),
		MaxParticipants: &zero,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_OrganizerNotFound(t *testing.T) {
	svc, _, userRepo := newEventService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "Orphan event",
		OrganizerID: "missing",
		StartsAt:    time.Now().Add(time.Hour),
		EndsAt:      time.Now().Add(2 * time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEventService_GetDetails(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	details := &domain.EventDetails{
		Event:           domain.Event{ID: "e1", Title: "Joss paper crafting"},
		ConfirmedCount:  8,
		WaitlistedCount: 3,
	}

	eventRepo.EXPECT().GetDetails(mock.Anything, "e1").Return(details, nil)

	got, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 8, got.ConfirmedCount)
	assert.Equal(t, 3, got.WaitlistedCount)
}
