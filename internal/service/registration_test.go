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
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newRegistrationService(t *testing.T) (*RegistrationService, *mocks.MockRegistrationRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockNotifier) {
	t.Helper()
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewRegistrationService(registrationRepo, eventRepo, userRepo, notifier, newTestLogger(t))
	return svc, registrationRepo, eventRepo, userRepo, notifier
}

func TestRegistrationService_Register_Confirmed(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, notifier := newRegistrationService(t)

	event := &domain.Event{ID: "e1", Title: "Bamboo weaving"}
	user := &domain.User{ID: "u1", Username: "alice"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	registrationRepo.EXPECT().Register(mock.Anything, mock.Anything).
		Run(func(_ context.Context, reg *domain.Registration) {
			reg.Status = domain.RegistrationStatusConfirmed
		}).
		Return(nil)
	notifier.EXPECT().Notify(mock.Anything, user, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationRegistrationConfirmed
	})).Return()

	reg, err := svc.Register(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusConfirmed, reg.Status)
	assert.Equal(t, "e1", reg.EventID)
	assert.Equal(t, "u1", reg.UserID)
	assert.NotEmpty(t, reg.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_Register_Waitlisted(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, notifier := newRegistrationService(t)

	event := &domain.Event{ID: "e1", Title: "Mahjong tile carving"}
	user := &domain.User{ID: "u1", Username: "alice"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	registrationRepo.EXPECT().Register(mock.Anything, mock.Anything).
		Run(func(_ context.Context, reg *domain.Registration) {
			reg.Status = domain.RegistrationStatusWaitlisted
		}).
		Return(nil)
	notifier.EXPECT().Notify(mock.Anything, user, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationRegistrationWaitlisted
	})).Return()

	reg, err := svc.Register(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusWaitlisted, reg.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Register_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Register(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_Register_AlreadyRegistered(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	registrationRepo.EXPECT().Register(mock.Anything, mock.Anything).Return(domain.ErrAlreadyRegistered)

	_, err := svc.Register(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationService_Cancel_PromotesWaitlisted(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, notifier := newRegistrationService(t)

	event := &domain.Event{ID: "e1", Title: "Porcelain painting"}
	cancelled := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusCancelled}
	promoted := &domain.Registration{ID: "r2", EventID: "e1", UserID: "u2", Status: domain.RegistrationStatusConfirmed}
	user := &domain.User{ID: "u1"}
	promotedUser := &domain.User{ID: "u2"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	registrationRepo.EXPECT().Cancel(mock.Anything, "e1", "u1").
		Return(&domain.CancelResult{Cancelled: cancelled, Promoted: promoted}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(promotedUser, nil)
	notifier.EXPECT().Notify(mock.Anything, user, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationRegistrationCancelled
	})).Return()
	notifier.EXPECT().Notify(mock.Anything, promotedUser, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationWaitlistPromoted
	})).Return()

	result, err := svc.Cancel(context.Background(), "e1", "u1")

	require.NoError(t, err)
	require.NotNil(t, result.Promoted)
	assert.Equal(t, "u2", result.Promoted.UserID)
	assert.Equal(t, domain.RegistrationStatusConfirmed, result.Promoted.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Cancel_NoPromotion(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, notifier := newRegistrationService(t)

	event := &domain.Event{ID: "e1"}
	cancelled := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusCancelled}
	user := &domain.User{ID: "u1"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	registrationRepo.EXPECT().Cancel(mock.Anything, "e1", "u1").
		Return(&domain.CancelResult{Cancelled: cancelled}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().Notify(mock.Anything, user, mock.Anything).Return()

	result, err := svc.Cancel(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Nil(t, result.Promoted)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Cancel_InvalidTransition(t *testing.T) {
	svc, registrationRepo, eventRepo, _, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	registrationRepo.EXPECT().Cancel(mock.Anything, "e1", "u1").Return(nil, domain.ErrInvalidTransition)

	_, err := svc.Cancel(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRegistrationService_MarkAttendance_OK(t *testing.T) {
	svc, registrationRepo, eventRepo, _, _ := newRegistrationService(t)

	event := &domain.Event{
		ID:          "e1",
		OrganizerID: "org1",
		StartsAt:    time.Now().Add(-3 * time.Hour),
		EndsAt:      time.Now().Add(-time.Hour),
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	registrationRepo.EXPECT().
		MarkAttendance(mock.Anything, "e1", "u1", domain.RegistrationStatusAttended, mock.Anything).
		Return(nil)

	err := svc.MarkAttendance(context.Background(), "e1", "org1", "u1", domain.RegistrationStatusAttended)

	require.NoError(t, err)
}

func TestRegistrationService_MarkAttendance_NotOrganizer(t *testing.T) {
	svc, _, eventRepo, _, _ := newRegistrationService(t)

	event := &domain.Event{
		ID:          "e1",
		OrganizerID: "org1",
		EndsAt:      time.Now().Add(-time.Hour),
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	err := svc.MarkAttendance(context.Background(), "e1", "someone-else", "u1", domain.RegistrationStatusNoShow)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestRegistrationService_MarkAttendance_EventNotEnded(t *testing.T) {
	svc, _, eventRepo, _, _ := newRegistrationService(t)

	event := &domain.Event{
		ID:          "e1",
		OrganizerID: "org1",
		StartsAt:    time.Now().Add(time.Hour),
		EndsAt:      time.Now().Add(3 * time.Hour),
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	err := svc.MarkAttendance(context.Background(), "e1", "org1", "u1", domain.RegistrationStatusAttended)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRegistrationService_MarkAttendance_BadOutcome(t *testing.T) {
	svc, _, _, _, _ := newRegistrationService(t)

	err := svc.MarkAttendance(context.Background(), "e1", "org1", "u1", domain.RegistrationStatusConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_SubmitFeedback_OK(t *testing.T) {
	svc, registrationRepo, _, _, _ := newRegistrationService(t)

	registrationRepo.EXPECT().SetFeedback(mock.Anything, "e1", "u1", "great class", 5).Return(nil)

	err := svc.SubmitFeedback(context.Background(), "e1", "u1", "great class", 5)

	require.NoError(t, err)
}

func TestRegistrationService_SubmitFeedback_InvalidRating(t *testing.T) {
	svc, _, _, _, _ := newRegistrationService(t)

	err := svc.SubmitFeedback(context.Background(), "e1", "u1", "meh", 6)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestRegistrationService_SubmitFeedback_AlreadyGiven(t *testing.T) {
	svc, registrationRepo, _, _, _ := newRegistrationService(t)

	registrationRepo.EXPECT().SetFeedback(mock.Anything, "e1", "u1", "again", 4).
		Return(domain.ErrFeedbackAlreadyGiven)

	err := svc.SubmitFeedback(context.Background(), "e1", "u1", "again", 4)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFeedbackAlreadyGiven)
}

func TestRegistrationService_ListByEvent_OrganizerOnly(t *testing.T) {
	svc, _, eventRepo, _, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OrganizerID: "org1"}, nil)

	_, err := svc.ListByEvent(context.Background(), "e1", "not-org")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestRegistrationService_ListByEvent_OK(t *testing.T) {
	svc, registrationRepo, eventRepo, _, _ := newRegistrationService(t)

	regs := []*domain.Registration{
		{ID: "r1", Status: domain.RegistrationStatusConfirmed},
		{ID: "r2", Status: domain.RegistrationStatusWaitlisted},
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OrganizerID: "org1"}, nil)
	registrationRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(regs, nil)

	got, err := svc.ListByEvent(context.Background(), "e1", "org1")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
