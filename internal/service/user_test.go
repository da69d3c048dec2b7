package service

import (
	"context"
	"testing"

	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/ikaros55439147/craft-booking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice" && u.ID != ""
	})).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserService_Create_EmptyUsername(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "   "})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domain.ErrValidation)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "taken"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Get_NotFound(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_List_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, newTestLogger(t))

	users := []*domain.User{{ID: "u1", Username: "alice"}, {ID: "u2", Username: "bob"}}
	userRepo.EXPECT().List(mock.Anything).Return(users, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
