package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/ikaros55439147/craft-booking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (*OrderService, *mocks.MockOrderRepo, *mocks.MockUserRepo, *mocks.MockCartRepo, *mocks.MockPaymentGateway, *mocks.MockNotifier) {
	t.Helper()
	orderRepo := mocks.NewMockOrderRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	cartRepo := mocks.NewMockCartRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewOrderService(orderRepo, userRepo, cartRepo, gateway, notifier, newTestLogger(t), 15*time.Minute)
	return svc, orderRepo, userRepo, cartRepo, gateway, notifier
}

func validOrderInput() domain.CreateOrderInput {
	return domain.CreateOrderInput{
		Items: []domain.OrderItemInput{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		ShippingAddress:    "12 Cat Street, Sheung Wan",
		ExpectedTotalCents: 7500,
		CardToken:          "tok_visa",
	}
}

func TestOrderService_Create_Success(t *testing.T) {
	svc, orderRepo, userRepo, cartRepo, gateway, notifier := newOrderService(t)

	user := &domain.User{ID: "u1", Username: "alice"}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	orderRepo.EXPECT().CreateWithItems(mock.Anything, mock.Anything, int64(7500)).
		Run(func(_ context.Context, o *domain.Order, _ int64) {
			o.TotalCents = 7500
		}).
		Return(nil)
	cartRepo.EXPECT().Clear(mock.Anything, "u1").Return(nil)
	gateway.EXPECT().Charge(mock.Anything, mock.Anything, int64(7500), "tok_visa").Return("chrg_123", nil)
	orderRepo.EXPECT().MarkPaid(mock.Anything, mock.Anything, "chrg_123").Return(nil)
	notifier.EXPECT().Notify(mock.Anything, user, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationOrderCreated
	})).Return()

	order, err := svc.Create(context.Background(), "u1", validOrderInput())

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	assert.Equal(t, domain.PaymentStatusCompleted, order.PaymentStatus)
	require.NotNil(t, order.PaymentRef)
	assert.Equal(t, "chrg_123", *order.PaymentRef)
	assert.Equal(t, int64(7500), order.TotalCents)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestOrderService_Create_PaymentDeclined(t *testing.T) {
	svc, orderRepo, userRepo, cartRepo, gateway, notifier := newOrderService(t)

	user := &domain.User{ID: "u1"}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	orderRepo.EXPECT().CreateWithItems(mock.Anything, mock.Anything, int64(7500)).Return(nil)
	cartRepo.EXPECT().Clear(mock.Anything, "u1").Return(nil)
	gateway.EXPECT().Charge(mock.Anything, mock.Anything, mock.Anything, "tok_visa").
		Return("", domain.ErrPaymentDeclined)
	orderRepo.EXPECT().Cancel(mock.Anything, mock.Anything).
		Return(&domain.Order{Status: domain.OrderStatusCancelled}, nil)
	notifier.EXPECT().Notify(mock.Anything, user, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationPaymentDeclined
	})).Return()

	order, err := svc.Create(context.Background(), "u1", validOrderInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentDeclined)
	assert.Nil(t, order)

	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_Create_InsufficientStock(t *testing.T) {
	svc, orderRepo, userRepo, _, _, _ := newOrderService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	orderRepo.EXPECT().CreateWithItems(mock.Anything, mock.Anything, int64(7500)).
		Return(domain.ErrInsufficientCapacity)

	_, err := svc.Create(context.Background(), "u1", validOrderInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
}

func TestOrderService_Create_TotalMismatch(t *testing.T) {
	svc, orderRepo, userRepo, _, _, _ := newOrderService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	orderRepo.EXPECT().CreateWithItems(mock.Anything, mock.Anything, int64(7500)).
		Return(domain.ErrValidation)

	_, err := svc.Create(context.Background(), "u1", validOrderInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderService_Create_NoItems(t *testing.T) {
	svc, _, _, _, _, _ := newOrderService(t)

	input := validOrderInput()
	input.Items = nil

	_, err := svc.Create(context.Background(), "u1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderService_Create_DuplicateItems(t *testing.T) {
	svc, _, _, _, _, _ := newOrderService(t)

	input := validOrderInput()
	input.Items = []domain.OrderItemInput{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p1", Quantity: 3},
	}

	_, err := svc.Create(context.Background(), "u1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderService_Create_CartClearFailureIsNonFatal(t *testing.T) {
	svc, orderRepo, userRepo, cartRepo, gateway, notifier := newOrderService(t)

	user := &domain.User{ID: "u1"}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	orderRepo.EXPECT().CreateWithItems(mock.Anything, mock.Anything, int64(7500)).Return(nil)
	cartRepo.EXPECT().Clear(mock.Anything, "u1").Return(errors.New("redis down"))
	gateway.EXPECT().Charge(mock.Anything, mock.Anything, mock.Anything, "tok_visa").Return("chrg_1", nil)
	orderRepo.EXPECT().MarkPaid(mock.Anything, mock.Anything, "chrg_1").Return(nil)
	notifier.EXPECT().Notify(mock.Anything, user, mock.Anything).Return()

	order, err := svc.Create(context.Background(), "u1", validOrderInput())

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_Cancel_OK(t *testing.T) {
	svc, orderRepo, userRepo, _, _, notifier := newOrderService(t)

	order := &domain.Order{ID: "o1", UserID: "u1", Status: domain.OrderStatusPaid}
	cancelled := &domain.Order{ID: "o1", UserID: "u1", Status: domain.OrderStatusCancelled, PaymentStatus: domain.PaymentStatusRefunded}
	user := &domain.User{ID: "u1"}

	orderRepo.EXPECT().GetByID(mock.Anything, "o1").Return(order, nil)
	orderRepo.EXPECT().Cancel(mock.Anything, "o1").Return(cancelled, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().Notify(mock.Anything, user, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationOrderCancelled
	})).Return()

	got, err := svc.Cancel(context.Background(), "o1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, got.Status)
	assert.Equal(t, domain.PaymentStatusRefunded, got.PaymentStatus)

	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_Cancel_WrongOwner(t *testing.T) {
	svc, orderRepo, _, _, _, _ := newOrderService(t)

	orderRepo.EXPECT().GetByID(mock.Anything, "o1").
		Return(&domain.Order{ID: "o1", UserID: "someone-else"}, nil)

	_, err := svc.Cancel(context.Background(), "o1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestOrderService_Cancel_Delivered(t *testing.T) {
	svc, orderRepo, _, _, _, _ := newOrderService(t)

	orderRepo.EXPECT().GetByID(mock.Anything, "o1").
		Return(&domain.Order{ID: "o1", UserID: "u1", Status: domain.OrderStatusDelivered}, nil)
	orderRepo.EXPECT().Cancel(mock.Anything, "o1").Return(nil, domain.ErrOrderNotCancellable)

	_, err := svc.Cancel(context.Background(), "o1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOrderNotCancellable)
}

func TestOrderService_CancelExpired(t *testing.T) {
	svc, orderRepo, userRepo, _, _, notifier := newOrderService(t)

	user := &domain.User{ID: "u1"}

	orderRepo.EXPECT().ListExpiredPending(mock.Anything, mock.Anything).Return([]string{"o1", "o2"}, nil)
	orderRepo.EXPECT().Cancel(mock.Anything, "o1").
		Return(&domain.Order{ID: "o1", UserID: "u1", Status: domain.OrderStatusCancelled}, nil)
	orderRepo.EXPECT().Cancel(mock.Anything, "o2").
		Return(&domain.Order{ID: "o2", UserID: "u1", Status: domain.OrderStatusCancelled}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil).Twice()
	notifier.EXPECT().Notify(mock.Anything, user, mock.Anything).Return().Twice()

	cancelled, err := svc.CancelExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)

	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_CancelExpired_ContinuesOnFailure(t *testing.T) {
	svc, orderRepo, userRepo, _, _, notifier := newOrderService(t)

	user := &domain.User{ID: "u1"}

	orderRepo.EXPECT().ListExpiredPending(mock.Anything, mock.Anything).Return([]string{"o1", "o2"}, nil)
	orderRepo.EXPECT().Cancel(mock.Anything, "o1").Return(nil, errors.New("db error"))
	orderRepo.EXPECT().Cancel(mock.Anything, "o2").
		Return(&domain.Order{ID: "o2", UserID: "u1", Status: domain.OrderStatusCancelled}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().Notify(mock.Anything, user, mock.Anything).Return()

	cancelled, err := svc.CancelExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)

	time.Sleep(50 * time.Millisecond)
}
