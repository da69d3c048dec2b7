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

func newCartService(t *testing.T) (*CartService, *mocks.MockCartRepo, *mocks.MockProductRepo) {
	t.Helper()
	cartRepo := mocks.NewMockCartRepo(t)
	productRepo := mocks.NewMockProductRepo(t)
	svc := NewCartService(cartRepo, productRepo, newTestLogger(t))
	return svc, cartRepo, productRepo
}

func TestCartService_SetItem_Adds(t *testing.T) {
	svc, cartRepo, productRepo := newCartService(t)

	productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Product{ID: "p1"}, nil)
	cartRepo.EXPECT().Get(mock.Anything, "u1").Return(&domain.Cart{UserID: "u1"}, nil)
	cartRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	cart, err := svc.SetItem(context.Background(), "u1", domain.CartItem{ProductID: "p1", Quantity: 2})

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartService_SetItem_ReplacesQuantity(t *testing.T) {
	svc, cartRepo, productRepo := newCartService(t)

	existing := &domain.Cart{
		UserID: "u1",
		Items:  []domain.CartItem{{ProductID: "p1", Quantity: 1}},
	}

	productRepo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Product{ID: "p1"}, nil)
	cartRepo.EXPECT().Get(mock.Anything, "u1").Return(existing, nil)
	cartRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	cart, err := svc.SetItem(context.Background(), "u1", domain.CartItem{ProductID: "p1", Quantity: 5, Notes: "gift wrap"})

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, "gift wrap", cart.Items[0].Notes)
}

func TestCartService_SetItem_ProductNotFound(t *testing.T) {
	svc, _, productRepo := newCartService(t)

	productRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrProductNotFound)

	_, err := svc.SetItem(context.Background(), "u1", domain.CartItem{ProductID: "missing", Quantity: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCartService_SetItem_BadQuantity(t *testing.T) {
	svc, _, _ := newCartService(t)

	_, err := svc.SetItem(context.Background(), "u1", domain.CartItem{ProductID: "p1", Quantity: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCartService_RemoveItem_MissingIsNoOp(t *testing.T) {
	svc, cartRepo, _ := newCartService(t)

	existing := &domain.Cart{
		UserID: "u1",
		Items:  []domain.CartItem{{ProductID: "p1", Quantity: 1}},
	}

	cartRepo.EXPECT().Get(mock.Anything, "u1").Return(existing, nil)

	cart, err := svc.RemoveItem(context.Background(), "u1", "not-in-cart")

	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_RemoveItem_Removes(t *testing.T) {
	svc, cartRepo, _ := newCartService(t)

	existing := &domain.Cart{
		UserID: "u1",
		Items: []domain.CartItem{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 3},
		},
	}

	cartRepo.EXPECT().Get(mock.Anything, "u1").Return(existing, nil)
	cartRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	cart, err := svc.RemoveItem(context.Background(), "u1", "p1")

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestCartService_Validate_AllAvailable(t *testing.T) {
	svc, cartRepo, productRepo := newCartService(t)

	cart := &domain.Cart{
		UserID: "u1",
		Items: []domain.CartItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	}
	products := map[string]*domain.Product{
		"p1": {ID: "p1", PriceCents: 2500, Quantity: 10, Status: domain.ProductStatusActive},
		"p2": {ID: "p2", PriceCents: 5000, Quantity: 1, Status: domain.ProductStatusActive},
	}

	cartRepo.EXPECT().Get(mock.Anything, "u1").Return(cart, nil)
	productRepo.EXPECT().GetByIDs(mock.Anything, []string{"p1", "p2"}).Return(products, nil)

	validation, err := svc.Validate(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, validation.OK)
	assert.Equal(t, int64(10000), validation.TotalCents)
	require.Len(t, validation.Lines, 2)
	assert.True(t, validation.Lines[0].Available)
	assert.True(t, validation.Lines[1].Available)
}

func TestCartService_Validate_FlagsProblems(t *testing.T) {
	svc, cartRepo, productRepo := newCartService(t)

	cart := &domain.Cart{
		UserID: "u1",
		Items: []domain.CartItem{
			{ProductID: "p1", Quantity: 5},
			{ProductID: "p2", Quantity: 1},
			{ProductID: "gone", Quantity: 1},
		},
	}
	products := map[string]*domain.Product{
		"p1": {ID: "p1", PriceCents: 1000, Quantity: 2, Status: domain.ProductStatusActive},
		"p2": {ID: "p2", PriceCents: 3000, Quantity: 0, Status: domain.ProductStatusOutOfStock},
	}

	cartRepo.EXPECT().Get(mock.Anything, "u1").Return(cart, nil)
	productRepo.EXPECT().GetByIDs(mock.Anything, mock.Anything).Return(products, nil)

	validation, err := svc.Validate(context.Background(), "u1")

	require.NoError(t, err)
	assert.False(t, validation.OK)
	assert.Equal(t, int64(0), validation.TotalCents)
	require.Len(t, validation.Lines, 3)
	assert.False(t, validation.Lines[0].Available)
	assert.Contains(t, validation.Lines[0].Reason, "only 2 left")
	assert.False(t, validation.Lines[1].Available)
	assert.False(t, validation.Lines[2].Available)
}

func TestCartService_Validate_EmptyCart(t *testing.T) {
	svc, cartRepo, _ := newCartService(t)

	cartRepo.EXPECT().Get(mock.Anything, "u1").Return(&domain.Cart{UserID: "u1"}, nil)

	_, err := svc.Validate(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}
