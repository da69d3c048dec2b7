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

func TestProductService_Create_OK(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	svc := NewProductService(productRepo, newTestLogger(t))

	productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	product, err := svc.Create(context.Background(), domain.CreateProductInput{
		Name:       "Hand-carved mahjong set",
		PriceCents: 120000,
		Quantity:   3,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, domain.ProductStatusActive, product.Status)
}

func TestProductService_Create_ZeroStockStartsOutOfStock(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	svc := NewProductService(productRepo, newTestLogger(t))

	productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	product, err := svc.Create(context.Background(), domain.CreateProductInput{
		Name:       "Porcelain teacup",
		PriceCents: 8000,
		Quantity:   0,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ProductStatusOutOfStock, product.Status)
}

func TestProductService_Create_Invalid(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	svc := NewProductService(productRepo, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateProductInput{Name: "", PriceCents: 100, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreateProductInput{Name: "x", PriceCents: -1, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreateProductInput{Name: "x", PriceCents: 100, Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductService_Get_NotFound(t *testing.T) {
	productRepo := mocks.NewMockProductRepo(t)
	svc := NewProductService(productRepo, newTestLogger(t))

	productRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrProductNotFound)

	_, err := svc.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
