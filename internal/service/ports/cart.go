package ports

import (
	"context"

	"github.com/ikaros55439147/craft-booking/internal/domain"
)

type CartRepo interface {
	// Get returns the user's cart, or an empty cart if none exists.
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Clear(ctx context.Context, userID string) error
}
