package ports

import (
	"context"
	"time"

	"github.com/ikaros55439147/craft-booking/internal/domain"
)

type OrderRepo interface {
	// CreateWithItems reserves stock for every line item and persists
	// the order in one transaction. Prices are pinned from the locked
	// product rows; expectedTotalCents must match the pinned total
	// before any quantity is decremented.
	CreateWithItems(ctx context.Context, o *domain.Order, expectedTotalCents int64) error

	// Cancel releases every line item back to the ledger (guarded
	// against double release) and moves the order to cancelled.
	Cancel(ctx context.Context, orderID string) (*domain.Order, error)

	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	MarkPaid(ctx context.Context, orderID, paymentRef string) error
	ListExpiredPending(ctx context.Context, olderThan time.Time) ([]string, error)
}
