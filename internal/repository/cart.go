package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// CartRepository keeps one row per user with the items as a JSONB
// document. The cart is advisory state, so whole-document replace is
// good enough.
type CartRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCartRepo(db *dbpg.DB) *CartRepository {
	return &CartRepository{db: db, strategy: defaultStrategy()}
}

// Get returns the user's cart, or an empty cart when none was saved.
func (r *CartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT items, updated_at FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var raw []byte
	var updatedAt time.Time
	if err = row.Scan(&raw, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.Cart{UserID: userID}, nil
		}
		return nil, fmt.Errorf("scan cart: %w", err)
	}

	var items []domain.CartItem
	if err = json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}

	return &domain.Cart{UserID: userID, Items: items, UpdatedAt: updatedAt}, nil
}

func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	raw, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("encode cart items: %w", err)
	}

	_, err = r.db.ExecWithRetry(ctx, r.strategy,
		`INSERT INTO carts (user_id, items, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE SET items = EXCLUDED.items, updated_at = now()`,
		cart.UserID, raw,
	)
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
