package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ikaros55439147/craft-booking/internal/domain"
)

// The stock ledger lives on the products table: quantity is the single
// source of truth and every mutation happens under a row lock taken in
// the caller's transaction. Callers own commit/rollback, so a failed
// claim rolls back every claim made before it.

// stockLine is a product row pinned under FOR UPDATE.
type stockLine struct {
	priceCents int64
	quantity   int
	status     domain.ProductStatus
}

// lockStock locks the product row and verifies it can satisfy qty
// units. It performs no mutation, so callers can validate a whole
// order before the first decrement.
func lockStock(ctx context.Context, tx *sql.Tx, productID string, qty int) (*stockLine, error) {
	var line stockLine
	err := tx.QueryRowContext(ctx,
		`SELECT price_cents, quantity, status FROM products WHERE id = $1 FOR UPDATE`,
		productID,
	).Scan(&line.priceCents, &line.quantity, &line.status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("lock product row: %w", err)
	}

	if line.status != domain.ProductStatusActive {
		return nil, fmt.Errorf("%w: product %s is %s", domain.ErrResourceUnavailable, productID, line.status)
	}
	if line.quantity < qty {
		return nil, fmt.Errorf("%w: product %s has %d in stock, requested %d",
			domain.ErrInsufficientCapacity, productID, line.quantity, qty)
	}

	return &line, nil
}

// claimStock decrements a previously locked product row. The status
// flips to out_of_stock exactly when the counter reaches zero.
func claimStock(ctx context.Context, tx *sql.Tx, productID string, qty int) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE products
		 SET quantity = quantity - $2,
		     status = CASE WHEN quantity - $2 <= 0 THEN $3 ELSE $4 END,
		     updated_at = now()
		 WHERE id = $1 AND quantity >= $2`,
		productID, qty, domain.ProductStatusOutOfStock, domain.ProductStatusActive,
	)
	if err != nil {
		return fmt.Errorf("claim stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("claim stock rows affected: %w", err)
	}
	if n == 0 {
		// The row is locked by this transaction, so this only fires
		// when a caller skipped lockStock.
		return fmt.Errorf("%w: product %s", domain.ErrInsufficientCapacity, productID)
	}
	return nil
}

// releaseStock adds qty units back. Unconditionally additive: the
// quantity invariant cannot be violated by a release, and the status
// flips back to active when the counter leaves zero.
func releaseStock(ctx context.Context, tx *sql.Tx, productID string, qty int) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE products
		 SET quantity = quantity + $2,
		     status = CASE WHEN quantity + $2 > 0 THEN $3 ELSE $4 END,
		     updated_at = now()
		 WHERE id = $1`,
		productID, qty, domain.ProductStatusActive, domain.ProductStatusOutOfStock,
	)
	if err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release stock rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
	}
	return nil
}
