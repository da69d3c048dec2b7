package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{db: db, strategy: defaultStrategy()}
}

// CreateWithItems reserves stock for every line and persists the order
// atomically. Two passes over the items: the first locks each product
// row, checks availability and pins the current price; the second
// decrements. Any failure in the first pass aborts before a single
// unit has been claimed, and expectedTotalCents (when non-negative) is
// compared against the pinned prices before anything is written.
func (r *OrderRepository) CreateWithItems(ctx context.Context, o *domain.Order, expectedTotalCents int64) error {
	return inTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		for i := range o.Items {
			line, err := lockStock(ctx, tx, o.Items[i].ProductID, o.Items[i].Quantity)
			if err != nil {
				return err
			}
			o.Items[i].PriceCents = line.priceCents
		}

		total := domain.ItemsTotalCents(o.Items)
		if expectedTotalCents >= 0 && total != expectedTotalCents {
			return fmt.Errorf("%w: cart total %d does not match current prices %d",
				domain.ErrValidation, expectedTotalCents, total)
		}
		o.TotalCents = total

		for _, it := range o.Items {
			if err := claimStock(ctx, tx, it.ProductID, it.Quantity); err != nil {
				return err
			}
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO orders (id, user_id, status, payment_status, total_cents, shipping_address, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			o.ID, o.UserID, o.Status, o.PaymentStatus, o.TotalCents, o.ShippingAddress, o.CreatedAt, o.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, it := range o.Items {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO order_items (order_id, product_id, quantity, price_cents)
				 VALUES ($1, $2, $3, $4)`,
				o.ID, it.ProductID, it.Quantity, it.PriceCents,
			)
			if err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}

		return nil
	})
}

// Cancel releases the order's stock and marks it cancelled. The
// stock_releases guard row makes the release happen at most once per
// order, so a repeated cancel is a harmless no-op on the ledger.
func (r *OrderRepository) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	var out *domain.Order

	err := inTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		o, err := getOrderTx(ctx, tx, orderID)
		if err != nil {
			return err
		}

		if o.Status == domain.OrderStatusCancelled {
			out = o
			return nil
		}
		if !o.Status.Cancellable() {
			return fmt.Errorf("%w: order %s is %s", domain.ErrOrderNotCancellable, orderID, o.Status)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO stock_releases (order_id, released_at) VALUES ($1, now())
			 ON CONFLICT (order_id) DO NOTHING`,
			orderID,
		)
		if err != nil {
			return fmt.Errorf("record stock release: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("record stock release rows affected: %w", err)
		}

		if n > 0 {
			for _, it := range o.Items {
				if err := releaseStock(ctx, tx, it.ProductID, it.Quantity); err != nil {
					return err
				}
			}
		}

		paymentStatus := domain.PaymentStatusFailed
		if o.PaymentStatus == domain.PaymentStatusCompleted {
			paymentStatus = domain.PaymentStatusRefunded
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE orders SET status = $2, payment_status = $3, updated_at = now() WHERE id = $1`,
			orderID, domain.OrderStatusCancelled, paymentStatus,
		)
		if err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}

		o.Status = domain.OrderStatusCancelled
		o.PaymentStatus = paymentStatus
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT id, user_id, status, payment_status, payment_ref, total_cents, shipping_address, created_at, updated_at
			  FROM orders
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	o, err := scanOrder(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	query := `SELECT id, user_id, status, payment_status, payment_ref, total_cents, shipping_address, created_at, updated_at
			  FROM orders
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, o)
	}

	return res, rows.Err()
}

// MarkPaid records a successful charge. Only a pending order can move
// to paid, which keeps a late gateway callback from resurrecting an
// order that was cancelled in the meantime.
func (r *OrderRepository) MarkPaid(ctx context.Context, orderID, paymentRef string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`UPDATE orders
		 SET status = $2, payment_status = $3, payment_ref = $4, updated_at = now()
		 WHERE id = $1 AND status = $5`,
		orderID, domain.OrderStatusPaid, domain.PaymentStatusCompleted, paymentRef, domain.OrderStatusPending,
	)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark order paid rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: order %s is not pending", domain.ErrInvalidTransition, orderID)
	}
	return nil
}

// ListExpiredPending returns IDs of pending orders created before the
// cutoff, oldest first.
func (r *OrderRepository) ListExpiredPending(ctx context.Context, olderThan time.Time) ([]string, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT id FROM orders WHERE status = $1 AND created_at < $2 ORDER BY created_at ASC`,
		domain.OrderStatusPending, olderThan,
	)
	if err != nil {
		return nil, fmt.Errorf("list expired pending orders: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan order id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *OrderRepository) listItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT product_id, quantity, price_cents FROM order_items WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err = rows.Scan(&it.ProductID, &it.Quantity, &it.PriceCents); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func getOrderTx(ctx context.Context, tx *sql.Tx, orderID string) (*domain.Order, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT id, user_id, status, payment_status, payment_ref, total_cents, shipping_address, created_at, updated_at
		 FROM orders
		 WHERE id = $1
		 FOR UPDATE`,
		orderID,
	)

	o, err := scanOrder(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT product_id, quantity, price_cents FROM order_items WHERE order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.OrderItem
		if err = rows.Scan(&it.ProductID, &it.Quantity, &it.PriceCents); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}

	return o, rows.Err()
}

func scanOrder(scan func(dest ...any) error) (*domain.Order, error) {
	var o domain.Order
	var paymentRef sql.NullString

	err := scan(
		&o.ID, &o.UserID, &o.Status, &o.PaymentStatus, &paymentRef,
		&o.TotalCents, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paymentRef.Valid {
		o.PaymentRef = &paymentRef.String
	}

	return &o, nil
}
