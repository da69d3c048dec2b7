package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ProductRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProductRepo(db *dbpg.DB) *ProductRepository {
	return &ProductRepository{db: db, strategy: defaultStrategy()}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (id, name, description, price_cents, quantity, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Name, p.Description, p.PriceCents,
		p.Quantity, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT id, name, description, price_cents, quantity, status, created_at, updated_at
			  FROM products
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	var p domain.Product
	if err = row.Scan(
		&p.ID, &p.Name, &p.Description, &p.PriceCents,
		&p.Quantity, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}

	return &p, nil
}

func (r *ProductRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Product, error) {
	query := `SELECT id, name, description, price_cents, quantity, status, created_at, updated_at
			  FROM products
			  WHERE id = ANY($1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()

	res := make(map[string]*domain.Product, len(ids))
	for rows.Next() {
		var p domain.Product
		if err = rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.PriceCents,
			&p.Quantity, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		res[p.ID] = &p
	}

	return res, rows.Err()
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT id, name, description, price_cents, quantity, status, created_at, updated_at
			  FROM products
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var res []*domain.Product
	for rows.Next() {
		var p domain.Product
		if err = rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.PriceCents,
			&p.Quantity, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
