package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ikaros55439147/craft-booking/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{db: db, strategy: defaultStrategy()}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecWithRetry(ctx, r.strategy,
		`INSERT INTO users (id, username, telegram_chat_id, created_at) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Username, u.TelegramChatID, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %s is taken", domain.ErrValidation, u.Username)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT id, username, telegram_chat_id, created_at FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT id, username, telegram_chat_id, created_at FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

func scanUser(scan func(dest ...any) error) (*domain.User, error) {
	var u domain.User
	var chatID sql.NullInt64
	if err := scan(&u.ID, &u.Username, &chatID, &u.CreatedAt); err != nil {
		return nil, err
	}
	if chatID.Valid {
		u.TelegramChatID = &chatID.Int64
	}
	return &u, nil
}
