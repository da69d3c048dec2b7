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

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{db: db, strategy: defaultStrategy()}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, organizer_id, starts_at, ends_at, max_participants, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.OrganizerID,
		e.StartsAt, e.EndsAt, maxParticipantsValue(e), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, organizer_id, starts_at, ends_at, max_participants, created_at, updated_at
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	query := `SELECT e.id, e.title, e.description, e.organizer_id, e.starts_at, e.ends_at, e.max_participants,
					 e.created_at, e.updated_at,
					 COUNT(r.id) FILTER (WHERE r.status = $2) AS confirmed,
					 COUNT(r.id) FILTER (WHERE r.status = $3) AS waitlisted
			  FROM events e
			  LEFT JOIN registrations r ON r.event_id = e.id
			  WHERE e.id = $1
			  GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id,
		domain.RegistrationStatusConfirmed, domain.RegistrationStatusWaitlisted)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	var d domain.EventDetails
	var maxP sql.NullInt64
	err = row.Scan(
		&d.Event.ID, &d.Event.Title, &d.Event.Description, &d.Event.OrganizerID,
		&d.Event.StartsAt, &d.Event.EndsAt, &maxP,
		&d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.ConfirmedCount, &d.WaitlistedCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}
	if maxP.Valid {
		v := int(maxP.Int64)
		d.Event.MaxParticipants = &v
	}

	return &d, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, description, organizer_id, starts_at, ends_at, max_participants, created_at, updated_at
			  FROM events
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	var maxP sql.NullInt64
	err := scan(
		&e.ID, &e.Title, &e.Description, &e.OrganizerID,
		&e.StartsAt, &e.EndsAt, &maxP, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if maxP.Valid {
		v := int(maxP.Int64)
		e.MaxParticipants = &v
	}
	return &e, nil
}

func maxParticipantsValue(e *domain.Event) any {
	if e.MaxParticipants == nil {
		return nil
	}
	return *e.MaxParticipants
}
