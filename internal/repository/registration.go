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

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db, strategy: defaultStrategy()}
}

// Register decides confirmed vs waitlisted and inserts the row in one
// transaction. The event row is locked first so that two concurrent
// registrations cannot both read the same seat count.
func (r *RegistrationRepository) Register(ctx context.Context, reg *domain.Registration) error {
	return inTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		var startsAt time.Time
		var maxP sql.NullInt64
		err := tx.QueryRowContext(ctx,
			`SELECT starts_at, max_participants FROM events WHERE id = $1 FOR UPDATE`,
			reg.EventID,
		).Scan(&startsAt, &maxP)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("lock event row: %w", err)
		}

		if !reg.RegisteredAt.Before(startsAt) {
			return fmt.Errorf("%w: event %s has already started", domain.ErrRegistrationNotOpen, reg.EventID)
		}

		var confirmed int
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = $2`,
			reg.EventID, domain.RegistrationStatusConfirmed,
		).Scan(&confirmed)
		if err != nil {
			return fmt.Errorf("count confirmed: %w", err)
		}

		reg.Status = domain.RegistrationStatusConfirmed
		if maxP.Valid && confirmed >= int(maxP.Int64) {
			reg.Status = domain.RegistrationStatusWaitlisted
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO registrations (id, event_id, user_id, status, registered_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			reg.ID, reg.EventID, reg.UserID, reg.Status, reg.RegisteredAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrAlreadyRegistered
			}
			return fmt.Errorf("insert registration: %w", err)
		}

		return nil
	})
}

// Cancel moves a registration to cancelled. Cancelling a confirmed
// registration frees a seat, so the oldest waitlisted registration for
// the same event (registered_at ascending, insertion order as the
// tie-break) is promoted in the same transaction. A waitlisted
// self-cancel frees nothing and promotes nobody.
func (r *RegistrationRepository) Cancel(ctx context.Context, eventID, userID string) (*domain.CancelResult, error) {
	var result *domain.CancelResult

	err := inTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		result = &domain.CancelResult{}

		// The event row lock serialises cancellations against
		// registrations and other promotions.
		var id string
		err := tx.QueryRowContext(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("lock event row: %w", err)
		}

		reg, err := getRegistrationTx(ctx, tx, eventID, userID)
		if err != nil {
			return err
		}

		switch reg.Status {
		case domain.RegistrationStatusCancelled:
			// Repeat cancel is a no-op.
			result.Cancelled = reg
			return nil
		case domain.RegistrationStatusAttended, domain.RegistrationStatusNoShow:
			return fmt.Errorf("%w: cannot cancel a registration marked %s", domain.ErrInvalidTransition, reg.Status)
		}

		wasConfirmed := reg.Status == domain.RegistrationStatusConfirmed

		_, err = tx.ExecContext(ctx,
			`UPDATE registrations SET status = $2 WHERE id = $1`,
			reg.ID, domain.RegistrationStatusCancelled,
		)
		if err != nil {
			return fmt.Errorf("cancel registration: %w", err)
		}
		reg.Status = domain.RegistrationStatusCancelled
		result.Cancelled = reg

		if !wasConfirmed {
			return nil
		}

		promoted, err := promoteOldestWaitlisted(ctx, tx, eventID)
		if err != nil {
			return err
		}
		result.Promoted = promoted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func promoteOldestWaitlisted(ctx context.Context, tx *sql.Tx, eventID string) (*domain.Registration, error) {
	var p domain.Registration
	err := tx.QueryRowContext(ctx,
		`SELECT id, event_id, user_id, registered_at
		 FROM registrations
		 WHERE event_id = $1 AND status = $2
		 ORDER BY registered_at ASC, seq ASC
		 LIMIT 1`,
		eventID, domain.RegistrationStatusWaitlisted,
	).Scan(&p.ID, &p.EventID, &p.UserID, &p.RegisteredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find oldest waitlisted: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE registrations SET status = $2 WHERE id = $1`,
		p.ID, domain.RegistrationStatusConfirmed,
	)
	if err != nil {
		return nil, fmt.Errorf("promote waitlisted: %w", err)
	}
	p.Status = domain.RegistrationStatusConfirmed

	return &p, nil
}

// MarkAttendance records the post-event outcome. Only a confirmed
// registration can become attended or no_show.
func (r *RegistrationRepository) MarkAttendance(ctx context.Context, eventID, userID string, outcome domain.RegistrationStatus, at time.Time) error {
	return inTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		reg, err := getRegistrationTx(ctx, tx, eventID, userID)
		if err != nil {
			return err
		}
		if reg.Status != domain.RegistrationStatusConfirmed {
			return fmt.Errorf("%w: cannot mark %s registration as %s", domain.ErrInvalidTransition, reg.Status, outcome)
		}

		var attendedAt any
		if outcome == domain.RegistrationStatusAttended {
			attendedAt = at
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE registrations SET status = $2, attended_at = $3 WHERE id = $1`,
			reg.ID, outcome, attendedAt,
		)
		if err != nil {
			return fmt.Errorf("mark attendance: %w", err)
		}
		return nil
	})
}

// SetFeedback stores feedback exactly once on an attended registration.
func (r *RegistrationRepository) SetFeedback(ctx context.Context, eventID, userID, feedback string, rating int) error {
	return inTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		reg, err := getRegistrationTx(ctx, tx, eventID, userID)
		if err != nil {
			return err
		}
		if reg.Status != domain.RegistrationStatusAttended {
			return fmt.Errorf("%w: feedback requires an attended registration, got %s", domain.ErrInvalidTransition, reg.Status)
		}
		if reg.Rating != nil {
			return domain.ErrFeedbackAlreadyGiven
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE registrations SET feedback = $2, rating = $3 WHERE id = $1`,
			reg.ID, feedback, rating,
		)
		if err != nil {
			return fmt.Errorf("set feedback: %w", err)
		}
		return nil
	})
}

func (r *RegistrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, status, registered_at, attended_at, feedback, rating
			  FROM registrations
			  WHERE event_id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `SELECT id, event_id, user_id, status, registered_at, attended_at, feedback, rating
			  FROM registrations
			  WHERE event_id = $1
			  ORDER BY registered_at ASC, seq ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

func getRegistrationTx(ctx context.Context, tx *sql.Tx, eventID, userID string) (*domain.Registration, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT id, event_id, user_id, status, registered_at, attended_at, feedback, rating
		 FROM registrations
		 WHERE event_id = $1 AND user_id = $2
		 FOR UPDATE`,
		eventID, userID,
	)

	reg, err := scanRegistration(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func scanRegistration(scan func(dest ...any) error) (*domain.Registration, error) {
	var reg domain.Registration
	var attendedAt sql.NullTime
	var feedback sql.NullString
	var rating sql.NullInt64

	err := scan(
		&reg.ID, &reg.EventID, &reg.UserID, &reg.Status,
		&reg.RegisteredAt, &attendedAt, &feedback, &rating,
	)
	if err != nil {
		return nil, err
	}

	if attendedAt.Valid {
		reg.AttendedAt = &attendedAt.Time
	}
	if feedback.Valid {
		reg.Feedback = &feedback.String
	}
	if rating.Valid {
		v := int(rating.Int64)
		reg.Rating = &v
	}

	return &reg, nil
}
