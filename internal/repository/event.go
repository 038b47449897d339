package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"artzone/internal/model"
)

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, title, description, type, date, time, location, image_url,
	registration_required, max_participants, registered_count, price, created_at`

func (r *eventRepository) Create(ctx context.Context, e *model.Event) error {
	query := `
		INSERT INTO events (title, description, type, date, time, location, image_url,
			registration_required, max_participants, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, registered_count, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		e.Title, e.Description, e.Type, e.Date, e.Time, e.Location, e.ImageURL,
		e.RegistrationRequired, e.MaxParticipants, e.Price)

	err := row.Scan(&e.ID, &e.RegisteredCount, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var e model.Event
	err := r.db.GetContext(ctx, &e, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &e, nil
}

// ListUpcoming returns future-dated events only, soonest first.
func (r *eventRepository) ListUpcoming(ctx context.Context) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE date >= NOW() ORDER BY date ASC`

	events := []model.Event{}
	err := r.db.SelectContext(ctx, &events, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

func (r *eventRepository) GetRegisteredUsers(ctx context.Context, eventID int64) ([]model.UserSummary, error) {
	query := `
		SELECT u.id, u.name, u.email
		FROM event_registrations er
		JOIN users u ON u.id = er.user_id
		WHERE er.event_id = $1
		ORDER BY er.created_at
	`

	users := []model.UserSummary{}
	err := r.db.SelectContext(ctx, &users, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get registered users: %w", err)
	}

	return users, nil
}

// Register runs the roster insert and the seat reservation in one
// transaction. The insert goes first so a duplicate registration is
// reported as such even when the event is also full; the capacity check
// then either admits the user or rolls the insert back. The row lock taken
// by the counter update serializes racing registrations for the same
// event, so the roster can never exceed max_participants.
func (r *eventRepository) Register(ctx context.Context, eventID, userID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin registration: %w", err)
	}
	defer tx.Rollback()

	inserted, err := addRegistration(ctx, tx, eventID, userID)
	if err != nil {
		return err
	}
	if !inserted {
		return model.ErrAlreadyRegistered
	}

	reserved, err := reserveSeat(ctx, tx, eventID)
	if err != nil {
		return err
	}
	if !reserved {
		return model.ErrEventFull
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit registration: %w", err)
	}
	return nil
}

// reserveSeat moves the counter only while below max_participants (or
// unconditionally when no cap is set); returns false when the event is
// full.
func reserveSeat(ctx context.Context, tx *sqlx.Tx, eventID int64) (bool, error) {
	query := `
		UPDATE events SET registered_count = registered_count + 1
		WHERE id = $1 AND (max_participants IS NULL OR registered_count < max_participants)
	`
	result, err := tx.ExecContext(ctx, query, eventID)
	if err != nil {
		return false, fmt.Errorf("failed to reserve seat: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// addRegistration appends the user to the roster; returns false on a
// duplicate without raising an error.
func addRegistration(ctx context.Context, tx *sqlx.Tx, eventID, userID int64) (bool, error) {
	query := `
		INSERT INTO event_registrations (event_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`
	result, err := tx.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to add registration: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}
