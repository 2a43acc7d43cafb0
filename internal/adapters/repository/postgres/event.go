package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"photodrop/internal/core/domain"
	"photodrop/internal/core/port"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlEventRepository struct {
	db SQLQuerier
}

// NewSqlEventRepository creates sqlEventRepository that implements port.EventRepository
func NewSqlEventRepository(db SQLQuerier) port.EventRepository {
	return &sqlEventRepository{
		db: db,
	}
}

// Create creates a new event
func (s *sqlEventRepository) Create(ctx context.Context, event domain.Event) error {
	query := `INSERT INTO events (id, owner_id, name, description, access_token, start_at, end_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.OwnerID,
		event.Name,
		event.Description,
		event.AccessToken,
		event.StartAt,
		event.EndAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return fmt.Errorf("event %s: %w", event.ID, domain.ErrAlreadyExists)
			}
		}
		return fmt.Errorf("error inserting event: %w", err)
	}
	return nil
}

// FindByID finds an event by id
func (s *sqlEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	query := eventSelect + ` WHERE id = $1`
	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

// FindByToken finds an event by its guest access token
func (s *sqlEventRepository) FindByToken(ctx context.Context, accessToken string) (*domain.Event, error) {
	query := eventSelect + ` WHERE access_token = $1`
	return s.scanOne(s.db.QueryRowContext(ctx, query, accessToken))
}

// ListByOwner lists all events owned by the given user, newest first
func (s *sqlEventRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Event, error) {
	query := eventSelect + ` WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var dbEvent dbEvent
		if err := rows.Scan(
			&dbEvent.ID,
			&dbEvent.OwnerID,
			&dbEvent.Name,
			&dbEvent.Description,
			&dbEvent.AccessToken,
			&dbEvent.StartAt,
			&dbEvent.EndAt,
			&dbEvent.CreatedAt,
			&dbEvent.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, *dbEvent.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

const eventSelect = `SELECT id, owner_id, name, description, access_token, start_at, end_at, created_at, updated_at
              FROM events`

func (s *sqlEventRepository) scanOne(row *sql.Row) (*domain.Event, error) {
	var dbEvent dbEvent
	err := row.Scan(
		&dbEvent.ID,
		&dbEvent.OwnerID,
		&dbEvent.Name,
		&dbEvent.Description,
		&dbEvent.AccessToken,
		&dbEvent.StartAt,
		&dbEvent.EndAt,
		&dbEvent.CreatedAt,
		&dbEvent.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return dbEvent.ToDomain(), nil
}

// dbEvent represents an event in DB
type dbEvent struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	AccessToken string    `db:"access_token"`
	StartAt     time.Time `db:"start_at"`
	EndAt       time.Time `db:"end_at"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ToDomain converts to domain.Event
func (e *dbEvent) ToDomain() *domain.Event {
	return &domain.Event{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Name:        e.Name,
		Description: e.Description,
		AccessToken: e.AccessToken,
		StartAt:     e.StartAt,
		EndAt:       e.EndAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
