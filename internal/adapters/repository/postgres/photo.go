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

type sqlPhotoRepository struct {
	db SQLQuerier
}

// NewSqlPhotoRepository creates sqlPhotoRepository that implements port.PhotoRepository
func NewSqlPhotoRepository(db SQLQuerier) port.PhotoRepository {
	return &sqlPhotoRepository{
		db: db,
	}
}

// Create creates a new photo entry
func (s *sqlPhotoRepository) Create(ctx context.Context, photo domain.Photo) error {
	query := `INSERT INTO photos (id, event_id, original_name, mime_type, size_bytes, storage_key,
                                  taken_at, creation_source, quality_score, warnings, status)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	warnings := photo.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	_, err := s.db.ExecContext(ctx, query,
		photo.ID,
		photo.EventID,
		photo.OriginalName,
		photo.MimeType,
		photo.SizeBytes,
		photo.StorageKey,
		photo.TakenAt,
		photo.CreationSource,
		photo.QualityScore,
		pq.Array(warnings),
		photo.Status,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return fmt.Errorf("photo %s: %w", photo.ID, domain.ErrAlreadyExists)
			}
		}
		return fmt.Errorf("error inserting photo: %w", err)
	}
	return nil
}

// FindByID finds a non-deleted photo by id
func (s *sqlPhotoRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	query := photoSelect + ` WHERE id = $1 AND deleted_at IS NULL`

	var dbPhoto dbPhoto
	err := dbPhoto.scan(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, err
	}
	return dbPhoto.ToDomain(), nil
}

// ListByEvent lists non-deleted photos of an event, newest first
func (s *sqlPhotoRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, limit, offset int) ([]domain.Photo, error) {
	query := photoSelect + `
		WHERE event_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, eventID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying photos: %w", err)
	}
	defer rows.Close()

	return collectPhotos(rows)
}

// CountByEvent counts non-deleted photos of an event
func (s *sqlPhotoRepository) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM photos WHERE event_id = $1 AND deleted_at IS NULL`

	var count int
	if err := s.db.QueryRowContext(ctx, query, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting photos: %w", err)
	}
	return count, nil
}

// UpdateStatus updates status
func (s *sqlPhotoRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PhotoStatus) error {
	query := `UPDATE photos
              SET status = $1, updated_at = now()
              WHERE id = $2 AND deleted_at IS NULL`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("error updating photo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

// SoftDelete marks a photo as deleted
func (s *sqlPhotoRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE photos SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error soft deleting photo: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

// FindDeletedBefore finds soft-deleted photos older than the cutoff
func (s *sqlPhotoRepository) FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]domain.Photo, error) {
	query := photoSelect + ` WHERE deleted_at IS NOT NULL AND deleted_at < $1`

	rows, err := s.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("error querying deleted photos: %w", err)
	}
	defer rows.Close()

	return collectPhotos(rows)
}

// HardDelete removes the photo row for good
func (s *sqlPhotoRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM photos WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting photo: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}

const photoSelect = `SELECT id, event_id, original_name, mime_type, size_bytes, storage_key,
                     taken_at, creation_source, quality_score, warnings, status,
                     created_at, updated_at, deleted_at
              FROM photos`

func collectPhotos(rows *sql.Rows) ([]domain.Photo, error) {
	var photos []domain.Photo
	for rows.Next() {
		var dbPhoto dbPhoto
		if err := dbPhoto.scan(rows); err != nil {
			return nil, fmt.Errorf("error scanning photo: %w", err)
		}
		photos = append(photos, *dbPhoto.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photos: %w", err)
	}
	return photos, nil
}

// dbPhoto represents a photo in DB
type dbPhoto struct {
	ID             uuid.UUID       `db:"id"`
	EventID        uuid.UUID       `db:"event_id"`
	OriginalName   string          `db:"original_name"`
	MimeType       string          `db:"mime_type"`
	SizeBytes      int64           `db:"size_bytes"`
	StorageKey     string          `db:"storage_key"`
	TakenAt        time.Time       `db:"taken_at"`
	CreationSource string          `db:"creation_source"`
	QualityScore   sql.NullFloat64 `db:"quality_score"`
	Warnings       []string        `db:"warnings"`
	Status         string          `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	DeletedAt      *time.Time      `db:"deleted_at"`
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (p *dbPhoto) scan(row rowScanner) error {
	return row.Scan(
		&p.ID,
		&p.EventID,
		&p.OriginalName,
		&p.MimeType,
		&p.SizeBytes,
		&p.StorageKey,
		&p.TakenAt,
		&p.CreationSource,
		&p.QualityScore,
		pq.Array(&p.Warnings),
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	)
}

// ToDomain converts to domain.Photo
func (p *dbPhoto) ToDomain() *domain.Photo {
	photo := &domain.Photo{
		ID:             p.ID,
		EventID:        p.EventID,
		OriginalName:   p.OriginalName,
		MimeType:       p.MimeType,
		SizeBytes:      p.SizeBytes,
		StorageKey:     p.StorageKey,
		TakenAt:        p.TakenAt,
		CreationSource: domain.CreationSource(p.CreationSource),
		Warnings:       p.Warnings,
		Status:         domain.PhotoStatus(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		DeletedAt:      p.DeletedAt,
	}
	if p.QualityScore.Valid {
		score := p.QualityScore.Float64
		photo.QualityScore = &score
	}
	return photo
}
