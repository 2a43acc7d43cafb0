package port

import (
	"context"
	"photodrop/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// PhotoRepository is an interface to define photo repository interactions
type PhotoRepository interface {
	Create(ctx context.Context, photo domain.Photo) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, limit, offset int) ([]domain.Photo, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PhotoStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]domain.Photo, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

// PhotoStorage is an interface to define binary photo storage interactions
type PhotoStorage interface {
	Put(ctx context.Context, storageKey string, data []byte, contentType string) error
	GeneratePresignedURLForDownload(ctx context.Context, storageKey string) (string, *time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
}

// UploadService is an interface to define the upload orchestrator
type UploadService interface {
	SubmitPhoto(ctx context.Context, accessToken string, file *domain.RawFile) (*domain.Photo, *domain.TimeValidationResult, error)
	ListPhotos(ctx context.Context, accessToken string, limit, offset int) ([]domain.PhotoDownload, int, error)
	DeletePhoto(ctx context.Context, accessToken string, photoID uuid.UUID) error
}
