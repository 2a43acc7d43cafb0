package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhotoStatus represents the status of a stored photo
type PhotoStatus string

const (
	PhotoStatusAccepted PhotoStatus = "accepted"
	PhotoStatusNotified PhotoStatus = "notified"
)

// Photo represents an accepted photo submission
type Photo struct {
	ID             uuid.UUID
	EventID        uuid.UUID
	OriginalName   string
	MimeType       string
	SizeBytes      int64
	StorageKey     string
	TakenAt        time.Time
	CreationSource CreationSource
	QualityScore   *float64
	Warnings       []string
	Status         PhotoStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// PhotoDownload pairs a photo with a presigned download URL
type PhotoDownload struct {
	Photo        Photo
	URL          string
	URLExpiresAt *time.Time
}
