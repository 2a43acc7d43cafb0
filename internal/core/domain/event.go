package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event represents an event that guests can submit photos to.
// AccessToken is the opaque credential guests present on upload.
type Event struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	AccessToken string
	StartAt     time.Time
	EndAt       time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
