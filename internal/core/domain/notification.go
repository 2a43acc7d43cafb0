package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhotoAccepted is the notification published after a photo passed
// validation and was persisted
type PhotoAccepted struct {
	PhotoID        uuid.UUID      `json:"photo_id"`
	EventID        uuid.UUID      `json:"event_id"`
	StorageKey     string         `json:"storage_key"`
	TakenAt        time.Time      `json:"taken_at"`
	CreationSource CreationSource `json:"creation_source"`
	AcceptedAt     time.Time      `json:"accepted_at"`
}
