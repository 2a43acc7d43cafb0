package port

import (
	"context"
	"time"
)

// CleanupService is service that handles cleanup of deleted photos
type CleanupService interface {
	PurgeDeletedPhotos(ctx context.Context, cutoff time.Time) error
}
