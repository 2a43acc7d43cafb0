package cleanup

import (
	"context"
	"photodrop/internal/core/port"
	"time"
)

// PurgeDeletedPhotos removes stored objects and rows for photos that were
// soft deleted before cutoff. A failure on one photo is logged and does not
// stop the sweep.
func (c *cleanupService) PurgeDeletedPhotos(ctx context.Context, cutoff time.Time) error {

	photos, err := c.uow.PhotoRepo().FindDeletedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, photo := range photos {
		txErr := c.uow.Execute(ctx, func(uow port.UnitOfWork) error {
			if deleteErr := uow.PhotoRepo().HardDelete(ctx, photo.ID); deleteErr != nil {
				return deleteErr
			}
			return c.photoStorage.DeleteObject(ctx, photo.StorageKey)
		})
		if txErr != nil {
			c.logger.Error("failed to purge deleted photo", "photo_id", photo.ID, "error", txErr)
		}
	}

	c.logger.Info("purge of deleted photos completed", "candidates", len(photos))
	return nil
}
