package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"photodrop/internal/core/domain"
	"photodrop/internal/core/port"

	"github.com/google/uuid"
)

// HandleMessage processes an accepted-photo notification: it marks the photo
// as notified so hosts can see which submissions completed the pipeline.
func (n *notifyService) HandleMessage(ctx context.Context, data []byte) error {
	var notification domain.PhotoAccepted
	if err := json.Unmarshal(data, &notification); err != nil {
		return fmt.Errorf("could not unmarshal photo accepted notification: %w", err)
	}
	if notification.PhotoID == uuid.Nil {
		return fmt.Errorf("notification carries no photo id")
	}

	photo, err := n.uow.PhotoRepo().FindByID(ctx, notification.PhotoID)
	if err != nil {
		return err
	}

	n.logger.Info("handling photo accepted notification",
		"photo_id", photo.ID,
		"event_id", photo.EventID,
		"creation_source", notification.CreationSource,
	)

	return n.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		return uow.PhotoRepo().UpdateStatus(ctx, photo.ID, domain.PhotoStatusNotified)
	})
}
