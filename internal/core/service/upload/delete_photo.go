package upload

import (
	"context"

	"photodrop/internal/core/domain"
	"photodrop/internal/core/port"

	"github.com/google/uuid"
)

// DeletePhoto soft deletes a photo; the object itself is removed later by
// the cleanup task.
func (s *uploadService) DeletePhoto(ctx context.Context, accessToken string, photoID uuid.UUID) error {

	foundEvent, err := s.uow.EventRepo().FindByToken(ctx, accessToken)
	if err != nil {
		return err
	}

	photo, err := s.uow.PhotoRepo().FindByID(ctx, photoID)
	if err != nil {
		return err
	}
	if photo.EventID != foundEvent.ID {
		return domain.ErrPhotoNotFound
	}

	return s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		return uow.PhotoRepo().SoftDelete(ctx, photoID)
	})
}
