package event

import (
	"context"

	"photodrop/internal/core/domain"

	"github.com/google/uuid"
)

func (s *eventService) ListEvents(ctx context.Context, ownerID uuid.UUID) ([]domain.Event, error) {
	return s.uow.EventRepo().ListByOwner(ctx, ownerID)
}
