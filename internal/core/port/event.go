package port

import (
	"context"
	"photodrop/internal/core/domain"

	"github.com/google/uuid"
)

// EventRepository is an interface to define event repository interactions
type EventRepository interface {
	Create(ctx context.Context, event domain.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	FindByToken(ctx context.Context, accessToken string) (*domain.Event, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Event, error)
}

// EventService is an interface to define the event service
type EventService interface {
	CreateEvent(ctx context.Context, ownerID uuid.UUID, name, description, startDate, endDate, startTime, endTime string) (*domain.Event, error)
	GetEventByToken(ctx context.Context, accessToken string) (*domain.Event, error)
	ListEvents(ctx context.Context, ownerID uuid.UUID) ([]domain.Event, error)
}
