package event

import (
	"context"
	"fmt"
	"strings"

	"photodrop/internal/core/domain"
	"photodrop/internal/core/port"
	"photodrop/internal/core/service/validation"

	"github.com/google/uuid"
)

func (s *eventService) CreateEvent(ctx context.Context, ownerID uuid.UUID, name, description, startDate, endDate, startTime, endTime string) (*domain.Event, error) {

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: event name is required", domain.ErrInvalidInput)
	}

	result, err := s.validator.Validate(startDate, endDate, startTime, endTime)
	if err != nil {
		return nil, err
	}
	if !result.IsValid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidEventTimes, strings.Join(result.Errors, "; "))
	}

	startAt, endAt, err := validation.EventWindow(startDate, startTime, endDate, endTime)
	if err != nil {
		return nil, err
	}

	newEvent := domain.Event{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		AccessToken: uuid.NewString(),
		StartAt:     startAt,
		EndAt:       endAt,
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		return uow.EventRepo().Create(ctx, newEvent)
	})
	if txErr != nil {
		return nil, fmt.Errorf("could not create event: %w", txErr)
	}

	return &newEvent, nil
}
