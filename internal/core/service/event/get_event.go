package event

import (
	"context"
	"fmt"

	"photodrop/internal/core/domain"
)

func (s *eventService) GetEventByToken(ctx context.Context, accessToken string) (*domain.Event, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("%w: access token is required", domain.ErrInvalidInput)
	}

	found, err := s.uow.EventRepo().FindByToken(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return found, nil
}
