package event

import (
	"photodrop/internal/core/port"
	"photodrop/internal/core/service/validation"
)

type eventService struct {
	uow       port.UnitOfWork
	validator *validation.EventTimeValidator
}

// NewEventService creates a new event service
func NewEventService(uow port.UnitOfWork, validator *validation.EventTimeValidator) port.EventService {
	return &eventService{uow: uow, validator: validator}
}
