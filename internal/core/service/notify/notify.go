package notify

import (
	"log/slog"
	"photodrop/internal/core/port"
)

type notifyService struct {
	uow    port.UnitOfWork
	logger *slog.Logger
}

// NewNotifyService creates the handler consumed by the notifier worker
func NewNotifyService(uow port.UnitOfWork, logger *slog.Logger) port.MessageService {
	return &notifyService{
		uow:    uow,
		logger: logger,
	}
}
