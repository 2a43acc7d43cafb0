package cleanup

import (
	"log/slog"
	"photodrop/internal/core/port"
)

type cleanupService struct {
	uow          port.UnitOfWork
	photoStorage port.PhotoStorage
	logger       *slog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(uow port.UnitOfWork, photoStorage port.PhotoStorage, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		uow:          uow,
		photoStorage: photoStorage,
		logger:       logger,
	}
}
