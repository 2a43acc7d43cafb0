package upload

import (
	"log/slog"
	"photodrop/internal/core/domain"
	"photodrop/internal/core/port"
)

type uploadService struct {
	uow       port.UnitOfWork
	storage   port.PhotoStorage
	publisher port.NotificationPublisher
	extractor port.MetadataExtractor
	cfg       domain.ValidationConfig
	logger    *slog.Logger
}

// NewUploadService creates the upload orchestrator. publisher may be nil
// when no broker is configured; accepted photos are then simply not
// announced.
func NewUploadService(uow port.UnitOfWork, storage port.PhotoStorage, publisher port.NotificationPublisher, extractor port.MetadataExtractor, cfg domain.ValidationConfig, logger *slog.Logger) port.UploadService {
	return &uploadService{
		uow:       uow,
		storage:   storage,
		publisher: publisher,
		extractor: extractor,
		cfg:       cfg,
		logger:    logger,
	}
}
