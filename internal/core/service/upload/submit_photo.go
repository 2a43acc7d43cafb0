package upload

import (
	"context"
	"fmt"
	"time"

	"photodrop/internal/core/domain"
	"photodrop/internal/core/port"
	"photodrop/internal/core/service/validation"

	"github.com/google/uuid"
)

// SubmitPhoto runs the full acceptance pipeline for one file: metadata
// extraction, creation-time check against the event window, object storage
// and persistence. The TimeValidationResult is returned alongside rejection
// errors so callers can surface the full verdict.
func (s *uploadService) SubmitPhoto(ctx context.Context, accessToken string, file *domain.RawFile) (*domain.Photo, *domain.TimeValidationResult, error) {

	foundEvent, err := s.uow.EventRepo().FindByToken(ctx, accessToken)
	if err != nil {
		return nil, nil, err
	}

	meta, err := s.extractor.Extract(ctx, file, s.cfg)
	if err != nil {
		return nil, nil, err
	}
	if len(meta.ValidationErrors) > 0 {
		return nil, nil, &domain.RejectionError{Findings: meta.ValidationErrors}
	}

	verdict := validation.ValidateCreationTime(meta, foundEvent.StartAt, foundEvent.EndAt, s.cfg)
	if !verdict.IsValid {
		return nil, &verdict, &domain.RejectionError{Findings: []string{verdict.Details.Message}}
	}

	photoID := uuid.New()
	photo := domain.Photo{
		ID:             photoID,
		EventID:        foundEvent.ID,
		OriginalName:   file.Name,
		MimeType:       file.MimeType,
		SizeBytes:      file.Size,
		StorageKey:     fmt.Sprintf("events/%s/%s", foundEvent.ID, photoID),
		TakenAt:        meta.CreatedAt,
		CreationSource: verdict.Details.CreationSource,
		QualityScore:   meta.QualityScore,
		Warnings:       meta.ValidationWarnings,
		Status:         domain.PhotoStatusAccepted,
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		if createErr := uow.PhotoRepo().Create(ctx, photo); createErr != nil {
			return createErr
		}
		return s.storage.Put(ctx, photo.StorageKey, file.Data, file.MimeType)
	})
	if txErr != nil {
		return nil, nil, fmt.Errorf("could not persist photo: %w", txErr)
	}

	if s.publisher != nil {
		notification := domain.PhotoAccepted{
			PhotoID:        photo.ID,
			EventID:        photo.EventID,
			StorageKey:     photo.StorageKey,
			TakenAt:        photo.TakenAt,
			CreationSource: photo.CreationSource,
			AcceptedAt:     time.Now(),
		}
		if pubErr := s.publisher.PublishPhotoAccepted(ctx, notification); pubErr != nil {
			s.logger.Warn("failed to publish photo accepted notification", "photo_id", photo.ID, "error", pubErr)
		}
	}

	return &photo, &verdict, nil
}
