package upload

import (
	"context"
	"fmt"

	"photodrop/internal/core/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func (s *uploadService) ListPhotos(ctx context.Context, accessToken string, limit, offset int) ([]domain.PhotoDownload, int, error) {

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	foundEvent, err := s.uow.EventRepo().FindByToken(ctx, accessToken)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.uow.PhotoRepo().CountByEvent(ctx, foundEvent.ID)
	if err != nil {
		return nil, 0, err
	}

	photos, err := s.uow.PhotoRepo().ListByEvent(ctx, foundEvent.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	downloads := make([]domain.PhotoDownload, 0, len(photos))
	for _, photo := range photos {
		url, expiresAt, urlErr := s.storage.GeneratePresignedURLForDownload(ctx, photo.StorageKey)
		if urlErr != nil {
			return nil, 0, fmt.Errorf("could not generate download url for photo %s: %w", photo.ID, urlErr)
		}
		downloads = append(downloads, domain.PhotoDownload{
			Photo:        photo,
			URL:          url,
			URLExpiresAt: expiresAt,
		})
	}

	return downloads, total, nil
}
