package upload

import (
	"context"
	"photodrop/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) SubmitPhoto(ctx context.Context, accessToken string, file *domain.RawFile) (*domain.Photo, *domain.TimeValidationResult, error) {
	args := m.Called(ctx, accessToken, file)
	var photo *domain.Photo
	if args.Get(0) != nil {
		photo = args.Get(0).(*domain.Photo)
	}
	var verdict *domain.TimeValidationResult
	if args.Get(1) != nil {
		verdict = args.Get(1).(*domain.TimeValidationResult)
	}
	return photo, verdict, args.Error(2)
}

func (m *MockUploadService) ListPhotos(ctx context.Context, accessToken string, limit, offset int) ([]domain.PhotoDownload, int, error) {
	args := m.Called(ctx, accessToken, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PhotoDownload), args.Int(1), args.Error(2)
}

func (m *MockUploadService) DeletePhoto(ctx context.Context, accessToken string, photoID uuid.UUID) error {
	args := m.Called(ctx, accessToken, photoID)
	return args.Error(0)
}
