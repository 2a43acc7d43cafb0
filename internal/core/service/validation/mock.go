package validation

import (
	"context"
	"photodrop/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockExtractor is a mock implementation of port.MetadataExtractor
type MockExtractor struct {
	mock.Mock
}

// NewMockExtractor creates a new MockExtractor
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

func (m *MockExtractor) Extract(ctx context.Context, file *domain.RawFile, cfg domain.ValidationConfig) (*domain.FileMetadata, error) {
	args := m.Called(ctx, file, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileMetadata), args.Error(1)
}
