package storage

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of port.PhotoStorage
type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Put(ctx context.Context, storageKey string, data []byte, contentType string) error {
	args := m.Called(ctx, storageKey, data, contentType)
	return args.Error(0)
}

func (m *MockStorage) GeneratePresignedURLForDownload(ctx context.Context, storageKey string) (string, *time.Time, error) {
	args := m.Called(ctx, storageKey)
	var expiresAt *time.Time
	if args.Get(1) != nil {
		expiresAt = args.Get(1).(*time.Time)
	}
	return args.String(0), expiresAt, args.Error(2)
}

func (m *MockStorage) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}
