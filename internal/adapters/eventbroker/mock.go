package eventbroker

import (
	"context"
	"photodrop/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of port.NotificationPublisher
type MockPublisher struct {
	mock.Mock
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) PublishPhotoAccepted(ctx context.Context, notification domain.PhotoAccepted) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}
