package event

import (
	"context"
	"photodrop/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	mock.Mock
}

// NewMockEventService creates a new MockEventService
func NewMockEventService() *MockEventService {
	return &MockEventService{}
}

func (m *MockEventService) CreateEvent(ctx context.Context, ownerID uuid.UUID, name, description, startDate, endDate, startTime, endTime string) (*domain.Event, error) {
	args := m.Called(ctx, ownerID, name, description, startDate, endDate, startTime, endTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) GetEventByToken(ctx context.Context, accessToken string) (*domain.Event, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context, ownerID uuid.UUID) ([]domain.Event, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}
