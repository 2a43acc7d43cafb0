package event_test

import (
	"context"
	"testing"
	"time"

	"photodrop/internal/adapters/repository"
	"photodrop/internal/core/domain"
	"photodrop/internal/core/service/event"
	"photodrop/internal/core/service/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func futureDates() (startDate, endDate string) {
	start := time.Now().AddDate(0, 0, 7)
	return start.Format("2006-01-02"), start.Format("2006-01-02")
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := event.NewEventService(mockUow, validation.NewEventTimeValidator())

	ownerID := uuid.New()
	startDate, endDate := futureDates()

	mockUow.GetEventRepoMock().
		On("Create", ctx, mock.Anything).
		Return(nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)

	// Act
	created, err := service.CreateEvent(ctx, ownerID, "garden party", "annual gathering", startDate, endDate, "09:00", "17:00")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, ownerID, created.OwnerID)
	assert.Equal(t, "garden party", created.Name)
	assert.NotEmpty(t, created.AccessToken)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.EndAt.After(created.StartAt))
	mockUow.GetEventRepoMock().AssertExpectations(t)
}

func TestEventService_CreateEvent_MissingName(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := event.NewEventService(mockUow, validation.NewEventTimeValidator())
	startDate, endDate := futureDates()

	// Act
	_, err := service.CreateEvent(ctx, uuid.New(), "  ", "", startDate, endDate, "09:00", "17:00")

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	mockUow.GetEventRepoMock().AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEventService_CreateEvent_InvalidTimes(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := event.NewEventService(mockUow, validation.NewEventTimeValidator())

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	// Act
	_, err := service.CreateEvent(ctx, uuid.New(), "party", "", yesterday, tomorrow, "09:00", "17:00")

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidEventTimes)
	assert.Contains(t, err.Error(), "start date cannot be in the past")
	mockUow.GetEventRepoMock().AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEventService_CreateEvent_MalformedDates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := event.NewEventService(mockUow, validation.NewEventTimeValidator())

	// Act
	_, err := service.CreateEvent(ctx, uuid.New(), "party", "", "01/06/2024", "2024-06-02", "09:00", "17:00")

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
