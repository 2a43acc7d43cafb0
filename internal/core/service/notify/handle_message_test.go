package notify_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"photodrop/internal/adapters/repository"
	"photodrop/internal/core/domain"
	"photodrop/internal/core/service/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestHandleMessage_MarksPhotoNotified(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := notify.NewNotifyService(mockUow, discardLogger)

	photoID := uuid.New()
	photo := &domain.Photo{ID: photoID, EventID: uuid.New()}
	payload, err := json.Marshal(domain.PhotoAccepted{
		PhotoID:        photoID,
		EventID:        photo.EventID,
		StorageKey:     "events/a/1",
		TakenAt:        time.Now(),
		CreationSource: domain.CreationSourceEXIF,
		AcceptedAt:     time.Now(),
	})
	require.NoError(t, err)

	mockUow.GetPhotoRepoMock().On("FindByID", ctx, photoID).Return(photo, nil)
	mockUow.GetPhotoRepoMock().On("UpdateStatus", ctx, photoID, domain.PhotoStatusNotified).Return(nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)

	// Act
	err = service.HandleMessage(ctx, payload)

	// Assert
	assert.NoError(t, err)
	mockUow.GetPhotoRepoMock().AssertExpectations(t)
}

func TestHandleMessage_BadPayload(t *testing.T) {
	service := notify.NewNotifyService(repository.NewMockUnitOfWork(), discardLogger)

	err := service.HandleMessage(context.Background(), []byte("{not json"))
	assert.Error(t, err)

	err = service.HandleMessage(context.Background(), []byte(`{}`))
	assert.Error(t, err)
}

func TestHandleMessage_PhotoNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := notify.NewNotifyService(mockUow, discardLogger)

	photoID := uuid.New()
	payload, err := json.Marshal(domain.PhotoAccepted{PhotoID: photoID})
	require.NoError(t, err)

	mockUow.GetPhotoRepoMock().On("FindByID", ctx, photoID).Return(nil, domain.ErrPhotoNotFound)

	// Act
	err = service.HandleMessage(ctx, payload)

	// Assert
	assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
}
