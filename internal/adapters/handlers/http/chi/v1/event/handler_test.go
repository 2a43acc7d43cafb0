package event_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"photodrop/internal/adapters/handlers/http/chi"
	eventhandler "photodrop/internal/adapters/handlers/http/chi/v1/event"
	photohandler "photodrop/internal/adapters/handlers/http/chi/v1/photo"
	"photodrop/internal/config"
	"photodrop/internal/core/domain"
	eventservice "photodrop/internal/core/service/event"
	uploadservice "photodrop/internal/core/service/upload"
	"photodrop/internal/pkg/auth"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, eventService *eventservice.MockEventService) (httpgo.Handler, *auth.TokenManager) {
	t.Helper()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	requireAuth := auth.Middleware(tokens, discardLogger)

	handler := chi.NewRouter(chi.RouterDeps{
		Logger:       discardLogger,
		EventHandler: eventhandler.NewEventHandlerV1(eventService, requireAuth, discardLogger),
		PhotoHandler: photohandler.NewPhotoHandlerV1(&uploadservice.MockUploadService{}, requireAuth, discardLogger),
		RateLimit:    config.RateLimitConfig{UploadPerSecond: 100, UploadBurst: 100},
		Env:          "test",
	})
	return handler, tokens
}

func sampleEvent(ownerID uuid.UUID) *domain.Event {
	return &domain.Event{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "Summer Wedding",
		AccessToken: "token-abc",
		StartAt:     time.Date(2025, 7, 12, 14, 0, 0, 0, time.UTC),
		EndAt:       time.Date(2025, 7, 12, 23, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now().UTC(),
	}
}

func TestCreateEventV1(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		//Arrange
		ownerID := uuid.New()
		mockService := &eventservice.MockEventService{}
		mockService.On("CreateEvent", mock.Anything, ownerID, "Summer Wedding", "", "2025-07-12", "2025-07-12", "14:00", "23:00").
			Return(sampleEvent(ownerID), nil)

		h, tokens := newTestServer(t, mockService)
		token, err := tokens.Issue(ownerID)
		require.NoError(t, err)

		body, err := json.Marshal(eventhandler.V1CreateEventRequest{
			Name:      "Summer Wedding",
			StartDate: "2025-07-12",
			EndDate:   "2025-07-12",
			StartTime: "14:00",
			EndTime:   "23:00",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/event", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusCreated, w.Code)
		var resp eventhandler.V1EventResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Summer Wedding", resp.Name)
		assert.Equal(t, "token-abc", resp.AccessToken)
		mockService.AssertExpectations(t)
	})

	t.Run("missing bearer token", func(t *testing.T) {
		mockService := &eventservice.MockEventService{}
		h, _ := newTestServer(t, mockService)

		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/event", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "CreateEvent")
	})

	t.Run("invalid event times", func(t *testing.T) {
		ownerID := uuid.New()
		mockService := &eventservice.MockEventService{}
		mockService.On("CreateEvent", mock.Anything, ownerID, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("start date cannot be in the past: %w", domain.ErrInvalidEventTimes))

		h, tokens := newTestServer(t, mockService)
		token, err := tokens.Issue(ownerID)
		require.NoError(t, err)

		body, err := json.Marshal(eventhandler.V1CreateEventRequest{
			Name:      "Yesterday",
			StartDate: "2020-01-01",
			EndDate:   "2020-01-01",
			StartTime: "10:00",
			EndTime:   "11:00",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/event", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, httpgo.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "start date cannot be in the past")
	})
}

func TestGetEventV1(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		mockService := &eventservice.MockEventService{}
		event := sampleEvent(uuid.New())
		mockService.On("GetEventByToken", mock.Anything, "token-abc").Return(event, nil)

		h, _ := newTestServer(t, mockService)

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/event/token-abc", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, httpgo.StatusOK, w.Code)
		var resp eventhandler.V1EventResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, event.ID, resp.ID)
		// guests never see the access token
		assert.Empty(t, resp.AccessToken)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := &eventservice.MockEventService{}
		mockService.On("GetEventByToken", mock.Anything, "unknown").Return(nil, domain.ErrEventNotFound)

		h, _ := newTestServer(t, mockService)

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/event/unknown", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, httpgo.StatusNotFound, w.Code)
	})
}

func TestListEventsV1(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		ownerID := uuid.New()
		mockService := &eventservice.MockEventService{}
		mockService.On("ListEvents", mock.Anything, ownerID).
			Return([]domain.Event{*sampleEvent(ownerID), *sampleEvent(ownerID)}, nil)

		h, tokens := newTestServer(t, mockService)
		token, err := tokens.Issue(ownerID)
		require.NoError(t, err)

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/event", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, httpgo.StatusOK, w.Code)
		var resp eventhandler.V1ListEventsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Events, 2)
	})

	t.Run("missing bearer token", func(t *testing.T) {
		mockService := &eventservice.MockEventService{}
		h, _ := newTestServer(t, mockService)

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/event", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, httpgo.StatusUnauthorized, w.Code)
	})
}
