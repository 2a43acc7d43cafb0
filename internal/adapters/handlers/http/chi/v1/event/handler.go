package event

import (
	"log/slog"
	"net/http"
	"photodrop/internal/core/domain"
	"photodrop/internal/core/port"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 event routes
type HandlerV1 struct {
	eventService port.EventService
	requireAuth  func(http.Handler) http.Handler
	logger       *slog.Logger
}

// NewEventHandlerV1 creates HandlerV1
func NewEventHandlerV1(service port.EventService, requireAuth func(http.Handler) http.Handler, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		eventService: service,
		requireAuth:  requireAuth,
		logger:       logger,
	}
}

// Routes exposes routes. Creating and listing events needs an owner token,
// reading an event by its access token is open to guests.
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Post("/", h.CreateEventV1)
		r.Get("/", h.ListEventsV1)
	})
	router.Get("/{accessToken}", h.GetEventV1)

	return router
}

// V1EventResponse is the representation of an event in responses
type V1EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	AccessToken string    `json:"access_token,omitempty"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func toEventResponse(event *domain.Event, includeToken bool) V1EventResponse {
	resp := V1EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		StartAt:     event.StartAt,
		EndAt:       event.EndAt,
		CreatedAt:   event.CreatedAt,
	}
	if includeToken {
		resp.AccessToken = event.AccessToken
	}
	return resp
}
