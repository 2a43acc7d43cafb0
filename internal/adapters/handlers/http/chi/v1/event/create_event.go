package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"photodrop/internal/core/domain"
	"photodrop/internal/pkg/auth"
)

// V1CreateEventRequest is the body request for Create Event
type V1CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// CreateEventV1 is the handler for create event v1
func (h *HandlerV1) CreateEventV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := auth.OwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req V1CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding create event request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	event, err := h.eventService.CreateEvent(r.Context(), ownerID, req.Name, req.Description, req.StartDate, req.EndDate, req.StartTime, req.EndTime)
	switch {
	case errors.Is(err, domain.ErrInvalidEventTimes):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error creating event", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toEventResponse(event, true)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
