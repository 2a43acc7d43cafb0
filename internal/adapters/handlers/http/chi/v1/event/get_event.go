package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"photodrop/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// GetEventV1 is the guest-facing handler that resolves an event from its
// access token. The token is never echoed back.
func (h *HandlerV1) GetEventV1(w http.ResponseWriter, r *http.Request) {

	accessToken := chi.URLParam(r, "accessToken")
	if accessToken == "" {
		http.Error(w, "access token required", http.StatusBadRequest)
		return
	}

	event, err := h.eventService.GetEventByToken(r.Context(), accessToken)
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error fetching event", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toEventResponse(event, false)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
