package event

import (
	"encoding/json"
	"net/http"
	"photodrop/internal/pkg/auth"
)

type V1ListEventsResponse struct {
	Events []V1EventResponse `json:"events"`
}

// ListEventsV1 lists the events owned by the authenticated user
func (h *HandlerV1) ListEventsV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := auth.OwnerIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	events, err := h.eventService.ListEvents(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("error listing events", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1ListEventsResponse{Events: make([]V1EventResponse, 0, len(events))}
	for i := range events {
		resp.Events = append(resp.Events, toEventResponse(&events[i], true))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
