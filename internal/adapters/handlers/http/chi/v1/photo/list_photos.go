package photo

import (
	"encoding/json"
	"errors"
	"net/http"
	"photodrop/internal/core/domain"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type V1ListPhotosResponse struct {
	Photos []V1PhotoResponse `json:"photos"`
	Total  int               `json:"total"`
}

// ListPhotosV1 lists the event's photos with presigned download urls
func (h *HandlerV1) ListPhotosV1(w http.ResponseWriter, r *http.Request) {

	accessToken := chi.URLParam(r, "accessToken")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "limit must be a number", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "offset must be a number", http.StatusBadRequest)
			return
		}
		offset = parsed
	}

	downloads, total, err := h.uploadService.ListPhotos(r.Context(), accessToken, limit, offset)
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error listing photos", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1ListPhotosResponse{
			Photos: make([]V1PhotoResponse, 0, len(downloads)),
			Total:  total,
		}
		for i := range downloads {
			photoResp := toPhotoResponse(&downloads[i].Photo)
			photoResp.URL = downloads[i].URL
			photoResp.URLExpiresAt = downloads[i].URLExpiresAt
			resp.Photos = append(resp.Photos, photoResp)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
