package photo

import (
	"errors"
	"net/http"
	"photodrop/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DeletePhotoV1 soft deletes a photo of the event. Requires an owner token.
func (h *HandlerV1) DeletePhotoV1(w http.ResponseWriter, r *http.Request) {

	accessToken := chi.URLParam(r, "accessToken")

	photoID, err := uuid.Parse(chi.URLParam(r, "photoID"))
	if err != nil {
		http.Error(w, "invalid photo id", http.StatusBadRequest)
		return
	}

	err = h.uploadService.DeletePhoto(r.Context(), accessToken, photoID)
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrPhotoNotFound):
		http.Error(w, "photo not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error deleting photo", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
