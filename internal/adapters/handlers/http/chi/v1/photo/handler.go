package photo

import (
	"log/slog"
	"net/http"
	"photodrop/internal/core/domain"
	"photodrop/internal/core/port"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 photo routes, mounted under an event's
// access token
type HandlerV1 struct {
	uploadService port.UploadService
	requireAuth   func(http.Handler) http.Handler
	logger        *slog.Logger
}

// NewPhotoHandlerV1 creates HandlerV1
func NewPhotoHandlerV1(service port.UploadService, requireAuth func(http.Handler) http.Handler, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		requireAuth:   requireAuth,
		logger:        logger,
	}
}

// Routes exposes routes. Uploading and listing are for guests holding the
// access token, deleting is for the event owner.
func (h *HandlerV1) Routes(rateLimited func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.With(rateLimited).Post("/", h.UploadPhotoV1)
	router.Get("/", h.ListPhotosV1)
	router.With(h.requireAuth).Delete("/{photoID}", h.DeletePhotoV1)

	return router
}

// V1PhotoResponse is the representation of a photo in responses
type V1PhotoResponse struct {
	ID             uuid.UUID  `json:"id"`
	OriginalName   string     `json:"original_name"`
	MimeType       string     `json:"mime_type"`
	SizeBytes      int64      `json:"size_bytes"`
	TakenAt        time.Time  `json:"taken_at"`
	CreationSource string     `json:"creation_source"`
	Warnings       []string   `json:"warnings,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	URL            string     `json:"url,omitempty"`
	URLExpiresAt   *time.Time `json:"url_expires_at,omitempty"`
}

func toPhotoResponse(photo *domain.Photo) V1PhotoResponse {
	return V1PhotoResponse{
		ID:             photo.ID,
		OriginalName:   photo.OriginalName,
		MimeType:       photo.MimeType,
		SizeBytes:      photo.SizeBytes,
		TakenAt:        photo.TakenAt,
		CreationSource: string(photo.CreationSource),
		Warnings:       photo.Warnings,
		Status:         string(photo.Status),
		CreatedAt:      photo.CreatedAt,
	}
}
