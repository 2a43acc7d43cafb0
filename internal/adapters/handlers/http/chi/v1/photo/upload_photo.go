package photo

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"photodrop/internal/core/domain"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 12 << 20

// V1UploadPhotoResponse is the response after a successful upload
type V1UploadPhotoResponse struct {
	Photo          V1PhotoResponse `json:"photo"`
	CreationSource string          `json:"creation_source"`
	Message        string          `json:"message,omitempty"`
}

// V1RejectedResponse explains why an upload was refused
type V1RejectedResponse struct {
	Errors  []string `json:"errors"`
	Message string   `json:"message,omitempty"`
}

// UploadPhotoV1 accepts a multipart upload for the event behind the access
// token. The optional last_modified field is unix milliseconds as reported
// by the client device.
func (h *HandlerV1) UploadPhotoV1(w http.ResponseWriter, r *http.Request) {

	accessToken := chi.URLParam(r, "accessToken")

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "photo file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("error reading uploaded file", "error", err)
		http.Error(w, "could not read file", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	rawFile := &domain.RawFile{
		Name:     header.Filename,
		MimeType: mimeType,
		Size:     int64(len(data)),
		Data:     data,
	}

	if lastModified := r.FormValue("last_modified"); lastModified != "" {
		millis, err := strconv.ParseInt(lastModified, 10, 64)
		if err != nil {
			http.Error(w, "last_modified must be unix milliseconds", http.StatusBadRequest)
			return
		}
		t := time.UnixMilli(millis)
		rawFile.LastModified = &t
	}

	photo, verdict, err := h.uploadService.SubmitPhoto(r.Context(), accessToken, rawFile)
	switch {
	case errors.Is(err, domain.ErrPhotoRejected):
		h.writeRejected(w, verdict, err)
		return
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrEventNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error submitting photo", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1UploadPhotoResponse{
			Photo:          toPhotoResponse(photo),
			CreationSource: string(photo.CreationSource),
		}
		if verdict != nil {
			resp.Message = verdict.Details.Message
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}

func (h *HandlerV1) writeRejected(w http.ResponseWriter, verdict *domain.TimeValidationResult, err error) {
	resp := V1RejectedResponse{
		Errors: []string{err.Error()},
	}
	var rejection *domain.RejectionError
	if errors.As(err, &rejection) {
		resp.Errors = rejection.Findings
	}
	if verdict != nil {
		resp.Message = verdict.Details.Message
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		h.logger.Error("error encoding response", "error", encodeErr)
	}
}
