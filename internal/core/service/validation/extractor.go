// Package validation holds the photo validation core: metadata extraction,
// creation-time window checks and event time-range checks. All findings are
// returned as data so callers can surface every reason at once.
package validation

import (
	"context"
	"fmt"
	"log/slog"
	"photodrop/internal/core/domain"
	"photodrop/internal/core/port"
	"strings"
	"time"
)

const bytesPerMB = 1 << 20

// Extractor inspects raw uploaded files and produces FileMetadata.
// It never fails on domain problems; those accumulate on the metadata.
type Extractor struct {
	meta   metadataReader
	logger *slog.Logger
	now    func() time.Time
}

// NewExtractor creates an Extractor backed by the default EXIF reader
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{
		meta:   exifReader{},
		logger: logger,
		now:    time.Now,
	}
}

// Extract validates file against cfg and derives its best-guess creation
// time. It returns an error only when file misses required fields; every
// other problem is recorded on the returned FileMetadata.
func (e *Extractor) Extract(ctx context.Context, file *domain.RawFile, cfg domain.ValidationConfig) (*domain.FileMetadata, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: no file provided", domain.ErrInvalidInput)
	}
	if file.Name == "" || file.MimeType == "" || file.Size == 0 || len(file.Data) == 0 {
		return nil, fmt.Errorf("%w: file name, mime type, size and data are required", domain.ErrInvalidInput)
	}

	meta := &domain.FileMetadata{
		OriginalName: file.Name,
		MimeType:     file.MimeType,
		Size:         file.Size,
		SizeMB:       float64(file.Size) / bytesPerMB,
	}

	if meta.SizeMB > cfg.MaxFileSizeMB {
		meta.ValidationErrors = append(meta.ValidationErrors,
			fmt.Sprintf("file size %.2fMB exceeds the maximum of %.2fMB", meta.SizeMB, cfg.MaxFileSizeMB))
	}

	if !cfg.MimeAllowed(file.MimeType) {
		meta.ValidationErrors = append(meta.ValidationErrors,
			fmt.Sprintf("file type %s is not allowed (allowed types: %s)", file.MimeType, strings.Join(cfg.AllowedMimeTypes, ", ")))
	}

	var embedded *EmbeddedMetadata
	if strings.HasPrefix(file.MimeType, "image/") {
		embedded = e.readEmbedded(ctx, file.Data, cfg.MetadataTimeout, meta)
	}

	// Provenance chain: strongest available signal wins, evaluation stops
	// at the first success.
	candidates := []struct {
		source  domain.CreationSource
		resolve func() *time.Time
	}{
		{domain.CreationSourceEXIF, func() *time.Time {
			if embedded == nil {
				return nil
			}
			return embedded.CreatedAt
		}},
		{domain.CreationSourceLastModified, func() *time.Time {
			return file.LastModified
		}},
		{domain.CreationSourceCurrent, func() *time.Time {
			t := e.now()
			return &t
		}},
	}

	for _, candidate := range candidates {
		t := candidate.resolve()
		if t == nil {
			continue
		}
		meta.CreatedAt = *t
		meta.PossibleCreationSources = append(meta.PossibleCreationSources, candidate.source)
		if candidate.source == domain.CreationSourceCurrent {
			if cfg.RequireOriginalPhoto {
				meta.ValidationErrors = append(meta.ValidationErrors,
					"cannot verify the original creation time of this photo")
			} else {
				meta.ValidationWarnings = append(meta.ValidationWarnings,
					"creation time falls back to the current time and may not reflect when the photo was actually taken")
			}
		}
		break
	}

	return meta, nil
}

// readEmbedded runs the metadata reader as a bounded unit of work so a
// corrupt or adversarial payload cannot stall the request pipeline.
func (e *Extractor) readEmbedded(ctx context.Context, data []byte, timeout time.Duration, meta *domain.FileMetadata) *EmbeddedMetadata {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type readResult struct {
		embedded *EmbeddedMetadata
		err      error
	}
	done := make(chan readResult, 1)
	go func() {
		embedded, err := e.meta.Read(data)
		done <- readResult{embedded, err}
	}()

	select {
	case <-ctx.Done():
		e.logger.Warn("embedded metadata read cancelled", "file", meta.OriginalName, "error", ctx.Err())
		meta.ValidationWarnings = append(meta.ValidationWarnings, "reading embedded metadata timed out")
		return nil
	case res := <-done:
		if res.err != nil || res.embedded == nil {
			meta.ValidationWarnings = append(meta.ValidationWarnings, "no EXIF data found in image")
			return nil
		}
		embedded := res.embedded
		if embedded.CreatedAt == nil {
			meta.ValidationWarnings = append(meta.ValidationWarnings, "no EXIF data found in image")
		}
		if embedded.Quality != nil {
			score := *embedded.Quality / 100
			meta.QualityScore = &score
		}
		if embedded.Width > 0 && embedded.Height > 0 {
			meta.Dimensions = &domain.Dimensions{Width: embedded.Width, Height: embedded.Height}
		}
		meta.CameraMake = embedded.CameraMake
		meta.CameraModel = embedded.CameraModel
		meta.ISO = embedded.ISO
		return embedded
	}
}

var _ port.MetadataExtractor = (*Extractor)(nil)
