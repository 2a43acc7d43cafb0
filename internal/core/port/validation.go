package port

import (
	"context"
	"photodrop/internal/core/domain"
)

// MetadataExtractor builds a FileMetadata description of an untrusted file.
// Implementations return an error only for malformed input; domain findings
// are accumulated on the returned metadata.
type MetadataExtractor interface {
	Extract(ctx context.Context, file *domain.RawFile, cfg domain.ValidationConfig) (*domain.FileMetadata, error)
}
