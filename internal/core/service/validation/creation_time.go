package validation

import (
	"fmt"
	"photodrop/internal/core/domain"
	"time"
)

// ValidateCreationTime decides whether a file's inferred creation time falls
// inside the event window expanded by cfg.TimeBufferMinutes on both ends.
// Bounds are inclusive. Pure function; assumes meta.CreatedAt was populated
// by the extractor.
func ValidateCreationTime(meta *domain.FileMetadata, eventStart, eventEnd time.Time, cfg domain.ValidationConfig) domain.TimeValidationResult {
	buffer := time.Duration(cfg.TimeBufferMinutes) * time.Minute
	windowStart := eventStart.Add(-buffer)
	windowEnd := eventEnd.Add(buffer)
	createdAt := meta.CreatedAt

	details := domain.TimeValidationDetails{
		FileCreatedAt: createdAt.Format(time.RFC3339),
		EventStart:    eventStart.Format(time.RFC3339),
		EventEnd:      eventEnd.Format(time.RFC3339),
	}
	if len(meta.PossibleCreationSources) > 0 {
		details.CreationSource = meta.PossibleCreationSources[0]
	}

	result := domain.TimeValidationResult{CreatedAt: createdAt}

	switch {
	case createdAt.Before(windowStart):
		offset := int64(windowStart.Sub(createdAt) / time.Minute)
		details.TimeOffsetMinutes = &offset
		details.Direction = "before"
		details.Message = fmt.Sprintf("photo was taken %d minutes before the event window", offset)
	case createdAt.After(windowEnd):
		offset := int64(createdAt.Sub(windowEnd) / time.Minute)
		details.TimeOffsetMinutes = &offset
		details.Direction = "after"
		details.Message = fmt.Sprintf("photo was taken %d minutes after the event window", offset)
	default:
		result.IsValid = true
		details.Message = fmt.Sprintf("photo creation time verified via %s", details.CreationSource)
	}

	result.Details = details
	return result
}
