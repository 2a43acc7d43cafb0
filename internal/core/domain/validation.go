package domain

import "time"

// ValidationConfig drives photo and event-time validation. It is treated as
// an immutable value: callers pass it per call and never mutate a shared
// instance.
//
// MinImageWidth, MinImageHeight and MinQualityScore are informational only,
// they are carried in the config shape but not enforced.
type ValidationConfig struct {
	MaxFileSizeMB        float64
	MinImageWidth        int
	MinImageHeight       int
	TimeBufferMinutes    int
	AllowedMimeTypes     []string
	RequireOriginalPhoto bool
	MinQualityScore      float64
	MetadataTimeout      time.Duration
}

// DefaultValidationConfig returns the process-wide default configuration,
// applied whenever the configuration source does not override it.
func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		MaxFileSizeMB:        10,
		MinImageWidth:        800,
		MinImageHeight:       600,
		TimeBufferMinutes:    60,
		AllowedMimeTypes:     []string{"image/jpeg", "image/png", "image/heic", "image/heif"},
		RequireOriginalPhoto: false,
		MinQualityScore:      0.5,
		MetadataTimeout:      5 * time.Second,
	}
}

// MimeAllowed reports whether mimeType is in the allowed set
func (c ValidationConfig) MimeAllowed(mimeType string) bool {
	for _, allowed := range c.AllowedMimeTypes {
		if allowed == mimeType {
			return true
		}
	}
	return false
}

// TimeValidationDetails carries the human-readable breakdown of a
// creation-time verdict. Timestamps are RFC3339 strings.
type TimeValidationDetails struct {
	FileCreatedAt     string
	EventStart        string
	EventEnd          string
	CreationSource    CreationSource
	TimeOffsetMinutes *int64
	Direction         string
	Message           string
}

// TimeValidationResult is the creation-time validator's verdict
type TimeValidationResult struct {
	IsValid   bool
	CreatedAt time.Time
	Details   TimeValidationDetails
}

// EventTimeValidationResult is the event time-range validator's verdict.
// Errors is empty iff IsValid.
type EventTimeValidationResult struct {
	IsValid bool
	Errors  []string
}
