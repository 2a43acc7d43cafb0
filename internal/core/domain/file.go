package domain

import "time"

// CreationSource describes which signal a photo's creation time was derived from.
//
// The priority order is:
//  1. EXIF
//  2. lastModifiedDate
//  3. current
type CreationSource string

const (
	CreationSourceEXIF         CreationSource = "EXIF"
	CreationSourceLastModified CreationSource = "lastModifiedDate"
	CreationSourceCurrent      CreationSource = "current"
)

// RawFile is an untrusted uploaded file before any validation ran
type RawFile struct {
	Name         string
	MimeType     string
	Size         int64
	Data         []byte
	LastModified *time.Time
}

// Dimensions holds pixel dimensions of an image
type Dimensions struct {
	Width  int
	Height int
}

// FileMetadata is the extractor's description of an uploaded file.
// ValidationErrors blocking, ValidationWarnings advisory.
type FileMetadata struct {
	OriginalName            string
	MimeType                string
	Size                    int64
	SizeMB                  float64
	Dimensions              *Dimensions
	QualityScore            *float64
	PossibleCreationSources []CreationSource
	CreatedAt               time.Time
	CameraMake              string
	CameraModel             string
	ISO                     string
	ValidationErrors        []string
	ValidationWarnings      []string
}
