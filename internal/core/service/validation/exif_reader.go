package validation

import (
	"bytes"
	"strconv"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// EmbeddedMetadata is what a metadataReader could salvage from an image
// payload. All fields are best-effort.
type EmbeddedMetadata struct {
	CreatedAt   *time.Time
	CameraMake  string
	CameraModel string
	ISO         string
	Quality     *float64
	Width       int
	Height      int
}

// metadataReader decodes embedded metadata from an image payload.
// Implementations return (nil, err) when the payload carries none.
type metadataReader interface {
	Read(data []byte) (*EmbeddedMetadata, error)
}

// exifReader is the default metadataReader, backed by goexif
type exifReader struct{}

// exifTimeLayout is the EXIF DateTime format. It carries no timezone;
// interpret as local time, matching how cameras record it.
const exifTimeLayout = "2006:01:02 15:04:05"

// dateFields is the fixed priority order for date-bearing tags. The first
// parseable field wins and the search stops there.
var dateFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.DateTime,
}

func (exifReader) Read(data []byte) (*EmbeddedMetadata, error) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var embedded EmbeddedMetadata

	for _, field := range dateFields {
		if t, ok := timeFromTag(x, field); ok {
			embedded.CreatedAt = &t
			break
		}
	}

	embedded.CameraMake, _ = stringFromTag(x, exif.Make)
	embedded.CameraModel, _ = stringFromTag(x, exif.Model)
	if iso, ok := intFromTag(x, exif.ISOSpeedRatings); ok {
		embedded.ISO = strconv.Itoa(iso)
	}

	// Non-standard tag some encoders write; absent on most photos.
	if quality, ok := intFromTag(x, exif.FieldName("Quality")); ok {
		q := float64(quality)
		embedded.Quality = &q
	}

	if w, ok := intFromTag(x, exif.PixelXDimension); ok {
		embedded.Width = w
	}
	if h, ok := intFromTag(x, exif.PixelYDimension); ok {
		embedded.Height = h
	}

	return &embedded, nil
}

func timeFromTag(x *exif.Exif, field exif.FieldName) (time.Time, bool) {
	s, ok := stringFromTag(x, field)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(exifTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func stringFromTag(x *exif.Exif, field exif.FieldName) (string, bool) {
	tag, err := x.Get(field)
	if err != nil {
		return "", false
	}
	s, err := tag.StringVal()
	if err != nil {
		return "", false
	}
	return s, true
}

func intFromTag(x *exif.Exif, field exif.FieldName) (int, bool) {
	tag, err := x.Get(field)
	if err != nil {
		return 0, false
	}
	n, err := tag.Int(0)
	if err != nil {
		return 0, false
	}
	return n, true
}
