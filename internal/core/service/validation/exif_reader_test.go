package validation

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"
	"time"

	"photodrop/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TIFF tag ids used by the fixture builder below.
const (
	tagMake              = 0x010F
	tagModel             = 0x0110
	tagDateTime          = 0x0132
	tagExifIFDPointer    = 0x8769
	tagISOSpeedRatings   = 0x8827
	tagDateTimeOriginal  = 0x9003
	tagDateTimeDigitized = 0x9004
	tagPixelXDimension   = 0xA002
	tagPixelYDimension   = 0xA003
)

type ifdEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value []byte
}

func asciiEntry(tag uint16, s string) ifdEntry {
	v := append([]byte(s), 0)
	return ifdEntry{tag: tag, typ: 2, count: uint32(len(v)), value: v}
}

func shortEntry(tag uint16, n uint16) ifdEntry {
	v := make([]byte, 2)
	binary.BigEndian.PutUint16(v, n)
	return ifdEntry{tag: tag, typ: 3, count: 1, value: v}
}

func longEntry(tag uint16, n uint32) ifdEntry {
	v := make([]byte, 4)
	binary.BigEndian.PutUint32(v, n)
	return ifdEntry{tag: tag, typ: 4, count: 1, value: v}
}

// buildTIFF assembles a big-endian TIFF stream with IFD0 and an optional
// Exif sub-IFD. Values wider than four bytes land in a trailer region and
// are referenced by absolute offset, per the TIFF layout.
func buildTIFF(ifd0, exifIFD []ifdEntry) []byte {
	const headerSize = 8
	ifdSize := func(n int) int { return 2 + n*12 + 4 }

	ifd0Entries := ifd0
	if len(exifIFD) > 0 {
		exifOffset := headerSize + ifdSize(len(ifd0)+1)
		ifd0Entries = append(append([]ifdEntry{}, ifd0...), longEntry(tagExifIFDPointer, uint32(exifOffset)))
	}

	trailerOffset := headerSize + ifdSize(len(ifd0Entries))
	if len(exifIFD) > 0 {
		trailerOffset += ifdSize(len(exifIFD))
	}

	var trailer bytes.Buffer
	writeIFD := func(buf *bytes.Buffer, entries []ifdEntry) {
		binary.Write(buf, binary.BigEndian, uint16(len(entries)))
		for _, e := range entries {
			binary.Write(buf, binary.BigEndian, e.tag)
			binary.Write(buf, binary.BigEndian, e.typ)
			binary.Write(buf, binary.BigEndian, e.count)
			if len(e.value) <= 4 {
				padded := make([]byte, 4)
				copy(padded, e.value)
				buf.Write(padded)
			} else {
				binary.Write(buf, binary.BigEndian, uint32(trailerOffset+trailer.Len()))
				trailer.Write(e.value)
			}
		}
		binary.Write(buf, binary.BigEndian, uint32(0))
	}

	var ifds bytes.Buffer
	writeIFD(&ifds, ifd0Entries)
	if len(exifIFD) > 0 {
		writeIFD(&ifds, exifIFD)
	}

	var out bytes.Buffer
	out.WriteString("MM")
	binary.Write(&out, binary.BigEndian, uint16(0x2A))
	binary.Write(&out, binary.BigEndian, uint32(headerSize))
	out.Write(ifds.Bytes())
	out.Write(trailer.Bytes())
	return out.Bytes()
}

// jpegWithEXIF wraps a TIFF stream in a minimal JPEG: SOI, an APP1 segment
// carrying the EXIF payload, EOI.
func jpegWithEXIF(ifd0, exifIFD []ifdEntry) []byte {
	payload := append([]byte("Exif\x00\x00"), buildTIFF(ifd0, exifIFD)...)

	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8})
	out.Write([]byte{0xFF, 0xE1})
	binary.Write(&out, binary.BigEndian, uint16(len(payload)+2))
	out.Write(payload)
	out.Write([]byte{0xFF, 0xD9})
	return out.Bytes()
}

func TestExifReader_Read(t *testing.T) {

	t.Run("prefers DateTimeOriginal and extracts camera fields", func(t *testing.T) {
		//Arrange
		data := jpegWithEXIF(
			[]ifdEntry{
				asciiEntry(tagMake, "Canon"),
				asciiEntry(tagModel, "EOS 5D Mark IV"),
				asciiEntry(tagDateTime, "2024:06:03 09:00:00"),
			},
			[]ifdEntry{
				shortEntry(tagISOSpeedRatings, 400),
				asciiEntry(tagDateTimeOriginal, "2024:06:01 14:30:05"),
				asciiEntry(tagDateTimeDigitized, "2024:06:02 10:00:00"),
				longEntry(tagPixelXDimension, 4000),
				longEntry(tagPixelYDimension, 3000),
			},
		)

		//Act
		embedded, err := exifReader{}.Read(data)

		//Assert
		require.NoError(t, err)
		require.NotNil(t, embedded.CreatedAt)
		assert.Equal(t, time.Date(2024, 6, 1, 14, 30, 5, 0, time.Local), *embedded.CreatedAt)
		assert.Equal(t, "Canon", embedded.CameraMake)
		assert.Equal(t, "EOS 5D Mark IV", embedded.CameraModel)
		assert.Equal(t, "400", embedded.ISO)
		assert.Equal(t, 4000, embedded.Width)
		assert.Equal(t, 3000, embedded.Height)
		assert.Nil(t, embedded.Quality)
	})

	t.Run("falls back to DateTimeDigitized", func(t *testing.T) {
		data := jpegWithEXIF(
			[]ifdEntry{asciiEntry(tagDateTime, "2024:06:03 09:00:00")},
			[]ifdEntry{asciiEntry(tagDateTimeDigitized, "2024:06:02 10:00:00")},
		)

		embedded, err := exifReader{}.Read(data)

		require.NoError(t, err)
		require.NotNil(t, embedded.CreatedAt)
		assert.Equal(t, time.Date(2024, 6, 2, 10, 0, 0, 0, time.Local), *embedded.CreatedAt)
	})

	t.Run("falls back to DateTime", func(t *testing.T) {
		data := jpegWithEXIF(
			[]ifdEntry{asciiEntry(tagDateTime, "2024:06:03 09:00:00")},
			nil,
		)

		embedded, err := exifReader{}.Read(data)

		require.NoError(t, err)
		require.NotNil(t, embedded.CreatedAt)
		assert.Equal(t, time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local), *embedded.CreatedAt)
	})

	t.Run("skips unparseable date tags", func(t *testing.T) {
		data := jpegWithEXIF(
			[]ifdEntry{asciiEntry(tagDateTime, "2024:06:03 09:00:00")},
			[]ifdEntry{asciiEntry(tagDateTimeOriginal, "not a timestamp")},
		)

		embedded, err := exifReader{}.Read(data)

		require.NoError(t, err)
		require.NotNil(t, embedded.CreatedAt)
		assert.Equal(t, time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local), *embedded.CreatedAt)
	})

	t.Run("no date tags leaves CreatedAt nil", func(t *testing.T) {
		data := jpegWithEXIF(
			[]ifdEntry{asciiEntry(tagMake, "Canon")},
			nil,
		)

		embedded, err := exifReader{}.Read(data)

		require.NoError(t, err)
		assert.Nil(t, embedded.CreatedAt)
		assert.Equal(t, "Canon", embedded.CameraMake)
	})

	t.Run("payload without EXIF errors", func(t *testing.T) {
		embedded, err := exifReader{}.Read([]byte("definitely not an image"))

		assert.Error(t, err)
		assert.Nil(t, embedded)
	})
}

func TestExtract_DefaultReaderDecodesEXIF(t *testing.T) {
	//Arrange
	data := jpegWithEXIF(
		[]ifdEntry{asciiEntry(tagMake, "Canon")},
		[]ifdEntry{asciiEntry(tagDateTimeOriginal, "2024:06:01 14:30:05")},
	)
	file := &domain.RawFile{
		Name:     "IMG_0042.jpg",
		MimeType: "image/jpeg",
		Size:     int64(len(data)),
		Data:     data,
	}
	extractor := newTestExtractor(exifReader{}, time.Now())

	//Act
	meta, err := extractor.Extract(context.Background(), file, domain.DefaultValidationConfig())

	//Assert
	require.NoError(t, err)
	assert.Empty(t, meta.ValidationErrors)
	assert.Equal(t, []domain.CreationSource{domain.CreationSourceEXIF}, meta.PossibleCreationSources)
	assert.True(t, meta.CreatedAt.Equal(time.Date(2024, 6, 1, 14, 30, 5, 0, time.Local)))
	assert.Equal(t, "Canon", meta.CameraMake)
}
