package photo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	exif "github.com/dsoprea/go-exif/v3"
)

// exifTimeLayout is the layout of EXIF date/time tags.
const exifTimeLayout = "2006:01:02 15:04:05"

// TakenAtLayout is the layout written to Photo.TakenAt.
const TakenAtLayout = "2006-01-02 15:04"

// ErrNoExif is returned when image data carries no EXIF block.
var ErrNoExif = errors.New("no EXIF data")

// Metadata is the subset of EXIF data the report uses.
type Metadata struct {
	// TakenAt is the capture time. Zero when the camera did not record it.
	TakenAt time.Time

	// Camera is "Make Model", for debug logging.
	Camera string
}

// timeTags are tried in order; the first parseable one wins.
var timeTags = []string{"DateTimeOriginal", "DateTimeDigitized", "DateTime"}

// ReadMetadata extracts capture metadata from image bytes.
func ReadMetadata(data []byte) (Metadata, error) {
	var meta Metadata

	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil {
		if errors.Is(err, exif.ErrNoExif) {
			return meta, ErrNoExif
		}
		return meta, fmt.Errorf("failed to find EXIF data: %w", err)
	}
	if rawExif == nil {
		return meta, ErrNoExif
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return meta, fmt.Errorf("failed to parse EXIF data: %w", err)
	}

	tags := make(map[string]string, len(entries))
	for _, entry := range entries {
		if _, seen := tags[entry.TagName]; !seen {
			tags[entry.TagName] = strings.TrimSpace(entry.Formatted)
		}
	}

	for _, tag := range timeTags {
		if t, ok := parseExifTime(tags[tag]); ok {
			meta.TakenAt = t
			break
		}
	}
	meta.Camera = strings.TrimSpace(tags["Make"] + " " + tags["Model"])

	return meta, nil
}

// parseExifTime parses an EXIF date/time. Cameras without a set clock
// write all zeros, which is treated as absent.
func parseExifTime(value string) (time.Time, bool) {
	value = strings.Trim(value, "\x00 \"")
	if value == "" || strings.HasPrefix(value, "0000") {
		return time.Time{}, false
	}
	t, err := time.Parse(exifTimeLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
