package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/locatereport/internal/model"
)

// DefaultMaxReportSize limits report files to 10MB, which leaves room for
// signatures embedded as data URLs.
const DefaultMaxReportSize = 10 * 1024 * 1024

var (
	// ErrReportTooLarge is returned when a report file exceeds the size limit.
	ErrReportTooLarge = errors.New("report file too large")

	// ErrUnsupportedInput is returned for a file that is neither YAML nor JSON.
	ErrUnsupportedInput = errors.New("unsupported report file: expected .yaml, .yml or .json")

	// ErrEmptyReport is returned when the report file has no content.
	ErrEmptyReport = errors.New("report file is empty")
)

// LoadReport reads a report record from a YAML or JSON file.
// Unknown keys are rejected so that a misspelled field is not silently
// left out of the issued document.
func LoadReport(path string, maxSize int64) (*model.Report, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxReportSize
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	// Read one byte past the limit to detect oversized files.
	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrReportTooLarge, path, maxSize)
	}

	r, err := DecodeReport(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// DecodeReport decodes a report record. ext selects the decoder and is
// one of ".yaml", ".yml" or ".json".
func DecodeReport(data []byte, ext string) (*model.Report, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyReport
	}

	r := model.NewReport()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(r); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(r); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w (got %q)", ErrUnsupportedInput, ext)
	}
	return r, nil
}
