package report

import (
	"errors"
	"fmt"
	"io"
)

// Output formats accepted by NewFormatWriter.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// ErrUnknownFormat is returned for an output format with no writer.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the output formats in the order they are documented.
func Formats() []string {
	return []string{FormatText, FormatMarkdown, FormatHTML, FormatJSON}
}

// FileExtension returns the file extension used for the format.
func FileExtension(format string) string {
	switch format {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// NewFormatWriter returns the writer for the named format.
// withWarnings controls whether text, markdown and HTML output list warnings.
func NewFormatWriter(format string, output io.Writer, withWarnings bool) (Writer, error) {
	switch format {
	case FormatText:
		return NewTextWriter(output, WithWarnings(withWarnings)), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output, WithMarkdownWarnings(withWarnings)), nil
	case FormatHTML:
		return NewHTMLWriter(output, WithHTMLWarnings(withWarnings)), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Writer defines the interface for document output.
// Implementations write a rendered document in one concrete format.
type Writer interface {
	// Write outputs the document to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(doc *Document) (int, error)
}

// MultiWriter writes to multiple Writers in order.
// Stops on the first error encountered.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the document to all configured Writers.
// Returns the total bytes written across all writers.
func (m *MultiWriter) Write(doc *Document) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(doc)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for document writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
