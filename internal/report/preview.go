package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// DefaultPreviewWidth is the word-wrap width used when none is configured.
const DefaultPreviewWidth = 80

// PreviewWriter renders the Markdown form of a document for the terminal.
type PreviewWriter struct {
	baseWriter

	width     int
	stylePath string
}

// PreviewWriterOption configures a PreviewWriter.
type PreviewWriterOption func(*PreviewWriter)

// WithPreviewWidth sets the word-wrap width.
func WithPreviewWidth(width int) PreviewWriterOption {
	return func(w *PreviewWriter) {
		if width > 0 {
			w.width = width
		}
	}
}

// WithPreviewStyle sets a glamour style name ("dark", "light", "notty")
// instead of detecting one from the terminal.
func WithPreviewStyle(style string) PreviewWriterOption {
	return func(w *PreviewWriter) {
		w.stylePath = style
	}
}

// NewPreviewWriter creates a PreviewWriter that outputs to the given writer.
func NewPreviewWriter(output io.Writer, opts ...PreviewWriterOption) *PreviewWriter {
	w := &PreviewWriter{
		baseWriter: newBaseWriter(output),
		width:      DefaultPreviewWidth,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the document through glamour and writes the result.
func (w *PreviewWriter) Write(doc *Document) (int, error) {
	var md bytes.Buffer
	if _, err := NewMarkdownWriter(&md, WithMarkdownWarnings(true)).Write(doc); err != nil {
		return 0, err
	}

	style := glamour.WithAutoStyle()
	if w.stylePath != "" {
		style = glamour.WithStylePath(w.stylePath)
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(w.width))
	if err != nil {
		return 0, fmt.Errorf("failed to create preview renderer: %w", err)
	}

	out, err := renderer.Render(md.String())
	if err != nil {
		return 0, fmt.Errorf("failed to render preview: %w", err)
	}

	return io.WriteString(w.output, out)
}
