package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs documents in GitHub-flavored Markdown.
type MarkdownWriter struct {
	baseWriter

	// showWarnings adds a warning alert listing section warnings.
	showWarnings bool
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownWarnings adds a warning alert listing section warnings.
func WithMarkdownWarnings(show bool) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.showWarnings = show
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document in Markdown format.
func (w *MarkdownWriter) Write(doc *Document) (int, error) {
	md := markdown.NewMarkdown(w.output)

	for _, section := range doc.Sections {
		w.writeSection(md, section)
	}

	if w.showWarnings && doc.HasWarnings() {
		msgs := make([]string, len(doc.Warnings))
		for i, warning := range doc.Warnings {
			msgs[i] = warning.String()
		}
		md.Warningf("Rendered with %d warning(s): %s", len(doc.Warnings), strings.Join(msgs, "; "))
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// writeSection writes one section. The header title is the document title.
func (w *MarkdownWriter) writeSection(md *markdown.Markdown, section Section) {
	if section.Kind == SectionHeader {
		md.H1(section.Title)
	} else {
		md.H2(section.Title)
	}
	md.PlainText("")

	// Consecutive checkboxes form one list.
	var boxes []markdown.CheckBoxSet
	flush := func() {
		if len(boxes) > 0 {
			md.CheckBox(boxes)
			md.PlainText("")
			boxes = nil
		}
	}

	for _, b := range section.Blocks {
		if b.Kind == BlockCheckbox {
			boxes = append(boxes, markdown.CheckBoxSet{Checked: b.Checked, Text: b.Label})
			continue
		}
		flush()
		w.writeBlock(md, b)
	}
	flush()
}

func (w *MarkdownWriter) writeBlock(md *markdown.Markdown, b Block) {
	switch b.Kind {
	case BlockHeading:
		md.H3(b.Text)
		md.PlainText("")
	case BlockField:
		md.PlainTextf("**%s:** %s  ", b.Label, hardBreaks(b.Text))
	case BlockText:
		md.PlainText(hardBreaks(b.Text))
		md.PlainText("")
	case BlockPreformatted:
		md.PlainText("```")
		md.PlainText(b.Text)
		md.PlainText("```")
		md.PlainText("")
	case BlockImage:
		md.PlainTextf("![%s](%s)", b.Label, b.Ref)
		if b.Text != "" {
			md.PlainText("")
			md.PlainTextf("*%s*", b.Text)
		}
		md.PlainText("")
	case BlockTable:
		md.Table(markdown.TableSet{
			Header: b.Header,
			Rows:   b.Rows,
		})
		md.PlainText("")
	case BlockNotice:
		md.Note(b.Text)
		md.PlainText("")
	case BlockSeparator:
		// A rule directly under a paragraph would turn it into a heading.
		md.PlainText("")
		md.HorizontalRule()
		md.PlainText("")
	}
}

// hardBreaks keeps single line breaks as Markdown line breaks.
func hardBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", "  \n")
}
