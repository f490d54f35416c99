package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ruleWidth is the width of section rules and separators.
const ruleWidth = 70

// TextWriter outputs the canonical plain-text document.
// Every section starts with a marker line naming its kind, so downstream
// tools can split the text back into sections.
type TextWriter struct {
	baseWriter

	// showWarnings appends a WARNINGS block after the last section.
	showWarnings bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithWarnings appends collected section warnings to the output.
func WithWarnings(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showWarnings = show
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the document as plain text.
func (w *TextWriter) Write(doc *Document) (int, error) {
	var sb strings.Builder

	for _, section := range doc.Sections {
		w.writeSection(&sb, section)
	}

	if w.showWarnings && doc.HasWarnings() {
		w.writeRule(&sb, "=")
		sb.WriteString("WARNINGS\n")
		w.writeRule(&sb, "=")
		sb.WriteString("\n")
		for _, warning := range doc.Warnings {
			fmt.Fprintf(&sb, "  [!] %s\n", warning)
		}
		sb.WriteString("\n")
	}

	return w.output.Write([]byte(sb.String()))
}

// writeSection writes the section marker, title and blocks.
func (w *TextWriter) writeSection(sb *strings.Builder, section Section) {
	w.writeRule(sb, "=")
	fmt.Fprintf(sb, "%s [%s]\n", section.Title, section.Kind)
	w.writeRule(sb, "=")
	sb.WriteString("\n")

	for _, block := range section.Blocks {
		w.writeBlock(sb, block)
	}
	sb.WriteString("\n")
}

func (w *TextWriter) writeBlock(sb *strings.Builder, b Block) {
	switch b.Kind {
	case BlockHeading:
		sb.WriteString(b.Text + "\n")
		sb.WriteString(strings.Repeat("-", utf8.RuneCountInString(b.Text)) + "\n")
	case BlockField:
		fmt.Fprintf(sb, "%s: %s\n", b.Label, b.Text)
	case BlockText:
		sb.WriteString(b.Text + "\n\n")
	case BlockPreformatted:
		sb.WriteString(b.Text + "\n\n")
	case BlockCheckbox:
		mark := " "
		if b.Checked {
			mark = "x"
		}
		fmt.Fprintf(sb, "[%s] %s\n", mark, b.Label)
	case BlockImage:
		fmt.Fprintf(sb, "[image: %s] %s\n", b.Label, b.Ref)
		if b.Text != "" {
			sb.WriteString("  " + b.Text + "\n")
		}
	case BlockTable:
		writeTextTable(sb, b.Header, b.Rows)
		sb.WriteString("\n")
	case BlockNotice:
		sb.WriteString("NOTICE: " + b.Text + "\n")
	case BlockSeparator:
		w.writeRule(sb, "-")
		sb.WriteString("\n")
	}
}

func (w *TextWriter) writeRule(sb *strings.Builder, char string) {
	sb.WriteString(strings.Repeat(char, ruleWidth))
	sb.WriteString("\n")
}

// writeTextTable writes a column-aligned table with a dashed header rule.
func writeTextTable(sb *strings.Builder, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if n := utf8.RuneCountInString(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(widths))
		for i := range widths {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " ") + "\n")
	}

	writeRow(header)
	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	sb.WriteString(strings.Join(rule, "  ") + "\n")
	for _, row := range rows {
		writeRow(row)
	}
}
