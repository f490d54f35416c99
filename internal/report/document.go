package report

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
)

// SectionKind identifies a section of the document. The value doubles as
// the section marker in text and HTML output.
type SectionKind string

// Sections in document order.
const (
	SectionHeader      SectionKind = "header"
	SectionWeather     SectionKind = "weather"
	SectionBilling     SectionKind = "billing_details"
	SectionWorkSummary SectionKind = "work_summary"
	SectionClient      SectionKind = "client_fields"
	SectionMissingDocs SectionKind = "missing_docs"
	SectionPhotos      SectionKind = "photos"
	SectionDrawings    SectionKind = "drawings"
	SectionLegend      SectionKind = "drawing_legend"
	SectionDisclaimer  SectionKind = "disclaimer"
)

// BlockKind identifies the kind of content a Block carries.
type BlockKind string

// Block kinds.
const (
	// BlockHeading is a sub-heading inside a section (photo page, drawing title).
	BlockHeading BlockKind = "heading"

	// BlockField is a "Label: value" line.
	BlockField BlockKind = "field"

	// BlockText is a paragraph. Line breaks inside Text are kept.
	BlockText BlockKind = "text"

	// BlockPreformatted is column-aligned text that must keep its spacing.
	BlockPreformatted BlockKind = "preformatted"

	// BlockCheckbox is a checked or unchecked box with a label.
	BlockCheckbox BlockKind = "checkbox"

	// BlockImage is a reference to a photo, drawing or signature file.
	BlockImage BlockKind = "image"

	// BlockTable is a table with a header row.
	BlockTable BlockKind = "table"

	// BlockNotice is a highlighted legal or handling notice.
	BlockNotice BlockKind = "notice"

	// BlockSeparator ends a repeated item (photo page, drawing).
	BlockSeparator BlockKind = "separator"
)

// Block is one piece of section content. Only the fields relevant to Kind
// are set.
type Block struct {
	Kind    BlockKind  `json:"kind"`
	Label   string     `json:"label,omitempty"`
	Text    string     `json:"text,omitempty"`
	Checked bool       `json:"checked,omitempty"`
	Ref     string     `json:"ref,omitempty"`
	Header  []string   `json:"header,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

// Heading returns a heading block.
func Heading(text string) Block {
	return Block{Kind: BlockHeading, Text: text}
}

// Field returns a "label: value" block.
func Field(label, value string) Block {
	return Block{Kind: BlockField, Label: label, Text: value}
}

// Text returns a paragraph block.
func Text(text string) Block {
	return Block{Kind: BlockText, Text: text}
}

// Preformatted returns a block whose spacing must be preserved.
func Preformatted(text string) Block {
	return Block{Kind: BlockPreformatted, Text: text}
}

// Checkbox returns a checkbox block.
func Checkbox(label string, checked bool) Block {
	return Block{Kind: BlockCheckbox, Label: label, Checked: checked}
}

// Image returns an image reference block. Label is used as alt text and
// caption is printed under the image.
func Image(label, ref, caption string) Block {
	return Block{Kind: BlockImage, Label: label, Ref: ref, Text: caption}
}

// Table returns a table block.
func Table(header []string, rows [][]string) Block {
	return Block{Kind: BlockTable, Header: header, Rows: rows}
}

// Notice returns a notice block.
func Notice(text string) Block {
	return Block{Kind: BlockNotice, Text: text}
}

// Separator returns a separator block.
func Separator() Block {
	return Block{Kind: BlockSeparator}
}

// Section is one independently gated part of the document.
type Section struct {
	Kind   SectionKind `json:"kind"`
	Title  string      `json:"title,omitempty"`
	Blocks []Block     `json:"blocks"`
}

// add appends blocks to the section.
func (s *Section) add(blocks ...Block) {
	s.Blocks = append(s.Blocks, blocks...)
}

// SectionRenderWarning records a non-fatal problem found while rendering a
// section. The section is still present, possibly with less content.
type SectionRenderWarning struct {
	Section SectionKind `json:"section"`
	Message string      `json:"message"`
}

// String returns "section: message".
func (w SectionRenderWarning) String() string {
	return fmt.Sprintf("%s: %s", w.Section, w.Message)
}

// Document is a rendered Site Locate Report.
type Document struct {
	// FormVersion is the static form version printed in the header stamp.
	FormVersion string `json:"form_version"`

	// IssuedOn is the date the document was rendered (time of day is zero).
	IssuedOn time.Time `json:"issued_on"`

	// JobNumber and RevisionNumber identify the report this was rendered from.
	JobNumber      string `json:"job_number"`
	RevisionNumber int    `json:"revision_number"`

	// Sections are in fixed document order; omitted sections are absent.
	Sections []Section `json:"sections"`

	// Warnings are collected from every section in document order.
	Warnings []SectionRenderWarning `json:"warnings,omitempty"`
}

// Section returns the section of the given kind.
func (d *Document) Section(kind SectionKind) (*Section, bool) {
	for i := range d.Sections {
		if d.Sections[i].Kind == kind {
			return &d.Sections[i], true
		}
	}
	return nil, false
}

// HasSection reports whether a section of the given kind is present.
func (d *Document) HasSection(kind SectionKind) bool {
	_, ok := d.Section(kind)
	return ok
}

// HasWarnings reports whether any section produced a warning.
func (d *Document) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Text returns the canonical plain-text rendering of the document.
func (d *Document) Text() string {
	var sb strings.Builder
	_, _ = NewTextWriter(&sb).Write(d)
	return sb.String()
}

// Fingerprint returns the hex SHA3-256 digest of the canonical text.
// Two renders of the same report on the same day share a fingerprint.
func (d *Document) Fingerprint() string {
	sum := sha3.Sum256([]byte(d.Text()))
	return hex.EncodeToString(sum[:])
}
