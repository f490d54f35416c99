package model

import "strconv"

// Photo is a reference to one photo on a photo page.
type Photo struct {
	// File is the photo file reference (path or URL).
	File string `yaml:"file" json:"file"`

	// Caption is optional text printed under the photo.
	Caption string `yaml:"caption" json:"caption,omitempty"`

	// TakenAt is the capture time, filled from EXIF when not supplied.
	TakenAt string `yaml:"taken_at" json:"taken_at,omitempty"`
}

// PhotoPage is one page of site photos.
type PhotoPage struct {
	PageNumber int     `yaml:"page_number" json:"page_number"`
	Photos     []Photo `yaml:"photos" json:"photos,omitempty"`
	Comments   string  `yaml:"comments" json:"comments,omitempty"`
}

// HasContent reports whether the page has at least one photo or comments.
func (p PhotoPage) HasContent() bool {
	return len(p.Photos) > 0 || p.Comments != ""
}

// Drawing formats.
const (
	DrawingFormatNormal = "normal"
	DrawingFormatLarge  = "large"
)

// Drawing is a locate drawing attached to the report.
type Drawing struct {
	Title      string `yaml:"title" json:"title,omitempty"`
	PageNumber int    `yaml:"page_number" json:"page_number"`

	// File is the drawing file reference. Drawings without one are not rendered.
	File string `yaml:"file" json:"file,omitempty"`

	// Format is DrawingFormatNormal or DrawingFormatLarge.
	Format string `yaml:"format" json:"format,omitempty"`
}

// HasFile reports whether the drawing has a file reference.
func (d Drawing) HasFile() bool {
	return d.File != ""
}

// IsLargeFormat reports whether the drawing prints on 11x17 paper.
func (d Drawing) IsLargeFormat() bool {
	return d.Format == DrawingFormatLarge
}

// FormatLabel returns a human-readable label for the paper format.
func (d Drawing) FormatLabel() string {
	if d.IsLargeFormat() {
		return "Large Format (11x17)"
	}
	return "Normal (Letter/A4)"
}

// DisplayTitle returns the title, or "Drawing <page>" when none is given.
func (d Drawing) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return "Drawing " + strconv.Itoa(d.PageNumber)
}
