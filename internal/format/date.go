package format

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateStyle selects the layout produced by a DateFormatter.
type DateStyle int

const (
	// DateLong renders dates as "January 2, 2006".
	DateLong DateStyle = iota

	// DateShort renders dates as "1/2/06".
	DateShort
)

// String returns the style name.
func (s DateStyle) String() string {
	switch s {
	case DateLong:
		return "long"
	case DateShort:
		return "short"
	default:
		return "unknown"
	}
}

// Layouts for each DateStyle.
const (
	LongLayout  = "January 2, 2006"
	ShortLayout = "1/2/06"
)

// ErrEmptyDate is returned when an empty date string is formatted.
var ErrEmptyDate = errors.New("empty date")

// DateFormatter turns a date string from a report into display text.
// Implementations must be safe for concurrent use.
type DateFormatter interface {
	Format(date string, style DateStyle) (string, error)
}

// inputLayouts are the date layouts accepted by LayoutDateFormatter.
// Report data is produced by the job-management backend as ISO dates, but
// hand-written YAML files often use slashes or a full timestamp.
var inputLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// LayoutDateFormatter parses dates with a fixed list of input layouts and
// renders them with the layout of the requested style.
type LayoutDateFormatter struct {
	long  string
	short string
}

// NewDateFormatter returns a DateFormatter with the default long and short layouts.
func NewDateFormatter() *LayoutDateFormatter {
	return &LayoutDateFormatter{
		long:  LongLayout,
		short: ShortLayout,
	}
}

// NewDateFormatterWithLayouts returns a DateFormatter using custom output layouts.
// Empty layouts fall back to the defaults.
func NewDateFormatterWithLayouts(long, short string) *LayoutDateFormatter {
	f := NewDateFormatter()
	if long != "" {
		f.long = long
	}
	if short != "" {
		f.short = short
	}
	return f
}

// Format parses date and renders it in the given style.
func (f *LayoutDateFormatter) Format(date string, style DateStyle) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return f.FormatTime(t, style), nil
}

// FormatTime renders an already parsed time in the given style.
func (f *LayoutDateFormatter) FormatTime(t time.Time, style DateStyle) string {
	if style == DateShort {
		return t.Format(f.short)
	}
	return t.Format(f.long)
}

// ParseDate parses a report date using the accepted input layouts.
func ParseDate(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, ErrEmptyDate
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("malformed date %q", date)
}
