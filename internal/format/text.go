package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// HeaderWidth is the column at which content starts in an aligned line.
const HeaderWidth = 18

// MakeLine returns "HEADER:" padded to HeaderWidth followed by content.
// It returns an empty string when content is empty.
func MakeLine(header, content string) string {
	if content == "" {
		return ""
	}
	s := header + ":"
	if len(s) < HeaderWidth {
		s += strings.Repeat(" ", HeaderWidth-len(s))
	}
	return s + content
}

// MakeContinuationLine indents content so it aligns with MakeLine content.
func MakeContinuationLine(content string) string {
	if content == "" {
		return ""
	}
	return strings.Repeat(" ", HeaderWidth) + content
}

// OxfordJoin joins items with commas and a final "and".
//
//	[a]       -> "a"
//	[a b]     -> "a and b"
//	[a b c]   -> "a, b, and c"
func OxfordJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// FormatNumber rounds n to two decimals and strips trailing zeros.
func FormatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	rounded := math.Round(n*100) / 100
	s := strconv.FormatFloat(rounded, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatTime12Hour converts a time of day to "9:30 am" form.
//
// Accepted inputs are "HH:MM", "HHMM", "H", or a value that already carries an
// am/pm suffix (returned lower-cased as is). Values that cannot be parsed are
// returned unchanged.
func FormatTime12Hour(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return ""
	}
	if strings.Contains(v, "am") || strings.Contains(v, "pm") {
		return v
	}

	digits := strings.ReplaceAll(v, ":", "")
	var hourText, minuteText string
	if len(digits) <= 2 {
		hourText, minuteText = digits, "0"
	} else {
		hourText, minuteText = digits[:len(digits)-2], digits[len(digits)-2:]
	}

	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return v
	}
	minute, err := strconv.Atoi(minuteText)
	if err != nil {
		return v
	}
	return clock12(hour, minute)
}

// FormatClock converts a time.Time to "9:30 am" form.
func FormatClock(t time.Time) string {
	return clock12(t.Hour(), t.Minute())
}

func clock12(hour, minute int) string {
	switch {
	case hour == 0 || hour == 24:
		return fmt.Sprintf("12:%02d am", minute)
	case hour < 12:
		return fmt.Sprintf("%d:%02d am", hour, minute)
	case hour == 12:
		return fmt.Sprintf("12:%02d pm", minute)
	default:
		return fmt.Sprintf("%d:%02d pm", hour-12, minute)
	}
}
