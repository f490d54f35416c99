package photo

import (
	"errors"
	"testing"
	"time"
)

func TestReadMetadata_NoExif(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "plain text", data: []byte("not an image at all")},
		{name: "empty", data: []byte{}},
		{name: "png signature only", data: []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, err := ReadMetadata(tt.data)
			if !errors.Is(err, ErrNoExif) {
				t.Fatalf("ReadMetadata() error = %v, want ErrNoExif", err)
			}
			if !meta.TakenAt.IsZero() {
				t.Errorf("TakenAt = %v, want zero", meta.TakenAt)
			}
		})
	}
}

func TestParseExifTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "camera timestamp",
			value:  "2025:03:12 10:15:30",
			want:   time.Date(2025, 3, 12, 10, 15, 30, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "quoted with nul padding",
			value:  "\"2025:03:12 08:00:00\x00\"",
			want:   time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{name: "unset clock", value: "0000:00:00 00:00:00"},
		{name: "empty", value: ""},
		{name: "wrong layout", value: "2025-03-12 10:15:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parseExifTime(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("parseExifTime(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseExifTime(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
