package photo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/locatereport/internal/model"
)

func newTestAnnotator(baseDir string) *Annotator {
	return NewAnnotator(baseDir, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestAnnotator_Annotate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plain.jpg"), []byte("no exif here"), 0o600); err != nil {
		t.Fatal(err)
	}

	r := model.NewReport()
	r.PhotoPages = []model.PhotoPage{
		{
			PageNumber: 1,
			Photos: []model.Photo{
				{File: "plain.jpg"},
				{File: "missing.jpg"},
				{File: "https://example.com/site.jpg"},
				{File: "preset.jpg", TakenAt: "2025-03-12 09:30"},
				{File: ""},
			},
		},
	}

	n, err := newTestAnnotator(dir).Annotate(context.Background(), r)
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Annotate() = %d, want 0", n)
	}

	want := []string{"", "", "", "2025-03-12 09:30", ""}
	for i, p := range r.PhotoPages[0].Photos {
		if p.TakenAt != want[i] {
			t.Errorf("photo %d TakenAt = %q, want %q", i, p.TakenAt, want[i])
		}
	}
}

func TestAnnotator_NilReport(t *testing.T) {
	t.Parallel()

	n, err := newTestAnnotator("").Annotate(context.Background(), nil)
	if err != nil || n != 0 {
		t.Errorf("Annotate(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestAnnotator_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := model.NewReport()
	r.PhotoPages = []model.PhotoPage{{PageNumber: 1, Photos: []model.Photo{{File: "a.jpg"}}}}

	_, err := newTestAnnotator(t.TempDir()).Annotate(ctx, r)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Annotate() error = %v, want context.Canceled", err)
	}
}

func TestAnnotator_resolve(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(string(filepath.Separator), "photos", "a.jpg")

	tests := []struct {
		name    string
		baseDir string
		ref     string
		want    string
	}{
		{name: "relative", baseDir: "reports", ref: "a.jpg", want: filepath.Join("reports", "a.jpg")},
		{name: "absolute", baseDir: "reports", ref: abs, want: abs},
		{name: "no base", baseDir: "", ref: "a.jpg", want: "a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := newTestAnnotator(tt.baseDir).resolve(tt.ref); got != tt.want {
				t.Errorf("resolve(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}
