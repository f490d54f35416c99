package photo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/locatereport/internal/model"
)

// DefaultMaxImageSize limits how much of each photo is read (25MB).
const DefaultMaxImageSize = 25 * 1024 * 1024

// Annotator fills in photo capture times from EXIF data.
type Annotator struct {
	// baseDir resolves relative photo paths (usually the report file's directory).
	baseDir string

	maxImageSize int64
	logger       *slog.Logger
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithMaxImageSize limits how many bytes of each photo are read.
func WithMaxImageSize(n int64) Option {
	return func(a *Annotator) {
		if n > 0 {
			a.maxImageSize = n
		}
	}
}

// WithLogger sets the logger used for unreadable photos.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Annotator) {
		a.logger = logger
	}
}

// NewAnnotator creates an Annotator resolving relative paths against baseDir.
func NewAnnotator(baseDir string, opts ...Option) *Annotator {
	a := &Annotator{
		baseDir:      baseDir,
		maxImageSize: DefaultMaxImageSize,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Annotate sets TakenAt on every photo that has none and whose file carries
// an EXIF capture time. It returns the number of photos annotated.
// Only context cancellation is returned as an error.
func (a *Annotator) Annotate(ctx context.Context, r *model.Report) (int, error) {
	if r == nil {
		return 0, nil
	}

	annotated := 0
	for i := range r.PhotoPages {
		photos := r.PhotoPages[i].Photos
		for j := range photos {
			if err := ctx.Err(); err != nil {
				return annotated, err
			}
			if photos[j].TakenAt != "" || !a.isLocal(photos[j].File) {
				continue
			}

			meta, err := a.readFile(photos[j].File)
			if err != nil {
				a.logger.Debug("photo metadata unavailable", "file", photos[j].File, "error", err)
				continue
			}
			if meta.TakenAt.IsZero() {
				continue
			}

			photos[j].TakenAt = meta.TakenAt.Format(TakenAtLayout)
			annotated++
			a.logger.Debug("photo annotated", "file", photos[j].File, "taken_at", photos[j].TakenAt, "camera", meta.Camera)
		}
	}
	return annotated, nil
}

// isLocal reports whether ref is a file path rather than a URL.
func (a *Annotator) isLocal(ref string) bool {
	return ref != "" && !strings.Contains(ref, "://") && !strings.HasPrefix(ref, "data:")
}

func (a *Annotator) resolve(ref string) string {
	if filepath.IsAbs(ref) || a.baseDir == "" {
		return ref
	}
	return filepath.Join(a.baseDir, ref)
}

func (a *Annotator) readFile(ref string) (Metadata, error) {
	f, err := os.Open(a.resolve(ref))
	if err != nil {
		return Metadata{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, a.maxImageSize))
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read photo: %w", err)
	}

	return ReadMetadata(data)
}
