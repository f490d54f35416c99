package pipeline

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/nao1215/locatereport/internal/config"
	"github.com/nao1215/locatereport/internal/database"
	"github.com/nao1215/locatereport/internal/photo"
	"github.com/nao1215/locatereport/internal/report"
)

var (
	// ErrNotLoaded is returned by a step that needs a loaded report.
	ErrNotLoaded = errors.New("report not loaded")

	// ErrNotRendered is returned by a step that needs a rendered document.
	ErrNotRendered = errors.New("document not rendered")
)

// PreviewFormat is the Output.Format of a terminal preview.
const PreviewFormat = "preview"

// LoadStep reads the report record from Run.Source.
type LoadStep struct {
	maxSize int64
}

// NewLoadStep creates a LoadStep. A maxSize of 0 uses DefaultMaxReportSize.
func NewLoadStep(maxSize int64) *LoadStep {
	return &LoadStep{maxSize: maxSize}
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do loads the report.
func (s *LoadStep) Do(_ context.Context, run *Run) error {
	r, err := LoadReport(run.Source, s.maxSize)
	if err != nil {
		return err
	}
	run.Report = r
	return nil
}

// AnnotateStep fills photo capture times from EXIF data. Photo paths are
// resolved against the report file's directory.
type AnnotateStep struct {
	logger *slog.Logger
}

// NewAnnotateStep creates an AnnotateStep.
func NewAnnotateStep(logger *slog.Logger) *AnnotateStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnnotateStep{logger: logger}
}

// Name returns the step name.
func (s *AnnotateStep) Name() string {
	return "annotate"
}

// Do annotates the loaded report's photos.
func (s *AnnotateStep) Do(ctx context.Context, run *Run) error {
	if run.Report == nil {
		return ErrNotLoaded
	}
	annotator := photo.NewAnnotator(filepath.Dir(run.Source), photo.WithLogger(s.logger))
	n, err := annotator.Annotate(ctx, run.Report)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Debug("photos annotated", "source", run.Source, "count", n)
	}
	return nil
}

// RenderStep renders the loaded report into a document.
type RenderStep struct {
	renderer *report.Renderer
}

// NewRenderStep creates a RenderStep.
func NewRenderStep(renderer *report.Renderer) *RenderStep {
	return &RenderStep{renderer: renderer}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do renders the report. A missing required field fails the run.
func (s *RenderStep) Do(_ context.Context, run *Run) error {
	if run.Report == nil {
		return ErrNotLoaded
	}
	doc, err := s.renderer.Render(run.Report)
	if err != nil {
		return err
	}
	run.Document = doc
	return nil
}

// WriteStep writes the rendered document.
//
// With an output directory, the document is written once per format: the
// client's format (or the default) followed by the client's CC formats.
// Without one, the document is written to stdout in the main format only.
type WriteStep struct {
	format       string
	outputDir    string
	showWarnings bool
	preview      bool
	previewWidth int
	stdout       io.Writer
	profiles     func(clientCompany string) config.ClientProfile
	logger       *slog.Logger
}

// WriteStepOption configures a WriteStep.
type WriteStepOption func(*WriteStep)

// WithOutputDir sets the directory documents are written to.
func WithOutputDir(dir string) WriteStepOption {
	return func(s *WriteStep) {
		s.outputDir = dir
	}
}

// WithShowWarnings lists section warnings in the written documents.
func WithShowWarnings(show bool) WriteStepOption {
	return func(s *WriteStep) {
		s.showWarnings = show
	}
}

// WithPreview renders stdout output for the terminal at the given width.
func WithPreview(width int) WriteStepOption {
	return func(s *WriteStep) {
		s.preview = true
		s.previewWidth = width
	}
}

// WithStdout sets the writer used when there is no output directory.
// Batches share one writer, so it should be wrapped with NewLockedWriter.
func WithStdout(w io.Writer) WriteStepOption {
	return func(s *WriteStep) {
		s.stdout = w
	}
}

// WithClientProfiles sets the lookup for per-client output settings.
func WithClientProfiles(profiles func(clientCompany string) config.ClientProfile) WriteStepOption {
	return func(s *WriteStep) {
		s.profiles = profiles
	}
}

// WithWriteLogger sets the logger.
func WithWriteLogger(logger *slog.Logger) WriteStepOption {
	return func(s *WriteStep) {
		s.logger = logger
	}
}

// NewWriteStep creates a WriteStep for the default output format.
func NewWriteStep(format string, opts ...WriteStepOption) *WriteStep {
	s := &WriteStep{
		format:       format,
		previewWidth: report.DefaultPreviewWidth,
		stdout:       os.Stdout,
		profiles:     func(string) config.ClientProfile { return config.ClientProfile{} },
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write"
}

// Do writes the document.
func (s *WriteStep) Do(_ context.Context, run *Run) error {
	if run.Document == nil || run.Report == nil {
		return ErrNotRendered
	}

	profile := s.profiles(run.Report.ClientCompany)
	mainFormat := cmp.Or(profile.OutputFormat, s.format)
	dir := cmp.Or(profile.OutputDir, s.outputDir)
	warnings := s.showWarnings || profile.ShowWarnings

	if dir == "" {
		if len(profile.CC) > 0 {
			s.logger.Debug("CC formats are only written to an output directory",
				"client", run.Report.ClientCompany,
				"cc", profile.CC,
			)
		}
		return s.writeStdout(run, mainFormat, warnings)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, format := range outputFormats(mainFormat, profile.CC) {
		if err := s.writeFile(run, dir, format, warnings); err != nil {
			return err
		}
	}
	return nil
}

func (s *WriteStep) writeStdout(run *Run, format string, warnings bool) error {
	var (
		buf bytes.Buffer
		w   report.Writer
		err error
	)
	if s.preview {
		format = PreviewFormat
		w = report.NewPreviewWriter(&buf, report.WithPreviewWidth(s.previewWidth))
	} else {
		w, err = report.NewFormatWriter(format, &buf, warnings)
		if err != nil {
			return err
		}
	}
	if _, err := w.Write(run.Document); err != nil {
		return fmt.Errorf("failed to format document: %w", err)
	}

	// One Write call per document keeps batch output from interleaving.
	n, err := s.stdout.Write(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	run.Outputs = append(run.Outputs, Output{Format: format, Bytes: n})
	return nil
}

func (s *WriteStep) writeFile(run *Run, dir, format string, warnings bool) error {
	path := filepath.Join(dir, OutputFileName(run.Document.JobNumber, run.Document.RevisionNumber, format))

	var buf bytes.Buffer
	w, err := report.NewFormatWriter(format, &buf, warnings)
	if err != nil {
		return err
	}
	if _, err := w.Write(run.Document); err != nil {
		return fmt.Errorf("failed to format document: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	s.logger.Info("document written",
		"job_number", run.Document.JobNumber,
		"format", format,
		"path", path,
	)
	run.Outputs = append(run.Outputs, Output{Format: format, Path: path, Bytes: buf.Len()})
	return nil
}

// outputFormats returns the main format followed by the CC formats,
// without duplicates.
func outputFormats(main string, cc []string) []string {
	formats := []string{main}
	for _, f := range cc {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	return formats
}

// OutputFileName returns the file name of a document: "<job>-r<rev><ext>".
// Characters that are unsafe in file names are replaced with '_'.
func OutputFileName(jobNumber string, revision int, format string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, jobNumber)
	return safe + "-r" + strconv.Itoa(revision) + report.FileExtension(format)
}

// IssueRecorder stores issued documents. *database.IssueDB implements it.
type IssueRecorder interface {
	RecordIssue(ctx context.Context, issue *database.Issue) error
	LatestIssue(ctx context.Context, jobNumber string) (*database.Issue, error)
}

// RecordStep records every written document in the issue register.
type RecordStep struct {
	db     IssueRecorder
	logger *slog.Logger
}

// NewRecordStep creates a RecordStep.
func NewRecordStep(db IssueRecorder, logger *slog.Logger) *RecordStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordStep{db: db, logger: logger}
}

// Name returns the step name.
func (s *RecordStep) Name() string {
	return "record"
}

// Do records the outputs. A document identical to the job's previous
// issue is still recorded, and noted in the log.
func (s *RecordStep) Do(ctx context.Context, run *Run) error {
	if run.Document == nil || run.Report == nil {
		return ErrNotRendered
	}

	doc := run.Document
	latest, err := s.db.LatestIssue(ctx, doc.JobNumber)
	if err != nil {
		return err
	}

	fingerprint := doc.Fingerprint()
	for i := range run.Outputs {
		issue := &database.Issue{
			JobNumber:     doc.JobNumber,
			Revision:      doc.RevisionNumber,
			ClientCompany: run.Report.ClientCompany,
			IssuedOn:      doc.IssuedOn,
			Fingerprint:   fingerprint,
			Format:        run.Outputs[i].Format,
			OutputPath:    run.Outputs[i].Path,
			Warnings:      len(doc.Warnings),
		}
		if err := s.db.RecordIssue(ctx, issue); err != nil {
			return err
		}
		run.Outputs[i].IssueID = issue.ID
	}

	if latest != nil && latest.Fingerprint == fingerprint {
		s.logger.Info("document unchanged since last issue",
			"job_number", doc.JobNumber,
			"last_revision", latest.Revision,
			"last_issued", latest.CreatedAt,
		)
	}
	return nil
}

// DefaultPipeline builds the standard pipeline for cfg.
// The record step is added only when db is not nil.
func DefaultPipeline(cfg *config.Config, renderer *report.Renderer, db IssueRecorder, stdout io.Writer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	writeOpts := []WriteStepOption{
		WithOutputDir(cfg.OutputDir),
		WithShowWarnings(cfg.ShowWarnings),
		WithClientProfiles(cfg.ClientProfile),
		WithWriteLogger(logger),
	}
	if stdout != nil {
		writeOpts = append(writeOpts, WithStdout(stdout))
	}
	if cfg.Preview {
		writeOpts = append(writeOpts, WithPreview(cmp.Or(cfg.PreviewWidth, config.DefaultPreviewWidth)))
	}

	p := New(WithLogger(logger))
	p.AddSteps(
		NewLoadStep(DefaultMaxReportSize),
		NewAnnotateStep(logger),
		NewRenderStep(renderer),
		NewWriteStep(cfg.OutputFormat, writeOpts...),
	)
	if db != nil {
		p.AddStep(NewRecordStep(db, logger))
	}
	return p
}

// lockedWriter serializes writes from concurrent runs.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLockedWriter wraps w so that concurrent Write calls do not interleave.
func NewLockedWriter(w io.Writer) io.Writer {
	return &lockedWriter{w: w}
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
