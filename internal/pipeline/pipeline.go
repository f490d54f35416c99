package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/locatereport/internal/model"
	"github.com/nao1215/locatereport/internal/report"
)

// Run carries the state of one report file through the pipeline.
type Run struct {
	// Source is the report file path.
	Source string

	// Report is set by LoadStep.
	Report *model.Report

	// Document is set by RenderStep.
	Document *report.Document

	// Outputs lists every document written by WriteStep.
	Outputs []Output

	// Steps lists the steps that ran, in order.
	Steps []string

	// Err is the error of the step that failed, if any.
	Err error
}

// Output is one written document.
type Output struct {
	// Format is one of report.Formats().
	Format string

	// Path is the file written. Empty when the document went to stdout.
	Path string

	// Bytes is the number of bytes written.
	Bytes int

	// IssueID is the register ID, set by RecordStep.
	IssueID string
}

// NewRun creates a Run for the report file at source.
func NewRun(source string) *Run {
	return &Run{Source: source}
}

// Failed reports whether a step failed.
func (r *Run) Failed() bool {
	return r.Err != nil
}

// jobNumber returns the loaded job number for logging, or "".
func (r *Run) jobNumber() string {
	if r.Report == nil {
		return ""
	}
	return r.Report.JobNumber
}

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the Run
// populated by the previous steps.
type Step interface {
	// Do executes the step. Problems that should not stop the document from
	// being issued are logged and nil is returned.
	Do(ctx context.Context, run *Run) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger

	// continueOnError keeps running later steps after a failure.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution
// even when a step fails. Every later step in this package needs the
// output of the earlier ones, so this is only useful with custom steps.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence. Cancellation is checked before each
// step. The first failure is recorded in run.Err and returned unless
// continueOnError is set.
func (p *Pipeline) Execute(ctx context.Context, run *Run) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"source", run.Source,
				"reason", ctx.Err(),
			)
			run.Err = ctx.Err()
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"source", run.Source,
		)

		if err := step.Do(ctx, run); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"source", run.Source,
				"job_number", run.jobNumber(),
				"error", err,
			)
			if run.Err == nil {
				run.Err = err
			}
			if !p.continueOnError {
				return err
			}
		}

		run.Steps = append(run.Steps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
