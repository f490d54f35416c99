package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files rendered at once when
// WithConcurrency is not given.
const DefaultConcurrency = 4

// BatchProcessor renders multiple report files concurrently.
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each file so that step
	// state is never shared between runs.
	pipelineFactory func() *Pipeline

	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent runs.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch runs the pipeline for every source file.
//
// Runs are returned in the order of sources. A failing file is recorded in
// its Run and does not stop the others. The error is non-nil only when the
// context is cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, sources []string) ([]*Run, error) {
	runs := make([]*Run, len(sources))
	err := bp.ProcessBatchWithCallback(ctx, sources, func(run *Run, index int) {
		// Each goroutine writes its own index.
		runs[index] = run
	})

	// Files never started because of cancellation still get a Run.
	for i, run := range runs {
		if run == nil {
			runs[i] = NewRun(sources[i])
			runs[i].Err = ctx.Err()
		}
	}
	return runs, err
}

// ProcessBatchWithCallback runs the pipeline for every source file and
// calls callback with each finished Run and its index in sources. The
// callback is called from worker goroutines.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	sources []string,
	callback func(run *Run, index int),
) error {
	bp.logger.Info("starting batch",
		"files", len(sources),
		"concurrency", bp.concurrency,
	)
	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, source := range sources {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			run := NewRun(source)
			if err := bp.pipelineFactory().Execute(ctx, run); err != nil {
				bp.logger.Warn("report failed",
					"source", source,
					"index", i+1,
					"total", len(sources),
					"error", err,
				)
			}
			callback(run, i)

			// The error is kept in the Run so the other files continue.
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch complete",
		"files", len(sources),
		"elapsed", time.Since(startTime),
	)
	return err
}

// Summary counts the successful and failed runs.
func Summary(runs []*Run) (succeeded, failed int) {
	for _, run := range runs {
		if run.Failed() {
			failed++
		} else {
			succeeded++
		}
	}
	return succeeded, failed
}
