package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/locatereport/internal/config"
	"github.com/nao1215/locatereport/internal/database"
	"github.com/nao1215/locatereport/internal/pipeline"
	"github.com/nao1215/locatereport/internal/report"
)

// reportExtensions are the file extensions picked up from input directories.
var reportExtensions = []string{".yaml", ".yml", ".json"}

// errReportsFailed is returned when at least one report could not be issued.
var errReportsFailed = errors.New("some reports failed")

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [report-file|directory]...",
		Short: "Render report records into Site Locate Report documents",
		Long: `Render turns report records (YAML or JSON) into documents.

Directories are searched (not recursively) for .yaml, .yml and .json files.
Without --output the document is written to stdout. With --output each
document is written as <job-number>-r<revision>.<ext>, once for the output
format and once for every CC format of the client's profile.

A report missing an identifying field (client company, job number,
technician, site visit date, site address or job) is not rendered. Any
other problem leaves the affected section out and is logged as a warning;
use --warnings to also list them in the document.

Examples:
  # Render one report to the terminal
  locatereport render q-1042.yaml

  # Preview with terminal styling
  locatereport render --preview q-1042.yaml

  # Render a folder of reports to HTML and record them in the register
  locatereport render --format html --output issued --record jobs/

  # Render with 8 reports in flight at once
  locatereport render -b 8 -o issued jobs/`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRenderCmd,
	}

	cmd.Flags().StringP("format", "f", config.DefaultOutputFormat,
		"Output format: "+strings.Join(config.OutputFormats, ", "))
	cmd.Flags().StringP("output", "o", "",
		"Output directory (default: write to stdout)")
	cmd.Flags().BoolP("preview", "p", false,
		"Render for the terminal with styling (cannot be used with --output)")
	cmd.Flags().Int("preview-width", config.DefaultPreviewWidth,
		"Word-wrap width of the terminal preview")
	cmd.Flags().BoolP("record", "r", false,
		"Record issued documents in the issue register")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of reports rendered concurrently")
	cmd.Flags().BoolP("warnings", "w", false,
		"List section warnings at the end of the document")
	cmd.Flags().String("company", "", "Company name printed above the title")
	cmd.Flags().String("form-version", "", "Form version printed in the header")

	return cmd
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildRenderConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runRender(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
}

// buildRenderConfig creates a Config from the config file and flags.
// Flags given on the command line override the config file.
func buildRenderConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") || cfg.OutputFormat == "" {
		if cfg.OutputFormat, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("output") {
		if cfg.OutputDir, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("preview-width") {
		if cfg.PreviewWidth, err = flags.GetInt("preview-width"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("company") {
		if cfg.CompanyName, err = flags.GetString("company"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("form-version") {
		if cfg.FormVersion, err = flags.GetString("form-version"); err != nil {
			return nil, err
		}
	}

	// Boolean flags can only switch a setting on.
	for name, target := range map[string]*bool{
		"preview":  &cfg.Preview,
		"record":   &cfg.RecordHistory,
		"warnings": &cfg.ShowWarnings,
	} {
		on, err := flags.GetBool(name)
		if err != nil {
			return nil, err
		}
		if on {
			*target = true
		}
	}

	cfg.Inputs, err = collectInputs(args)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// collectInputs expands directories into the report files they contain.
// Files named explicitly are kept whatever their extension.
func collectInputs(args []string) ([]string, error) {
	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read input: %w", err)
		}
		if !info.IsDir() {
			inputs = append(inputs, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if entry.IsDir() || !slices.Contains(reportExtensions, ext) {
				continue
			}
			inputs = append(inputs, filepath.Join(arg, entry.Name()))
		}
	}
	return inputs, nil
}

// newRenderer creates the report renderer for cfg.
func newRenderer(cfg *config.Config, logger *slog.Logger) *report.Renderer {
	return report.NewRenderer(
		report.WithCompanyName(cfg.CompanyName),
		report.WithFormVersion(cfg.FormVersion),
		report.WithLogger(logger),
	)
}

// runRender renders every input and prints a summary to stderr.
func runRender(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer, logger *slog.Logger) error {
	var recorder pipeline.IssueRecorder
	if cfg.RecordHistory {
		db, err := database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open issue register: %w", err)
		}
		defer db.Close()
		recorder = db
		logger.Debug("issue register opened", "path", db.Path())
	}

	renderer := newRenderer(cfg, logger)
	out := pipeline.NewLockedWriter(stdout)

	concurrency := cfg.BatchSize
	if cfg.OutputDir == "" {
		// Documents on stdout follow input order.
		concurrency = 1
	}

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipeline.DefaultPipeline(cfg, renderer, recorder, out, logger)
		},
		pipeline.WithConcurrency(concurrency),
		pipeline.WithBatchLogger(logger),
	)

	runs, err := bp.ProcessBatch(ctx, cfg.Inputs)
	if err != nil {
		return err
	}

	succeeded, failed := pipeline.Summary(runs)
	for _, run := range runs {
		if run.Failed() {
			fmt.Fprintf(stderr, "FAILED %s: %v\n", run.Source, run.Err)
			continue
		}
		for _, output := range run.Outputs {
			if output.Path != "" {
				fmt.Fprintf(stderr, "wrote %s\n", output.Path)
			}
		}
		if n := len(run.Document.Warnings); n > 0 {
			fmt.Fprintf(stderr, "%s: rendered with %d warning(s)\n", run.Source, n)
		}
	}

	if len(runs) > 1 || failed > 0 {
		fmt.Fprintf(stderr, "%d rendered, %d failed\n", succeeded, failed)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errReportsFailed, failed, len(runs))
	}
	return nil
}
