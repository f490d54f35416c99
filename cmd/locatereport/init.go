package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/locatereport/internal/config"
)

//go:embed templates/locatereport.yaml templates/report.yaml
var templates embed.FS

const (
	configTemplate = "templates/locatereport.yaml"
	reportTemplate = "templates/report.yaml"

	// defaultReportFile is the default output of init --report.
	defaultReportFile = "report.yaml"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file or a blank report record",
		Long: `Init creates a new .locatereport configuration file in the current directory.

The generated file includes:
- Company name and form version printed on every report
- Default output format, output directory and batch size
- Commented examples of per-client output profiles

With --report, init writes a report record template instead, with every
field documented.

Examples:
  # Create .locatereport in current directory
  locatereport init

  # Create a report record to fill in
  locatereport init --report -o jobs/q-1042.yaml

  # Force overwrite existing file
  locatereport init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", "",
		"Output file path (default: "+config.DefaultConfigFile+", or "+defaultReportFile+" with --report)")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing file")
	cmd.Flags().Bool("report", false,
		"Write a report record template instead of a configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	writeReport, err := cmd.Flags().GetBool("report")
	if err != nil {
		return err
	}

	name := configTemplate
	if writeReport {
		name = reportTemplate
	}
	if outputPath == "" {
		outputPath = config.DefaultConfigFile
		if writeReport {
			outputPath = defaultReportFile
		}
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := templates.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	out := cmd.OutOrStdout()
	if writeReport {
		fmt.Fprintf(out, "Created report record: %s\n", outputPath)
		fmt.Fprintf(out, "\nFill in the job details, then run: locatereport render %s\n", outputPath)
		return nil
	}

	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to configure settings such as:")
	fmt.Fprintln(out, "  - Company name and form version")
	fmt.Fprintln(out, "  - Default output format and directory")
	fmt.Fprintln(out, "  - Per-client formats and CC copies")
	return nil
}
