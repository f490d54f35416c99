package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/locatereport/internal/export"
	"github.com/nao1215/locatereport/internal/model"
	"github.com/nao1215/locatereport/internal/pipeline"
)

// defaultHoursFile is the default workbook name of the hours command.
const defaultHoursFile = "hours.xlsx"

// NewHoursCmd creates the hours command.
func NewHoursCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hours [report-file|directory]...",
		Short: "Export technician hours to an Excel workbook",
		Long: `Hours collects technician hours from report records into one workbook.

Each row is one technician on one work day of a job, with a column per hour
type (EM, GPR, Travel, Survey, Conc. GPR, Standby) and a total. Every job
ends with a Totals row.

Examples:
  # Export the hours of every report in a folder
  locatereport hours jobs/

  # Write to a specific file
  locatereport hours -o march.xlsx jobs/march/`,
		Args: cobra.MinimumNArgs(1),
		RunE: runHoursCmd,
	}

	cmd.Flags().StringP("output", "o", defaultHoursFile, "Workbook file path")

	return cmd
}

// runHoursCmd executes the hours command.
func runHoursCmd(cmd *cobra.Command, args []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	inputs, err := collectInputs(args)
	if err != nil {
		return err
	}

	reports := make([]*model.Report, 0, len(inputs))
	for _, input := range inputs {
		r, err := pipeline.LoadReport(input, pipeline.DefaultMaxReportSize)
		if err != nil {
			return err
		}
		if err := r.CheckRequired(); err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		reports = append(reports, r)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(filepath.Clean(outputPath))
	if err != nil {
		return fmt.Errorf("failed to create workbook: %w", err)
	}
	if err := export.WriteHoursWorkbook(f, reports...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported hours from %d report(s) to %s\n", len(reports), outputPath)
	return nil
}
