package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/locatereport/internal/database"
)

// fingerprintDisplayLength is how much of a fingerprint the history shows.
const fingerprintDisplayLength = 12

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [job-number]",
		Short: "Show issued documents from the issue register",
		Long: `History lists documents recorded with 'locatereport render --record'.

Without a job number, every job in the register is listed with its number
of issues and latest revision. With a job number, each issue of that job is
listed in order. Issues whose content differs from the previous issue are
marked with '*', so a re-issue with no changes is easy to spot.

Examples:
  # List all jobs in the register
  locatereport history

  # List the issues of one job
  locatereport history Q-1042

  # Output the issues as JSON
  locatereport history --json Q-1042`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("json", "j", false, "Output history in JSON format")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open issue register: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		return listJobs(ctx, db, out, jsonOutput)
	}
	return listIssues(ctx, db, out, args[0], jsonOutput)
}

// listJobs lists every job in the register.
func listJobs(ctx context.Context, db *database.IssueDB, out io.Writer, jsonOutput bool) error {
	jobs, err := db.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	if jsonOutput {
		return writeJSON(out, jobs)
	}

	if len(jobs) == 0 {
		fmt.Fprintln(out, "No issued documents found in the register.")
		fmt.Fprintln(out, "\nUse 'locatereport render --record' to record issued documents.")
		return nil
	}

	fmt.Fprintf(out, "Jobs in the register (%d):\n\n", len(jobs))
	fmt.Fprintf(out, "  %-14s  %-24s  %6s  %4s  %s\n", "Job", "Client", "Issues", "Rev", "Last Issued")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 68))
	for _, job := range jobs {
		fmt.Fprintf(out, "  %-14s  %-24s  %6d  %4d  %s\n",
			job.JobNumber,
			job.ClientCompany,
			job.Issues,
			job.LatestRev,
			job.LastIssuedOn.Format("2006-01-02"),
		)
	}
	fmt.Fprintln(out, "\nUse 'locatereport history <job-number>' to see the issues of a job.")
	return nil
}

// issueEntry is one issue in the history output.
type issueEntry struct {
	database.Issue

	// Changed is true when the content differs from the previous issue.
	Changed bool `json:"changed"`
}

// historyEntries marks the issues whose content changed. The first issue
// of a job always counts as changed.
func historyEntries(issues []database.Issue) []issueEntry {
	entries := make([]issueEntry, len(issues))
	for i, issue := range issues {
		entries[i] = issueEntry{Issue: issue, Changed: i == 0 || issue.ContentChanged(issues[i-1])}
	}
	return entries
}

// listIssues lists the issues of one job.
func listIssues(ctx context.Context, db *database.IssueDB, out io.Writer, jobNumber string, jsonOutput bool) error {
	issues, err := db.ListIssues(ctx, jobNumber)
	if err != nil {
		return fmt.Errorf("failed to get issue history: %w", err)
	}
	entries := historyEntries(issues)

	if jsonOutput {
		return writeJSON(out, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintf(out, "No issues found for job %s\n", jobNumber)
		return nil
	}

	fmt.Fprintf(out, "Issue history for job %s (%d issues):\n\n", jobNumber, len(entries))
	fmt.Fprintf(out, "  %-19s  %4s  %-8s  %8s  %-12s  %s\n", "Recorded", "Rev", "Format", "Warnings", "Fingerprint", "Output")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 76))
	for _, e := range entries {
		marker := " "
		if e.Changed {
			marker = "*"
		}
		output := e.OutputPath
		if output == "" {
			output = "(stdout)"
		}
		fmt.Fprintf(out, "%s %-19s  %4d  %-8s  %8d  %-12s  %s\n",
			marker,
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Revision,
			e.Format,
			e.Warnings,
			shortFingerprint(e.Fingerprint),
			output,
		)
	}
	fmt.Fprintln(out, "\n* content changed since the previous issue")
	return nil
}

func shortFingerprint(fp string) string {
	if len(fp) > fingerprintDisplayLength {
		return fp[:fingerprintDisplayLength]
	}
	return fp
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
