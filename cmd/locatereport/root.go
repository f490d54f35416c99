package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/locatereport/internal/config"
	applog "github.com/nao1215/locatereport/internal/log"
)

// NewRootCmd creates the root command for locatereport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locatereport",
		Short: "Render Site Locate Reports from report records",
		Long: `locatereport renders Site Locate Reports for utility locating jobs.

A report record (YAML or JSON) holds the job, site visit, findings, photos
and drawings. locatereport turns it into a document with a fixed section
order: header, weather, billing details, work summary, client fields,
missing documentation, photos, drawings, drawing legend and disclaimer.

Settings and per-client output profiles are read from .locatereport in the
current directory, the home directory, or the XDG config directory.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .locatereport in current or home directory)")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewHoursCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogger creates the logger for a command. Logs go to stderr so that
// documents written to stdout stay clean.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logJSON, _ := cmd.Flags().GetBool("log-json")

	if logJSON {
		return applog.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return applog.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}

// loadConfig creates a Config with the config file applied.
// A missing config file is an error only when --config was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	case explicitConfigPath:
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	return cfg, nil
}
