package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "locatereport"

	// DefaultCompanyName is printed above the report title.
	DefaultCompanyName = "Quadra Utility Locating Ltd."

	// DefaultFormVersion is printed in the header stamp of every report.
	DefaultFormVersion = "QUL-SLR v1.0"

	// DefaultOutputFormat is the format used when none is configured.
	DefaultOutputFormat = "text"

	// DefaultBatchSize is the number of reports rendered concurrently.
	DefaultBatchSize = 4

	// DefaultPreviewWidth is the terminal preview word-wrap width.
	DefaultPreviewWidth = 80
)

// OutputFormats lists the accepted output formats.
var OutputFormats = []string{"text", "markdown", "html", "json"}

// Config holds all configuration options for locatereport.
// This struct is populated from the config file and CLI flags and passed
// through the application rather than kept in global state.
// Per-client overrides live in the config File, not here.
type Config struct {
	// CompanyName is printed above the report title.
	CompanyName string

	// FormVersion is printed in the header stamp.
	FormVersion string

	// OutputFormat is one of OutputFormats.
	OutputFormat string

	// OutputDir is where rendered documents are written.
	// When empty, a single document is written to stdout.
	OutputDir string

	// DBDir is the directory of the issue register database.
	// Defaults to the XDG data directory (~/.local/share/locatereport on Linux).
	DBDir string

	// RecordHistory stores every rendered document in the issue register.
	RecordHistory bool

	// BatchSize is the number of reports rendered concurrently.
	BatchSize int

	// Preview renders the document for the terminal with glamour.
	Preview bool

	// PreviewWidth is the word-wrap width of the terminal preview.
	// A value of 0 means use DefaultPreviewWidth.
	PreviewWidth int

	// ShowWarnings lists section warnings at the end of text, markdown and
	// HTML output. JSON output always contains them.
	ShowWarnings bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the current directory, the home directory
	// and the XDG config directory for .locatereport.
	ConfigFilePath string

	// Clients holds per-client profiles loaded from the config file.
	Clients *File

	// Inputs are the report files to render.
	Inputs []string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		CompanyName:  DefaultCompanyName,
		FormVersion:  DefaultFormVersion,
		OutputFormat: DefaultOutputFormat,
		DBDir:        XDGDataDir(),
		BatchSize:    DefaultBatchSize,
		PreviewWidth: DefaultPreviewWidth,
	}
}

// ApplyFile copies the settings present in the config file onto c.
// Zero values in the file leave the current setting unchanged, so CLI
// flags applied afterwards still win.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	s := f.Settings
	if s.CompanyName != "" {
		c.CompanyName = s.CompanyName
	}
	if s.FormVersion != "" {
		c.FormVersion = s.FormVersion
	}
	if s.OutputFormat != "" {
		c.OutputFormat = s.OutputFormat
	}
	if s.OutputDir != "" {
		c.OutputDir = s.OutputDir
	}
	if s.DBDir != "" {
		c.DBDir = s.DBDir
	}
	if s.BatchSize != 0 {
		c.BatchSize = s.BatchSize
	}
	if s.PreviewWidth != 0 {
		c.PreviewWidth = s.PreviewWidth
	}
	if s.RecordHistory {
		c.RecordHistory = true
	}
	if s.ShowWarnings {
		c.ShowWarnings = true
	}
	c.Clients = f
}

// ClientProfile returns the merged profile for a client company.
// It returns the zero profile when no config file was loaded.
func (c *Config) ClientProfile(clientCompany string) ClientProfile {
	if c.Clients == nil {
		return ClientProfile{}
	}
	return c.Clients.GetClientProfile(clientCompany)
}

// XDGDataDir returns the XDG data directory for locatereport.
// On Linux: ~/.local/share/locatereport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for locatereport.
// On Linux: ~/.config/locatereport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if !IsValidFormat(c.OutputFormat) {
		return ErrInvalidOutputFormat
	}

	if c.PreviewWidth < 0 {
		return ErrInvalidPreviewWidth
	}

	if strings.TrimSpace(c.CompanyName) == "" {
		return ErrEmptyCompanyName
	}

	if c.Preview && c.OutputDir != "" {
		return ErrPreviewWithOutput
	}

	return nil
}

// IsValidFormat reports whether format is one of OutputFormats.
func IsValidFormat(format string) bool {
	return slices.Contains(OutputFormats, format)
}
