package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default company name", func(t *testing.T) {
		t.Parallel()
		if cfg.CompanyName != "Quadra Utility Locating Ltd." {
			t.Errorf("unexpected CompanyName %q", cfg.CompanyName)
		}
	})

	t.Run("default OutputFormat is text", func(t *testing.T) {
		t.Parallel()
		if cfg.OutputFormat != "text" {
			t.Errorf("expected OutputFormat to be 'text', got '%s'", cfg.OutputFormat)
		}
	})

	t.Run("default BatchSize is 4", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != 4 {
			t.Errorf("expected BatchSize to be 4, got %d", cfg.BatchSize)
		}
	})

	t.Run("default DBDir is the XDG data dir", func(t *testing.T) {
		t.Parallel()
		if cfg.DBDir != XDGDataDir() {
			t.Errorf("expected DBDir %q, got %q", XDGDataDir(), cfg.DBDir)
		}
	})

	t.Run("history recording is off by default", func(t *testing.T) {
		t.Parallel()
		if cfg.RecordHistory {
			t.Error("expected RecordHistory to be false")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.Inputs = []string{"job-1042.yaml"}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "valid config returns nil", mutate: func(*Config) {}},
		{name: "every format is valid", mutate: func(c *Config) { c.OutputFormat = "html" }},
		{name: "empty inputs", mutate: func(c *Config) { c.Inputs = nil }, wantErr: ErrNoInput},
		{name: "zero batch size", mutate: func(c *Config) { c.BatchSize = 0 }, wantErr: ErrInvalidBatchSize},
		{name: "negative batch size", mutate: func(c *Config) { c.BatchSize = -2 }, wantErr: ErrInvalidBatchSize},
		{name: "unknown format", mutate: func(c *Config) { c.OutputFormat = "pdf" }, wantErr: ErrInvalidOutputFormat},
		{name: "negative preview width", mutate: func(c *Config) { c.PreviewWidth = -1 }, wantErr: ErrInvalidPreviewWidth},
		{name: "blank company name", mutate: func(c *Config) { c.CompanyName = "  " }, wantErr: ErrEmptyCompanyName},
		{
			name: "preview with output dir",
			mutate: func(c *Config) {
				c.Preview = true
				c.OutputDir = "out"
			},
			wantErr: ErrPreviewWithOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestConfigApplyFile tests merging config file settings.
func TestConfigApplyFile(t *testing.T) {
	t.Parallel()

	t.Run("file values override defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFile(&File{Settings: Settings{
			CompanyName:   "Island Locates",
			OutputFormat:  "markdown",
			BatchSize:     8,
			RecordHistory: true,
		}})

		if cfg.CompanyName != "Island Locates" {
			t.Errorf("unexpected CompanyName %q", cfg.CompanyName)
		}
		if cfg.OutputFormat != "markdown" {
			t.Errorf("unexpected OutputFormat %q", cfg.OutputFormat)
		}
		if cfg.BatchSize != 8 {
			t.Errorf("unexpected BatchSize %d", cfg.BatchSize)
		}
		if !cfg.RecordHistory {
			t.Error("expected RecordHistory true")
		}
		if cfg.FormVersion != DefaultFormVersion {
			t.Errorf("expected unset FormVersion to keep the default, got %q", cfg.FormVersion)
		}
	})

	t.Run("nil file is ignored", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyFile(nil)
		if diff := cmp.Diff(NewConfig(), cfg); diff != "" {
			t.Errorf("config changed (-want +got):\n%s", diff)
		}
	})
}

// TestFileGetClientProfile tests merging client profiles with defaults.
func TestFileGetClientProfile(t *testing.T) {
	t.Parallel()

	file := &File{
		Defaults: ClientProfile{OutputFormat: "text", OutputDir: "reports", CC: []string{"json"}},
		Clients: map[string]ClientProfile{
			"Acme Builders": {OutputFormat: "html", ShowWarnings: true},
			"City of Colwood": {OutputDir: "colwood", CC: []string{"markdown", "json"}},
		},
	}

	tests := []struct {
		name   string
		client string
		want   ClientProfile
	}{
		{
			name:   "returns defaults when client not found",
			client: "Unknown Co",
			want:   ClientProfile{OutputFormat: "text", OutputDir: "reports", CC: []string{"json"}},
		},
		{
			name:   "client format overrides default",
			client: "Acme Builders",
			want:   ClientProfile{OutputFormat: "html", OutputDir: "reports", ShowWarnings: true, CC: []string{"json"}},
		},
		{
			name:   "client cc replaces default",
			client: "City of Colwood",
			want:   ClientProfile{OutputFormat: "text", OutputDir: "colwood", CC: []string{"markdown", "json"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, file.GetClientProfile(tt.client)); diff != "" {
				t.Errorf("profile mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("merged profile does not alias defaults", func(t *testing.T) {
		t.Parallel()

		p := file.GetClientProfile("Unknown Co")
		p.CC[0] = "html"
		if file.Defaults.CC[0] != "json" {
			t.Error("expected defaults to be unchanged")
		}
	})

	t.Run("config without file returns zero profile", func(t *testing.T) {
		t.Parallel()

		if diff := cmp.Diff(ClientProfile{}, NewConfig().ClientProfile("Acme Builders")); diff != "" {
			t.Errorf("expected zero profile (-want +got):\n%s", diff)
		}
	})
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.locatereport")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".locatereport")
		content := `settings:
  company_name: "Island Locates"
  output_format: html
  batch_size: 2
  record_history: true
defaults:
  output_dir: reports
clients:
  Acme Builders:
    output_format: markdown
    cc:
      - json
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := Settings{
			CompanyName:   "Island Locates",
			OutputFormat:  "html",
			BatchSize:     2,
			RecordHistory: true,
		}
		if diff := cmp.Diff(want, cfg.Settings); diff != "" {
			t.Errorf("settings mismatch (-want +got):\n%s", diff)
		}
		if cfg.Defaults.OutputDir != "reports" {
			t.Errorf("expected default output dir, got %q", cfg.Defaults.OutputDir)
		}
		acme, ok := cfg.Clients["Acme Builders"]
		if !ok {
			t.Fatal("expected Acme Builders in clients")
		}
		if acme.OutputFormat != "markdown" || len(acme.CC) != 1 {
			t.Errorf("unexpected client profile %+v", acme)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".locatereport")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("initializes nil Clients map", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".locatereport")
		if err := os.WriteFile(configPath, []byte("settings:\n  batch_size: 3\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Clients == nil {
			t.Error("expected Clients map to be initialized")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("defaults: {}"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGDirs tests XDG directory functions.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	if filepath.Base(XDGDataDir()) != AppName {
		t.Errorf("expected data dir to end in %s, got %q", AppName, XDGDataDir())
	}
	if filepath.Base(XDGConfigDir()) != AppName {
		t.Errorf("expected config dir to end in %s, got %q", AppName, XDGConfigDir())
	}
}
