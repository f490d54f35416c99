package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/locatereport/internal/config"
	"github.com/nao1215/locatereport/internal/pipeline"
)

func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewInitCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("writes a loadable config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", config.DefaultConfigFile)
		out, err := runInit(t, "-o", path)
		if err != nil {
			t.Fatalf("init error = %v", err)
		}
		if !strings.Contains(out, "Created configuration file") {
			t.Errorf("unexpected output: %s", out)
		}

		file, err := config.LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}
		if file.Settings.CompanyName != config.DefaultCompanyName {
			t.Errorf("company_name = %q, want %q", file.Settings.CompanyName, config.DefaultCompanyName)
		}
		if file.Settings.BatchSize != config.DefaultBatchSize {
			t.Errorf("batch_size = %d, want %d", file.Settings.BatchSize, config.DefaultBatchSize)
		}
	})

	t.Run("writes a decodable report template", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "q-1.yaml")
		if _, err := runInit(t, "--report", "-o", path); err != nil {
			t.Fatalf("init error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		r, err := pipeline.DecodeReport(data, ".yaml")
		if err != nil {
			t.Fatalf("DecodeReport() error = %v", err)
		}
		if len(r.PhotoPages) != 1 || len(r.Drawings) != 1 {
			t.Errorf("template should have one photo page and one drawing, got %d and %d",
				len(r.PhotoPages), len(r.Drawings))
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "existing.yaml")
		if err := os.WriteFile(path, []byte("keep me"), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := runInit(t, "-o", path); err == nil {
			t.Fatal("expected error for existing file")
		}
		data, _ := os.ReadFile(path)
		if string(data) != "keep me" {
			t.Error("existing file was modified")
		}

		if _, err := runInit(t, "-o", path, "-f"); err != nil {
			t.Fatalf("init -f error = %v", err)
		}
		data, _ = os.ReadFile(path)
		if string(data) == "keep me" {
			t.Error("file should be overwritten with -f")
		}
	})
}
