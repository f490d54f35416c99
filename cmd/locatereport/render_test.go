package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/locatereport/internal/config"
)

func TestRenderCmd_Stdout(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	input := env.write(t, "q-1042.yaml", sampleReport)

	stdout, _, err := env.run(t, "render", "--company", "Island Locates", input)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	for _, want := range []string{"SITE LOCATE REPORT", "Island Locates", "Q-1042", "DISCLAIMER AND SAFETY"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q", want)
		}
	}
}

func TestRenderCmd_OutputDirAndHistory(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	input := env.write(t, "jobs/q-1042.yaml", sampleReport)
	outDir := filepath.Join(env.dir, "issued")

	for range 2 {
		_, stderr, err := env.run(t, "render", "-f", "html", "-o", outDir, "--record", filepath.Dir(input))
		if err != nil {
			t.Fatalf("render error = %v (stderr: %s)", err, stderr)
		}
	}

	data, err := os.ReadFile(filepath.Join(outDir, "Q-1042-r1.html"))
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Error("expected an HTML document")
	}

	stdout, _, err := env.run(t, "history", "Q-1042")
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	if !strings.Contains(stdout, "Issue history for job Q-1042 (2 issues)") {
		t.Errorf("unexpected history output:\n%s", stdout)
	}

	stdout, _, err = env.run(t, "history")
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	if !strings.Contains(stdout, "Q-1042") || !strings.Contains(stdout, "Acme Builders") {
		t.Errorf("job list should contain the job:\n%s", stdout)
	}
}

func TestRenderCmd_FailedReport(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	good := env.write(t, "good.yaml", sampleReport)
	bad := env.write(t, "bad.yaml", incompleteReport)

	stdout, stderr, err := env.run(t, "render", good, bad)
	if !errors.Is(err, errReportsFailed) {
		t.Fatalf("render error = %v, want errReportsFailed", err)
	}
	if !strings.Contains(stdout, "Q-1042") {
		t.Error("the good report should still be rendered")
	}
	if !strings.Contains(stderr, "FAILED "+bad) || !strings.Contains(stderr, "technician_name") {
		t.Errorf("stderr should name the failed file and missing field:\n%s", stderr)
	}
	if !strings.Contains(stderr, "1 rendered, 1 failed") {
		t.Errorf("stderr should contain the summary:\n%s", stderr)
	}
}

func TestRenderCmd_InvalidConfig(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	input := env.write(t, "q.yaml", sampleReport)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "unknown format", args: []string{"render", "-f", "pdf", input}, want: config.ErrInvalidOutputFormat},
		{name: "zero batch", args: []string{"render", "-b", "0", input}, want: config.ErrInvalidBatchSize},
		{name: "preview with output", args: []string{"render", "-p", "-o", env.dir, input}, want: config.ErrPreviewWithOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := env.run(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("render error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCollectInputs(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	a := env.write(t, "jobs/a.yaml", sampleReport)
	b := env.write(t, "jobs/b.json", "{}")
	env.write(t, "jobs/notes.txt", "ignored")
	env.write(t, "jobs/sub/c.yaml", sampleReport)
	explicit := env.write(t, "other/report.txt", sampleReport)

	got, err := collectInputs([]string{filepath.Join(env.dir, "jobs"), explicit})
	if err != nil {
		t.Fatalf("collectInputs() error = %v", err)
	}
	want := []string{a, b, explicit}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("collectInputs() mismatch (-want +got):\n%s", diff)
	}

	if _, err := collectInputs([]string{filepath.Join(env.dir, "missing")}); err == nil {
		t.Error("expected error for a missing input")
	}
}
