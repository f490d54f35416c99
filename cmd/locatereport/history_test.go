package main

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/locatereport/internal/database"
)

func TestHistoryEntries(t *testing.T) {
	t.Parallel()

	issues := []database.Issue{
		{ID: "1", Fingerprint: "aaa"},
		{ID: "2", Fingerprint: "aaa"},
		{ID: "3", Fingerprint: "bbb"},
		{ID: "4", Fingerprint: "bbb"},
	}

	got := make([]bool, 0, len(issues))
	for _, e := range historyEntries(issues) {
		got = append(got, e.Changed)
	}
	want := []bool{true, false, true, false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Changed mismatch (-want +got):\n%s", diff)
	}
}

func TestShortFingerprint(t *testing.T) {
	t.Parallel()

	if got := shortFingerprint("0123456789abcdef"); got != "0123456789ab" {
		t.Errorf("shortFingerprint() = %q", got)
	}
	if got := shortFingerprint("abc"); got != "abc" {
		t.Errorf("shortFingerprint() = %q", got)
	}
}

func TestHistoryCmd_JSON(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	input := env.write(t, "q-1042.yaml", sampleReport)

	if _, _, err := env.run(t, "render", "--record", input); err != nil {
		t.Fatalf("render error = %v", err)
	}

	stdout, _, err := env.run(t, "history", "--json", "Q-1042")
	if err != nil {
		t.Fatalf("history error = %v", err)
	}

	var entries []struct {
		JobNumber   string `json:"job_number"`
		Format      string `json:"format"`
		Fingerprint string `json:"fingerprint"`
		Changed     bool   `json:"changed"`
	}
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.JobNumber != "Q-1042" || e.Format != "text" || e.Fingerprint == "" || !e.Changed {
		t.Errorf("unexpected entry: %+v", e)
	}
}

func TestHistoryCmd_EmptyRegister(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	stdout, _, err := env.run(t, "history")
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	if stdout == "" {
		t.Error("expected a message for an empty register")
	}
}
