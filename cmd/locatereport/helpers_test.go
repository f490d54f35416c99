package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const sampleReport = `client_company: Acme Builders
job_number: Q-1042
technician_name: Sam Lee
site_visit_date: "2025-03-12"
site_address: 123 Main St, Victoria BC
revision_number: 1
job:
  work_days:
    - date: "2025-03-12"
      technicians:
        - name: Sam Lee
          hours:
            em: 3
            travel: 1
`

const incompleteReport = `client_company: Acme Builders
job_number: Q-9999
job: {}
`

// testEnv is a scratch directory with a config file pointing the issue
// register into it, so tests never touch the user's files.
type testEnv struct {
	dir        string
	configPath string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	dir := t.TempDir()
	env := testEnv{dir: dir, configPath: filepath.Join(dir, "config.yaml")}
	env.write(t, "config.yaml", "settings:\n  db_dir: "+filepath.Join(dir, "db")+"\n")
	return env
}

// write creates a file under the environment directory and returns its path.
func (e testEnv) write(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(e.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command with --config set and returns stdout,
// stderr and the error.
func (e testEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--config", e.configPath))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
