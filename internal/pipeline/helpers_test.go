package pipeline

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nao1215/locatereport/internal/report"
)

// sampleReportYAML is a minimal single-day report record.
const sampleReportYAML = `client_company: Acme Builders
job_number: Q-1042
technician_name: Sam Lee
site_visit_date: "2025-03-12"
site_address: 123 Main St, Victoria BC
revision_number: 1
weather: Overcast, 8C
job:
  is_multi_day: false
  work_days:
    - date: "2025-03-12"
      start_time: "09:00"
      end_time: "13:30"
      technicians:
        - name: Sam Lee
          hours:
            em: 3
            travel: 1
client_po_number: PO-77
missing_docs:
  gas: true
photo_pages:
  - page_number: 1
    photos:
      - file: photos/north.jpg
        caption: North property line
`

// sampleReportJSON is the JSON form of a minimal report record.
const sampleReportJSON = `{
  "client_company": "Acme Builders",
  "job_number": "Q-2001",
  "technician_name": "Sam Lee",
  "site_visit_date": "2025-03-13",
  "site_address": "9 Dock Rd, Sidney BC",
  "job": {"is_multi_day": false},
  "client_po_number": null
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRenderer() *report.Renderer {
	return report.NewRenderer(
		report.WithClock(func() time.Time { return time.Date(2025, 3, 14, 15, 4, 5, 0, time.UTC) }),
		report.WithLogger(discardLogger()),
	)
}

// writeFile writes content to name under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
