package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/nao1215/locatereport/internal/model"
)

func newHoursReport(job string, days ...model.WorkDay) *model.Report {
	r := model.NewReport()
	r.ClientCompany = "Acme Builders"
	r.JobNumber = job
	r.TechnicianName = "Sam Lee"
	r.SiteVisitDate = "2025-03-12"
	r.SiteAddress = "123 Main St"
	r.Job.IsMultiDay = len(days) > 1
	r.Job.WorkDays = days
	return r
}

func readRows(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(HoursSheet)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	return rows
}

func TestWriteHoursWorkbook(t *testing.T) {
	t.Parallel()

	multi := newHoursReport("Q-1042",
		model.WorkDay{
			Date: "2025-03-12",
			Technicians: []model.Technician{
				{Name: "Sam Lee", Hours: model.Hours{model.HourEM: 3, model.HourTravel: 1}},
				{Name: "Ana Ruiz", Hours: model.Hours{model.HourGPR: 2.5}},
			},
		},
		model.WorkDay{
			Date: "2025-03-13",
			Technicians: []model.Technician{
				{Name: "Sam Lee", Hours: model.Hours{model.HourEM: 2}},
				{Name: "Idle", Hours: model.Hours{}},
			},
		},
	)
	single := newHoursReport("Q-2001", model.WorkDay{
		Technicians: []model.Technician{{Hours: model.Hours{model.HourStandby: 0.5}}},
	})
	noHours := newHoursReport("Q-3000")

	var buf bytes.Buffer
	if err := WriteHoursWorkbook(&buf, multi, noHours, single); err != nil {
		t.Fatalf("WriteHoursWorkbook() error = %v", err)
	}

	want := [][]string{
		{"Job Number", "Client", "Date", "Technician", "EM", "GPR", "Travel", "Survey", "Conc. GPR", "Standby", "Total"},
		{"Q-1042", "Acme Builders", "2025-03-12", "Sam Lee", "3", "0", "1", "0", "0", "0", "4"},
		{"Q-1042", "Acme Builders", "2025-03-12", "Ana Ruiz", "0", "2.5", "0", "0", "0", "0", "2.5"},
		{"Q-1042", "Acme Builders", "2025-03-13", "Sam Lee", "2", "0", "0", "0", "0", "0", "2"},
		{"Q-1042", "Acme Builders", "", "Totals", "5", "2.5", "1", "0", "0", "0", "8.5"},
		{"Q-2001", "Acme Builders", "2025-03-12", "Unknown", "0", "0", "0", "0", "0", "0.5", "0.5"},
		{"Q-2001", "Acme Builders", "", "Totals", "0", "0", "0", "0", "0", "0.5", "0.5"},
	}
	if diff := cmp.Diff(want, readRows(t, &buf)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteHoursWorkbook_NoReports(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteHoursWorkbook(&buf); !errors.Is(err, ErrNoReports) {
		t.Errorf("WriteHoursWorkbook() error = %v, want ErrNoReports", err)
	}
}

func TestHoursRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report *model.Report
		want   int
	}{
		{name: "nil report", report: nil, want: 0},
		{name: "nil job", report: &model.Report{}, want: 0},
		{name: "no work days", report: newHoursReport("Q-1"), want: 0},
		{
			name: "skips technicians without hours",
			report: newHoursReport("Q-1", model.WorkDay{
				Date: "2025-03-12",
				Technicians: []model.Technician{
					{Name: "A", Hours: model.Hours{model.HourEM: 1}},
					{Name: "B"},
				},
			}),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := len(HoursRows(tt.report)); got != tt.want {
				t.Errorf("len(HoursRows()) = %d, want %d", got, tt.want)
			}
		})
	}
}
