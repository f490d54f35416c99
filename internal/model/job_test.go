package model

import (
	"strings"
	"testing"

	"github.com/nao1215/locatereport/internal/format"
)

// TestTechnician tests hours formatting for a single technician.
func TestTechnician(t *testing.T) {
	t.Parallel()

	tech := Technician{Name: "Sam", Hours: Hours{HourEM: 2, HourGPR: 1.5, HourTravel: 0.5}}

	if !tech.HasAnyHours() {
		t.Error("expected HasAnyHours")
	}
	if got := tech.TotalHours(); got != 4 {
		t.Errorf("TotalHours() = %v, want 4", got)
	}
	if got := tech.FormatTechLine(); got != "Sam: EM = 2; GPR = 1.5; Travel = 0.5" {
		t.Errorf("FormatTechLine() = %q", got)
	}

	idle := Technician{}
	if idle.HasAnyHours() {
		t.Error("expected no hours")
	}
	if got := idle.FormatTechLine(); got != "Unknown" {
		t.Errorf("FormatTechLine() = %q, want Unknown", got)
	}
}

// TestWorkDayFormatTimeRange tests the start/end combinations.
func TestWorkDayFormatTimeRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"both", "09:30", "16:15", "9:30 am to 4:15 pm"},
		{"start only", "0800", "", "from 8:00 am"},
		{"end only", "", "17:00", "to 5:00 pm"},
		{"neither", "", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			day := WorkDay{StartTime: tc.start, EndTime: tc.end}
			if got := day.FormatTimeRange(); got != tc.want {
				t.Errorf("FormatTimeRange() = %q, want %q", got, tc.want)
			}
		})
	}
}

func multiDayJob() *Job {
	return &Job{
		IsMultiDay: true,
		WorkDays: []WorkDay{
			{
				Date: "2025-03-03", StartTime: "08:00", EndTime: "12:00",
				Technicians: []Technician{
					{Name: "Sam", Hours: Hours{HourEM: 2, HourTravel: 1}},
					{Name: "Ana", Hours: Hours{HourGPR: 3}},
				},
			},
			{
				Date: "2025-03-04", StartTime: "09:00", EndTime: "11:30",
				Technicians: []Technician{
					{Name: "Sam", Hours: Hours{HourEM: 1.5}},
				},
			},
		},
	}
}

// TestJobTotals tests merging technicians across days.
func TestJobTotals(t *testing.T) {
	t.Parallel()

	job := multiDayJob()

	all := job.AllTechnicians()
	if len(all) != 2 {
		t.Fatalf("expected 2 technicians, got %d", len(all))
	}
	if all[0].Name != "Sam" || all[1].Name != "Ana" {
		t.Errorf("unexpected order: %s, %s", all[0].Name, all[1].Name)
	}
	if all[0].Hours[HourEM] != 3.5 {
		t.Errorf("Sam EM = %v, want 3.5", all[0].Hours[HourEM])
	}

	combined := job.CombinedTotals()
	if got := combined.FormatTotalsLine(); got != "EM = 3.5; GPR = 3; Travel = 1" {
		t.Errorf("combined = %q", got)
	}
}

// TestJobFormatTimeOnSite tests single and multi-day layouts.
func TestJobFormatTimeOnSite(t *testing.T) {
	t.Parallel()

	dates := format.NewDateFormatter()

	t.Run("multi-day lists each day", func(t *testing.T) {
		t.Parallel()

		got, err := multiDayJob().FormatTimeOnSite(dates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Day (3/3/25): 8:00 am to 12:00 pm\nDay (3/4/25): 9:00 am to 11:30 am"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("single day uses first work day", func(t *testing.T) {
		t.Parallel()

		job := &Job{WorkDays: []WorkDay{{StartTime: "07:00", EndTime: "15:00"}}}
		got, err := job.FormatTimeOnSite(dates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "7:00 am to 3:00 pm" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("no work days", func(t *testing.T) {
		t.Parallel()

		got, err := (&Job{}).FormatTimeOnSite(dates)
		if err != nil || got != "" {
			t.Errorf("got %q, %v", got, err)
		}
	})

	t.Run("malformed date is an error", func(t *testing.T) {
		t.Parallel()

		job := multiDayJob()
		job.WorkDays[1].Date = "March fourth"
		if _, err := job.FormatTimeOnSite(dates); err == nil {
			t.Error("expected error")
		}
	})
}

// TestJobFormatTypeTime tests technician breakdowns.
func TestJobFormatTypeTime(t *testing.T) {
	t.Parallel()

	dates := format.NewDateFormatter()

	t.Run("single day with two technicians adds total", func(t *testing.T) {
		t.Parallel()

		job := &Job{WorkDays: []WorkDay{{
			Technicians: []Technician{
				{Name: "Sam", Hours: Hours{HourEM: 2}},
				{Name: "Ana", Hours: Hours{HourEM: 1, HourGPR: 2}},
				{Name: "Idle"},
			},
		}}}
		got, err := job.FormatTypeTime(dates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Sam: EM = 2\nAna: EM = 1; GPR = 2\nTotal: EM = 3; GPR = 2"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("single technician has no total", func(t *testing.T) {
		t.Parallel()

		job := &Job{WorkDays: []WorkDay{{
			Technicians: []Technician{{Name: "Sam", Hours: Hours{HourEM: 2}}},
		}}}
		got, _ := job.FormatTypeTime(dates)
		if strings.Contains(got, "Total") {
			t.Errorf("unexpected total in %q", got)
		}
	})

	t.Run("multi-day adds totals block", func(t *testing.T) {
		t.Parallel()

		got, err := multiDayJob().FormatTypeTime(dates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := strings.Join([]string{
			"Day (3/3/25): Sam: EM = 2; Travel = 1 | Ana: GPR = 3",
			"Day (3/4/25): Sam: EM = 1.5",
			"",
			"TOTALS:",
			"  Sam: EM = 3.5; Travel = 1",
			"  Ana: GPR = 3",
			"  Combined: EM = 3.5; GPR = 3; Travel = 1",
		}, "\n")
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})
}
