package model

import (
	"strings"

	"github.com/nao1215/locatereport/internal/format"
)

// Hour types recorded per technician, in display order.
const (
	HourEM          = "em"
	HourGPR         = "gpr"
	HourTravel      = "travel"
	HourSurvey      = "survey"
	HourConcreteGPR = "concrete_gpr"
	HourStandby     = "standby"
)

// HourTypes lists every hour type in the order it is displayed.
var HourTypes = []string{HourEM, HourGPR, HourTravel, HourSurvey, HourConcreteGPR, HourStandby}

// hourLabels maps hour types to their short display labels.
var hourLabels = map[string]string{
	HourEM:          "EM",
	HourGPR:         "GPR",
	HourTravel:      "Travel",
	HourSurvey:      "Survey",
	HourConcreteGPR: "Conc. GPR",
	HourStandby:     "Standby",
}

// HourLabel returns the display label for an hour type.
func HourLabel(hourType string) string {
	if label, ok := hourLabels[hourType]; ok {
		return label
	}
	return hourType
}

// Hours maps hour types to a number of hours.
type Hours map[string]float64

// FormatTotalsLine formats hours as "EM = 3; GPR = 3.5; Travel = 0.5",
// skipping hour types with no time.
func (h Hours) FormatTotalsLine() string {
	parts := make([]string, 0, len(HourTypes))
	for _, hourType := range HourTypes {
		if v := h[hourType]; v > 0 {
			parts = append(parts, HourLabel(hourType)+" = "+format.FormatNumber(v))
		}
	}
	return strings.Join(parts, "; ")
}

// Total sums all known hour types.
func (h Hours) Total() float64 {
	var total float64
	for _, hourType := range HourTypes {
		total += h[hourType]
	}
	return total
}

// Technician is one technician's hours for a work day.
type Technician struct {
	Name  string `yaml:"name" json:"name"`
	Hours Hours  `yaml:"hours" json:"hours,omitempty"`
}

// HasAnyHours reports whether any hour type is positive.
func (t Technician) HasAnyHours() bool {
	for _, hourType := range HourTypes {
		if t.Hours[hourType] > 0 {
			return true
		}
	}
	return false
}

// TotalHours sums all hour types for this technician.
func (t Technician) TotalHours() float64 {
	return t.Hours.Total()
}

// DisplayName returns the technician name, or "Unknown" when unset.
func (t Technician) DisplayName() string {
	if t.Name == "" {
		return "Unknown"
	}
	return t.Name
}

// FormatHoursLine formats hours as "EM = 2; GPR = 1.5; Travel = 0.5".
func (t Technician) FormatHoursLine() string {
	return t.Hours.FormatTotalsLine()
}

// FormatTechLine formats "Name: EM = 2; GPR = 1.5", or just the name when
// no hours are recorded.
func (t Technician) FormatTechLine() string {
	hours := t.FormatHoursLine()
	if hours == "" {
		return t.DisplayName()
	}
	return t.DisplayName() + ": " + hours
}

// WorkDay is a single day on site.
type WorkDay struct {
	// Date is the ISO date of the work day.
	Date string `yaml:"date" json:"date"`

	// Weather may be empty; empty weather is left out of the weather line.
	Weather string `yaml:"weather" json:"weather,omitempty"`

	// StartTime and EndTime are times of day ("09:30", "1615", "4:15 pm").
	StartTime string `yaml:"start_time" json:"start_time,omitempty"`
	EndTime   string `yaml:"end_time" json:"end_time,omitempty"`

	Technicians []Technician `yaml:"technicians" json:"technicians,omitempty"`
}

// FormatTimeRange formats "9:30 am to 4:15 pm", "from 9:30 am" or "to 4:15 pm".
func (d WorkDay) FormatTimeRange() string {
	start := format.FormatTime12Hour(d.StartTime)
	end := format.FormatTime12Hour(d.EndTime)

	switch {
	case start != "" && end != "":
		return start + " to " + end
	case start != "":
		return "from " + start
	case end != "":
		return "to " + end
	default:
		return ""
	}
}

// HoursByType sums every technician's hours for this day.
func (d WorkDay) HoursByType() Hours {
	totals := make(Hours, len(HourTypes))
	for _, tech := range d.Technicians {
		for _, hourType := range HourTypes {
			totals[hourType] += tech.Hours[hourType]
		}
	}
	return totals
}

// shortDate formats the day's date for per-day lines.
func (d WorkDay) shortDate(dates format.DateFormatter) (string, error) {
	if d.Date == "" {
		return "Unknown", nil
	}
	return dates.Format(d.Date, format.DateShort)
}

// Job holds the work days of a locate job.
type Job struct {
	// IsMultiDay selects per-day weather and billing layouts.
	IsMultiDay bool `yaml:"is_multi_day" json:"is_multi_day"`

	// WorkDays are rendered in the order given.
	WorkDays []WorkDay `yaml:"work_days" json:"work_days,omitempty"`
}

// TechnicianTotal is one technician's hours summed across all work days.
type TechnicianTotal struct {
	Name  string
	Hours Hours
}

// singleDayLayout reports whether the single-day layout applies.
func (j *Job) singleDayLayout() bool {
	return !j.IsMultiDay || len(j.WorkDays) <= 1
}

// AllTechnicians merges technicians by name across every day, in the order
// each name first appears.
func (j *Job) AllTechnicians() []TechnicianTotal {
	index := make(map[string]int)
	totals := make([]TechnicianTotal, 0)
	for _, day := range j.WorkDays {
		for _, tech := range day.Technicians {
			name := tech.DisplayName()
			i, ok := index[name]
			if !ok {
				i = len(totals)
				index[name] = i
				totals = append(totals, TechnicianTotal{Name: name, Hours: make(Hours, len(HourTypes))})
			}
			for _, hourType := range HourTypes {
				totals[i].Hours[hourType] += tech.Hours[hourType]
			}
		}
	}
	return totals
}

// CombinedTotals sums all hours across days and technicians.
func (j *Job) CombinedTotals() Hours {
	totals := make(Hours, len(HourTypes))
	for _, day := range j.WorkDays {
		for hourType, v := range day.HoursByType() {
			totals[hourType] += v
		}
	}
	return totals
}

// FormatTimeOnSite formats the TIME ON SITE value. Multi-day jobs get one
// "Day (1/2/25): 9:00 am to 5:00 pm" line per work day.
func (j *Job) FormatTimeOnSite(dates format.DateFormatter) (string, error) {
	if j.singleDayLayout() {
		if len(j.WorkDays) == 0 {
			return "", nil
		}
		return j.WorkDays[0].FormatTimeRange(), nil
	}

	lines := make([]string, 0, len(j.WorkDays))
	for _, day := range j.WorkDays {
		date, err := day.shortDate(dates)
		if err != nil {
			return "", err
		}
		lines = append(lines, "Day ("+date+"): "+day.FormatTimeRange())
	}
	return strings.Join(lines, "\n"), nil
}

// FormatTypeTime formats the TYPE/TIME value.
//
// Single-day jobs list each technician with hours and add a Total line when
// two or more technicians logged time. Multi-day jobs list each day's
// technicians followed by a TOTALS block per technician and combined.
func (j *Job) FormatTypeTime(dates format.DateFormatter) (string, error) {
	lines := make([]string, 0)

	if j.singleDayLayout() {
		if len(j.WorkDays) == 0 {
			return "", nil
		}
		day := j.WorkDays[0]
		withHours := 0
		for _, tech := range day.Technicians {
			if tech.HasAnyHours() {
				lines = append(lines, tech.FormatTechLine())
				withHours++
			}
		}
		if withHours >= 2 {
			if totals := day.HoursByType().FormatTotalsLine(); totals != "" {
				lines = append(lines, "Total: "+totals)
			}
		}
		return strings.Join(lines, "\n"), nil
	}

	for _, day := range j.WorkDays {
		date, err := day.shortDate(dates)
		if err != nil {
			return "", err
		}
		parts := make([]string, 0, len(day.Technicians))
		for _, tech := range day.Technicians {
			if tech.HasAnyHours() {
				parts = append(parts, tech.FormatTechLine())
			}
		}
		if len(parts) > 0 {
			lines = append(lines, "Day ("+date+"): "+strings.Join(parts, " | "))
		}
	}

	all := j.AllTechnicians()
	if len(all) > 0 {
		lines = append(lines, "", "TOTALS:")
		for _, tech := range all {
			if line := tech.Hours.FormatTotalsLine(); line != "" {
				lines = append(lines, "  "+tech.Name+": "+line)
			}
		}
		if combined := j.CombinedTotals().FormatTotalsLine(); combined != "" {
			lines = append(lines, "  Combined: "+combined)
		}
	}

	return strings.Join(lines, "\n"), nil
}
