package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/nao1215/locatereport/internal/model"
)

// HoursSheet is the name of the worksheet written by WriteHoursWorkbook.
const HoursSheet = "Hours"

// ErrNoReports is returned when no report is given.
var ErrNoReports = errors.New("no reports to export")

// fixedColumns precede one column per hour type and the total column.
var fixedColumns = []string{"Job Number", "Client", "Date", "Technician"}

// HoursHeader returns the worksheet header row.
func HoursHeader() []string {
	header := append([]string(nil), fixedColumns...)
	for _, hourType := range model.HourTypes {
		header = append(header, model.HourLabel(hourType))
	}
	return append(header, "Total")
}

// HoursRow is one technician's hours for one work day of a job.
type HoursRow struct {
	JobNumber     string
	ClientCompany string
	Date          string
	Technician    string
	Hours         model.Hours
}

// HoursRows flattens a report into one row per work day and technician.
// Technicians without any hours are skipped. A work day without a date
// uses the report's site visit date.
func HoursRows(r *model.Report) []HoursRow {
	if r == nil || r.Job == nil {
		return nil
	}

	rows := make([]HoursRow, 0)
	for _, day := range r.Job.WorkDays {
		date := day.Date
		if date == "" {
			date = r.SiteVisitDate
		}
		for _, tech := range day.Technicians {
			if !tech.HasAnyHours() {
				continue
			}
			rows = append(rows, HoursRow{
				JobNumber:     r.JobNumber,
				ClientCompany: r.ClientCompany,
				Date:          date,
				Technician:    tech.DisplayName(),
				Hours:         tech.Hours,
			})
		}
	}
	return rows
}

// WriteHoursWorkbook writes an .xlsx workbook with one row per job, work
// day and technician, followed by a Totals row for each job.
func WriteHoursWorkbook(w io.Writer, reports ...*model.Report) error {
	if len(reports) == 0 {
		return ErrNoReports
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), HoursSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	header := HoursHeader()
	if err := writeRow(f, 1, toAny(header), styles.header); err != nil {
		return err
	}

	row := 2
	for _, r := range reports {
		rows := HoursRows(r)
		if len(rows) == 0 {
			continue
		}

		totals := make(model.Hours, len(model.HourTypes))
		for _, hr := range rows {
			values := []any{hr.JobNumber, hr.ClientCompany, hr.Date, hr.Technician}
			for _, hourType := range model.HourTypes {
				values = append(values, hr.Hours[hourType])
				totals[hourType] += hr.Hours[hourType]
			}
			values = append(values, hr.Hours.Total())

			if err := writeRow(f, row, values, styles.data); err != nil {
				return err
			}
			row++
		}

		values := []any{r.JobNumber, r.ClientCompany, "", "Totals"}
		for _, hourType := range model.HourTypes {
			values = append(values, totals[hourType])
		}
		values = append(values, totals.Total())
		if err := writeRow(f, row, values, styles.totals); err != nil {
			return err
		}
		row++
	}

	if err := setColumnWidths(f, len(header)); err != nil {
		return err
	}
	if err := f.SetPanes(HoursSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type sheetStyles struct {
	header int
	data   int
	totals int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "CCCCCC", Style: 1},
		{Type: "right", Color: "CCCCCC", Style: 1},
		{Type: "top", Color: "CCCCCC", Style: 1},
		{Type: "bottom", Color: "CCCCCC", Style: 1},
	}

	var (
		s   sheetStyles
		err error
	)
	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}

	s.data, err = f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return s, fmt.Errorf("failed to create data style: %w", err)
	}

	s.totals, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E7E6E6"},
			Pattern: 1,
		},
		Border: border,
	})
	if err != nil {
		return s, fmt.Errorf("failed to create totals style: %w", err)
	}
	return s, nil
}

func writeRow(f *excelize.File, row int, values []any, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(HoursSheet, first, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return f.SetCellStyle(HoursSheet, first, last, style)
}

func setColumnWidths(f *excelize.File, columns int) error {
	for col := 1; col <= columns; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		width := 11.0
		if col <= len(fixedColumns) {
			width = 20
		}
		if err := f.SetColWidth(HoursSheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
