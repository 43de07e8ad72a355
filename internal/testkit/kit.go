// Package testkit builds synthetic roster sheets for tests.
package testkit

import (
	"strings"
	"time"

	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/xuri/excelize/v2"
)

// Fixed layout of a generated month sheet (1-based).
const (
	TitleRow    = 1
	HeaderRow   = 3
	DateRow     = 4
	FirstEmpRow = 6
	IndexCol    = 1
	NameCol     = 2
	FirstDayCol = 3
)

// Employee is one roster row: the name cell and shift codes by day of month.
type Employee struct {
	Name  string
	Codes map[int]string
}

// DayColumn returns the column holding day d in a generated sheet.
func DayColumn(d int) int {
	return FirstDayCol + d - 1
}

// MonthRows lays out a month roster: a title, the weekday header row, the
// date number row, one blank row, then one row per employee preceded by a
// serial number. Dates are integers as a spreadsheet reader would return.
func MonthRows(year int, month time.Month, employees []Employee) [][]any {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	width := DayColumn(days)

	rows := make([][]any, FirstEmpRow-1+len(employees))
	for i := range rows {
		rows[i] = make([]any, width)
	}
	rows[TitleRow-1][0] = "DUTY ROSTER " + strings.ToUpper(first.Format("January 2006"))
	rows[HeaderRow-1][IndexCol-1] = "S/N"
	rows[HeaderRow-1][NameCol-1] = "NAME"
	for d := 1; d <= days; d++ {
		day := first.AddDate(0, 0, d-1)
		rows[HeaderRow-1][DayColumn(d)-1] = strings.ToUpper(day.Weekday().String()[:3])
		rows[DateRow-1][DayColumn(d)-1] = int64(d)
	}
	for i, e := range employees {
		row := rows[FirstEmpRow-1+i]
		row[IndexCol-1] = int64(i + 1)
		row[NameCol-1] = e.Name
		for d, code := range e.Codes {
			if d >= 1 && d <= days {
				row[DayColumn(d)-1] = code
			}
		}
	}
	return rows
}

// MonthGrid is MonthRows wrapped in a Matrix.
func MonthGrid(year int, month time.Month, employees []Employee) *models.Matrix {
	return models.NewMatrix(MonthRows(year, month, employees))
}

// Place returns rows with block laid over it starting at the 1-based row,
// padding with empty rows as needed.
func Place(rows [][]any, row int, block [][]any) [][]any {
	out := append([][]any(nil), rows...)
	for len(out) < row-1+len(block) {
		out = append(out, nil)
	}
	copy(out[row-1:], block)
	return out
}

// Sheet is a named sheet for WriteXLSX.
type Sheet struct {
	Name string
	Rows [][]any
	// PrintArea, when set, is stored as the sheet's print area ("$A$1:$D$10").
	PrintArea string
}

// WriteXLSX saves sheets, in order, as an .xlsx file at path.
func WriteXLSX(path string, sheets ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return err
		}
		if s.PrintArea != "" {
			if err := f.SetDefinedName(&excelize.DefinedName{
				Name:     "_xlnm.Print_Area",
				RefersTo: "'" + s.Name + "'!" + s.PrintArea,
				Scope:    s.Name,
			}); err != nil {
				return err
			}
		}
		for r, row := range s.Rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(s.Name, cell, v); err != nil {
					return err
				}
			}
		}
	}
	return f.SaveAs(path)
}
