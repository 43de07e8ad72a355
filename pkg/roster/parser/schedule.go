package parser

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

var employeeIDRe = regexp.MustCompile(`\s*-\s*(\d+)\s*$`)

// EmployeeID splits a "Name - 1234" cell into its name and trailing ID.
// Other ID conventions (ID first, bracketed) are not recognized.
func EmployeeID(cell string) (name, id string, ok bool) {
	v := Normalize(cell)
	m := employeeIDRe.FindStringSubmatchIndex(v)
	if m == nil {
		return v, "", false
	}
	return strings.TrimSpace(v[:m[0]]), v[m[2]:m[3]], true
}

// DayColumns maps each day of the month starting at first to its column,
// resolved the same way TodayColumn resolves a single date.
func (l *Locator) DayColumns(grid models.Grid, headerRow, dateRow int, first time.Time) map[int]int {
	cols := make(map[int]int)
	month := first.Month()
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if c, ok := l.TodayColumn(grid, headerRow, dateRow, d); ok {
			cols[d.Day()] = c
		}
	}
	return cols
}

// Schedules reads every identified employee row across the day columns.
// Rows without a "Name - ID" cell or without any shift code are dropped.
func (b *Builder) Schedules(grid models.Grid, geom models.Geometry, days map[int]int, first time.Time, department string) []models.EmployeeSchedule {
	if geom.DateRow <= 0 || geom.EmployeeColumn <= 0 || len(days) == 0 {
		return nil
	}
	dayNums := make([]int, 0, len(days))
	for d := range days {
		dayNums = append(dayNums, d)
	}
	sort.Ints(dayNums)
	monthKey := first.Format("2006-01")

	var out []models.EmployeeSchedule
	for r := geom.DateRow + 1; r <= grid.MaxRow(); r++ {
		cell := Normalize(grid.Value(r, geom.EmployeeColumn))
		if !b.classifier.IsEmployeeName(cell) {
			continue
		}
		name, id, ok := EmployeeID(cell)
		if !ok {
			continue
		}

		var month []models.ScheduleDay
		for _, d := range dayNums {
			raw := Normalize(grid.Value(r, days[d]))
			if !b.classifier.IsShiftCode(raw) {
				continue
			}
			label, category := b.mapper.Map(raw)
			date := time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, first.Location())
			month = append(month, models.ScheduleDay{
				Date:       date.Format("2006-01-02"),
				Day:        d,
				Weekday:    date.Weekday().String(),
				ShiftCode:  strings.ToUpper(raw),
				ShiftLabel: label,
				ShiftGroup: category,
			})
		}
		if len(month) == 0 {
			continue
		}
		out = append(out, models.EmployeeSchedule{
			ID:         id,
			Name:       name,
			Department: department,
			Schedules:  map[string][]models.ScheduleDay{monthKey: month},
		})
	}
	return out
}
