package parser

import (
	"strings"
	"time"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// Locator finds the header geometry of an unlabeled roster sheet.
// It keeps no state between sheets.
type Locator struct {
	rules      *compiled
	classifier *Classifier
}

// NewLocator compiles rules into a Locator.
func NewLocator(rules Rules) (*Locator, error) {
	c, err := rules.compile()
	if err != nil {
		return nil, err
	}
	return &Locator{rules: c, classifier: &Classifier{rules: c}}, nil
}

// Locate resolves the geometry of grid for date, stopping at the first
// field it cannot find. Missing fields stay zero.
func (l *Locator) Locate(grid models.Grid, date time.Time) models.Geometry {
	var g models.Geometry
	var ok bool

	if g.HeaderRow, ok = l.HeaderRow(grid); !ok {
		return g
	}
	if g.DateRow, ok = l.DateRow(grid, g.HeaderRow); !ok {
		return g
	}
	if g.TodayColumn, ok = l.TodayColumn(grid, g.HeaderRow, g.DateRow, date); !ok {
		return g
	}
	g.EmployeeColumn, _ = l.EmployeeColumn(grid, g.DateRow+1)
	return g
}

// HeaderRow returns the first row within the header window where at least
// MinWeekdayTokens distinct weekday names appear as substrings. The window
// is HeaderRows rows deep, starting at the grid's first row.
func (l *Locator) HeaderRow(grid models.Grid) (int, bool) {
	first := max(grid.MinRow(), 1)
	last := min(grid.MaxRow(), first+l.rules.scan.HeaderRows-1)
	for r := first; r <= last; r++ {
		if l.countWeekdays(grid, r) >= l.rules.scan.MinWeekdayTokens {
			return r, true
		}
	}
	return 0, false
}

func (l *Locator) countWeekdays(grid models.Grid, row int) int {
	var cells []string
	for c := 1; c <= grid.MaxColumn(); c++ {
		if v := Normalize(grid.Value(row, c)); v != "" {
			cells = append(cells, strings.ToUpper(v))
		}
	}
	count := 0
	for _, day := range l.rules.weekdays {
		for _, cell := range cells {
			if strings.Contains(cell, day) {
				count++
				break
			}
		}
	}
	return count
}

// DateRow returns the first of the DateLookahead rows below headerRow
// holding at least MinDateNumbers day-of-month cells.
func (l *Locator) DateRow(grid models.Grid, headerRow int) (int, bool) {
	if headerRow <= 0 {
		return 0, false
	}
	last := min(headerRow+l.rules.scan.DateLookahead, grid.MaxRow())
	for r := headerRow + 1; r <= last; r++ {
		nums := 0
		for c := 1; c <= grid.MaxColumn(); c++ {
			if IsDateNumber(Normalize(grid.Value(r, c))) {
				nums++
			}
		}
		if nums >= l.rules.scan.MinDateNumbers {
			return r, true
		}
	}
	return 0, false
}

// TodayColumn returns the column for date. A column whose header names
// date's weekday and whose date cell equals date's day wins; otherwise the
// first column matching the day alone.
func (l *Locator) TodayColumn(grid models.Grid, headerRow, dateRow int, date time.Time) (int, bool) {
	if headerRow <= 0 || dateRow <= 0 {
		return 0, false
	}
	dayKey := l.rules.weekdays[date.Weekday()]
	day := date.Day()

	for c := 1; c <= grid.MaxColumn(); c++ {
		top := strings.ToUpper(Normalize(grid.Value(headerRow, c)))
		if n, ok := DateNumber(Normalize(grid.Value(dateRow, c))); ok && n == day && strings.Contains(top, dayKey) {
			return c, true
		}
	}
	for c := 1; c <= grid.MaxColumn(); c++ {
		if n, ok := DateNumber(Normalize(grid.Value(dateRow, c))); ok && n == day {
			return c, true
		}
	}
	return 0, false
}

// EmployeeColumn scores every column by how many cells from startRow
// (EmployeeRows rows deep) look like employee names. The highest score
// wins, ties go to the lowest column, and a zero score is not found.
func (l *Locator) EmployeeColumn(grid models.Grid, startRow int) (int, bool) {
	if startRow <= 0 {
		return 0, false
	}
	last := min(grid.MaxRow(), startRow+l.rules.scan.EmployeeRows)
	scores := make([]int, grid.MaxColumn()+1)
	for r := startRow; r <= last; r++ {
		for c := 1; c <= grid.MaxColumn(); c++ {
			if l.classifier.IsEmployeeName(Normalize(grid.Value(r, c))) {
				scores[c]++
			}
		}
	}

	best, bestScore := 0, 0
	for c := 1; c < len(scores); c++ {
		if scores[c] > bestScore {
			best, bestScore = c, scores[c]
		}
	}
	return best, bestScore > 0
}
