package roster

import (
	"fmt"
	"time"
)

// ParseMonth parses "2006-01" into midnight of the month's first day in loc.
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: want YYYY-MM", s)
	}
	return t, nil
}

// AdjacentMonths returns the first days of the month before date, date's
// own month and the month after, in date's location.
func AdjacentMonths(date time.Time) []time.Time {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return []time.Time{first.AddDate(0, -1, 0), first, first.AddDate(0, 1, 0)}
}

// EffectiveDate is the roster date the shift running at at belongs to.
func (e *Engine) EffectiveDate(at time.Time) time.Time {
	return e.opts.Windows.EffectiveDate(at)
}
