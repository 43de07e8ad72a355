package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/roster-go/internal/testkit"
	"github.com/ukaji3/roster-go/pkg/roster/models"
)

func TestEmployeeID(t *testing.T) {
	tests := []struct {
		cell string
		name string
		id   string
		ok   bool
	}{
		{"Ahmed Ali - 1001", "Ahmed Ali", "1001", true},
		{"Ahmed Ali-1001", "Ahmed Ali", "1001", true},
		{"  Ahmed   Ali  -  ١٠٠١ ", "Ahmed Ali", "1001", true},
		{"Ahmed Ali", "Ahmed Ali", "", false},
		{"1001 - Ahmed Ali", "1001 - Ahmed Ali", "", false},
	}
	for _, tt := range tests {
		name, id, ok := EmployeeID(tt.cell)
		assert.Equal(t, tt.ok, ok, tt.cell)
		assert.Equal(t, tt.name, name, tt.cell)
		assert.Equal(t, tt.id, id, tt.cell)
	}
}

func TestDayColumns(t *testing.T) {
	l := newTestLocator(t, DefaultRules())
	grid := testkit.MonthGrid(2026, time.October, nil)

	cols := l.DayColumns(grid, testkit.HeaderRow, testkit.DateRow, day(2026, time.October, 1))
	require.Len(t, cols, 31)
	for d := 1; d <= 31; d++ {
		assert.Equal(t, testkit.DayColumn(d), cols[d], "day %d", d)
	}
}

func TestSchedules(t *testing.T) {
	grid := testkit.MonthGrid(2026, time.October, []testkit.Employee{
		{Name: "Ahmed Ali - 1001", Codes: map[int]string{1: "mn06", 2: "OFF", 3: "0600-1400"}},
		{Name: "Salim Said", Codes: map[int]string{1: "AN13"}},
		{Name: "Khalid Nasser - 1003"},
	})
	first := day(2026, time.October, 1)
	l := newTestLocator(t, DefaultRules())
	geom := l.Locate(grid, first)
	require.True(t, geom.Complete())
	days := l.DayColumns(grid, geom.HeaderRow, geom.DateRow, first)

	got := newTestBuilder(t).Schedules(grid, geom, days, first, "Officers")
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "1001", s.ID)
	assert.Equal(t, "Ahmed Ali", s.Name)
	assert.Equal(t, "Officers", s.Department)
	assert.Equal(t, map[string][]models.ScheduleDay{
		"2026-10": {
			{Date: "2026-10-01", Day: 1, Weekday: "Thursday", ShiftCode: "MN06", ShiftLabel: "🌅 Morning (MN06)", ShiftGroup: models.Morning},
			{Date: "2026-10-02", Day: 2, Weekday: "Friday", ShiftCode: "OFF", ShiftLabel: LabelOffDay, ShiftGroup: models.OffDay},
		},
	}, s.Schedules)
}

func TestSchedulesWithoutDays(t *testing.T) {
	grid := testkit.MonthGrid(2026, time.October, []testkit.Employee{
		{Name: "Ahmed Ali - 1001", Codes: map[int]string{1: "MN06"}},
	})
	geom := models.Geometry{HeaderRow: 3, DateRow: 4, EmployeeColumn: 2}
	assert.Nil(t, newTestBuilder(t).Schedules(grid, geom, nil, day(2026, time.October, 1), "Officers"))
}
