package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	m := NewMatrix([][]any{
		{"a"},
		{"b", "c", "d"},
	})
	assert.Equal(t, 1, m.MinRow())
	assert.Equal(t, 2, m.MaxRow())
	assert.Equal(t, 3, m.MaxColumn())
	assert.Equal(t, "c", m.Value(2, 2))
	assert.Nil(t, m.Value(1, 2))
	assert.Nil(t, m.Value(0, 1))
	assert.Nil(t, m.Value(3, 1))
}

func TestClip(t *testing.T) {
	m := NewMatrix([][]any{
		{"a1", "b1", "c1"},
		{"a2", "b2", "c2"},
		{"a3", "b3", "c3"},
	})

	assert.Same(t, m, Clip(m, PrintArea{}))

	g := Clip(m, PrintArea{R1: 2, C1: 2, R2: 10, C2: 2})
	assert.Equal(t, 2, g.MinRow())
	assert.Equal(t, 3, g.MaxRow())
	assert.Equal(t, 2, g.MaxColumn())
	assert.Equal(t, "b2", g.Value(2, 2))
	assert.Equal(t, "b3", g.Value(3, 2))
	assert.Nil(t, g.Value(1, 2))
	assert.Nil(t, g.Value(2, 1))
	assert.Nil(t, g.Value(2, 3))
}

func TestPrintAreaEmpty(t *testing.T) {
	assert.True(t, PrintArea{}.Empty())
	assert.True(t, PrintArea{R1: 5, C1: 1, R2: 4, C2: 3}.Empty())
	assert.False(t, PrintArea{R1: 1, C1: 1, R2: 1, C2: 1}.Empty())
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories(), 8)
	assert.True(t, OffDay.Valid())
	assert.False(t, Category("Evening").Valid())

	c, ok := ParseCategory("OffDay")
	assert.True(t, ok)
	assert.Equal(t, OffDay, c)
	_, ok = ParseCategory("morning")
	assert.False(t, ok)
}

func TestBucket(t *testing.T) {
	b := NewBucket()
	assert.Len(t, b, len(Categories()))
	assert.Zero(t, b.Total())

	b.Add(Morning, Entry{Name: "Ahmed Ali - 1001", Shift: "🌅 Morning (MN06)"})
	b.Add(Morning, Entry{Name: "Salim Said - 1002", Shift: "🌅 Morning (ME06)"})
	b.Add(Leave, Entry{Name: "Khalid Nasser - 1003", Shift: "✈️ Annual Leave"})
	assert.Equal(t, 3, b.Total())
	assert.Equal(t, "Salim Said - 1002", b[Morning][1].Name)
}

func TestGeometryMissing(t *testing.T) {
	g := Geometry{HeaderRow: 3, TodayColumn: 5}
	assert.False(t, g.Complete())
	assert.Equal(t, []string{"date_row", "employee_column"}, g.Missing())
}

func TestReportTotals(t *testing.T) {
	officers := NewBucket()
	officers.Add(Morning, Entry{Name: "Ahmed Ali - 1001", Shift: "🌅 Morning (MN06)"})
	officers.Add(Night, Entry{Name: "Salim Said - 1002", Shift: "🌙 Night (NN21)"})

	r := &Report{
		ActiveShift: Night,
		Departments: []DepartmentRoster{
			{Department: "Officers", Buckets: officers},
			{Department: "Supervisors", Buckets: NewBucket(), Skipped: "sheet not found"},
		},
	}
	assert.Equal(t, 2, r.EmployeesTotal())
	assert.Equal(t, 1, r.DepartmentsTotal())
	assert.Len(t, r.Buckets(), 2)
	assert.Equal(t, []ActiveDepartment{
		{Department: "Officers", Entries: []Entry{{Name: "Salim Said - 1002", Shift: "🌙 Night (NN21)"}}},
	}, r.ActiveRoster())
}
