package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/roster-go/internal/testkit"
	"github.com/ukaji3/roster-go/pkg/roster/models"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder(DefaultRules())
	require.NoError(t, err)
	return b
}

func TestBuildSingleEmployee(t *testing.T) {
	grid := testkit.MonthGrid(2026, time.October, []testkit.Employee{
		{Name: "Ahmed Ali - 1001", Codes: map[int]string{16: "MN06"}},
	})
	geom := newTestLocator(t, DefaultRules()).Locate(grid, day(2026, time.October, 16))
	require.True(t, geom.Complete())

	bucket := newTestBuilder(t).Build(grid, geom)
	assert.Equal(t, []models.Entry{{Name: "Ahmed Ali - 1001", Shift: "🌅 Morning (MN06)"}}, bucket[models.Morning])
	assert.Equal(t, 1, bucket.Total())
	for _, c := range models.Categories() {
		assert.NotNil(t, bucket[c], "category %s", c)
	}
}

func TestBuildKeepsRowOrder(t *testing.T) {
	grid := testkit.MonthGrid(2026, time.October, []testkit.Employee{
		{Name: "Salim Said - 1002", Codes: map[int]string{16: "AN13"}},
		{Name: "Ahmed Ali - 1001", Codes: map[int]string{16: "MN06"}},
		{Name: "Khalid Nasser - 1003", Codes: map[int]string{16: "me06"}},
		{Name: "Musa Hamed - 1004", Codes: map[int]string{16: "OFF"}},
		{Name: "Yusuf Amer - 1005", Codes: map[int]string{16: "STME06"}},
		{Name: "Hilal Rashid - 1006", Codes: map[int]string{16: "Annual Leave"}},
	})
	geom := newTestLocator(t, DefaultRules()).Locate(grid, day(2026, time.October, 16))

	bucket := newTestBuilder(t).Build(grid, geom)
	assert.Equal(t, []models.Entry{
		{Name: "Ahmed Ali - 1001", Shift: "🌅 Morning (MN06)"},
		{Name: "Khalid Nasser - 1003", Shift: "🌅 Morning (ME06)"},
	}, bucket[models.Morning])
	assert.Equal(t, []models.Entry{{Name: "Salim Said - 1002", Shift: "🌆 Afternoon (AN13)"}}, bucket[models.Afternoon])
	assert.Equal(t, []models.Entry{{Name: "Musa Hamed - 1004", Shift: LabelOffDay}}, bucket[models.OffDay])
	assert.Equal(t, []models.Entry{{Name: "Yusuf Amer - 1005", Shift: "🧍 Standby (ME06)"}}, bucket[models.Standby])
	assert.Equal(t, []models.Entry{{Name: "Hilal Rashid - 1006", Shift: LabelAnnualLeave}}, bucket[models.Leave])
	assert.Equal(t, 6, bucket.Total())
}

func TestBuildSkipsUnrecognizedRows(t *testing.T) {
	grid := testkit.MonthGrid(2026, time.October, []testkit.Employee{
		{Name: "Ahmed Ali - 1001", Codes: map[int]string{16: "MN06"}},
		{Name: "Salim Said - 1002", Codes: map[int]string{16: "0600-1400"}},
		{Name: "Khalid Nasser - 1003"},
		{Name: "TOTAL", Codes: map[int]string{16: "AN13"}},
		{Name: "Musa Hamed - 1004", Codes: map[int]string{16: "XYZ"}},
	})
	geom := newTestLocator(t, DefaultRules()).Locate(grid, day(2026, time.October, 16))

	bucket := newTestBuilder(t).Build(grid, geom)
	assert.Equal(t, 1, bucket.Total())
	assert.Len(t, bucket[models.Morning], 1)
}

func TestBuildIncompleteGeometry(t *testing.T) {
	grid := testkit.MonthGrid(2026, time.October, []testkit.Employee{
		{Name: "Ahmed Ali - 1001", Codes: map[int]string{16: "MN06"}},
	})
	bucket := newTestBuilder(t).Build(grid, models.Geometry{HeaderRow: 3, DateRow: 4})
	assert.Equal(t, models.NewBucket(), bucket)
	assert.Zero(t, bucket.Total())
}

func TestBuildIsDeterministic(t *testing.T) {
	grid := testkit.MonthGrid(2026, time.October, []testkit.Employee{
		{Name: "Ahmed Ali - 1001", Codes: map[int]string{16: "MN06"}},
		{Name: "Salim Said - 1002", Codes: map[int]string{16: "NN21"}},
	})
	l := newTestLocator(t, DefaultRules())
	b := newTestBuilder(t)

	first := b.Build(grid, l.Locate(grid, day(2026, time.October, 16)))
	second := b.Build(grid, l.Locate(grid, day(2026, time.October, 16)))
	assert.Equal(t, first, second)
}
