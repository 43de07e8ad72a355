package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/roster-go/pkg/roster/clock"
	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/ukaji3/roster-go/pkg/roster/parser"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "roster.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, clock.Default(), opts.Windows)
	assert.Len(t, opts.Departments, 5)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "roster.yaml", `
timezone: Asia/Dubai
excel_path: data/roster.xlsx
workers: 2
shifts:
  preset: extended
departments:
  - name: Officers
    sheet: OFFICERS
    range: B3:AH120
  - name: Ramp
    sheet: Ramp
    use_print_area: true
rules:
  extra_status_tokens: [PH]
  shift_codes:
    me05:
      label: "🌅 Morning (ME05)"
      category: Morning
    ph:
      label: "Public Holiday"
      category: OffDay
  scan:
    header_rows: 40
    date_lookahead: 2
    min_weekday_tokens: 3
    min_date_numbers: 5
    employee_rows: 100
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Asia/Dubai", cfg.Timezone)
	assert.Equal(t, "data/roster.xlsx", cfg.ExcelPath)
	assert.Equal(t, "debug", cfg.Logging.Level)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, clock.Extended(), opts.Windows)
	assert.Equal(t, 2, opts.Workers)
	require.Len(t, opts.Departments, 2)
	assert.Equal(t, "OFFICERS", opts.Departments[0].Sheet)
	assert.Equal(t, models.PrintArea{R1: 3, C1: 2, R2: 120, C2: 34}, opts.Departments[0].Area)
	assert.True(t, opts.Departments[1].UsePrintArea)
	assert.True(t, opts.Departments[1].Area.Empty())

	assert.Equal(t, models.Morning, opts.Rules.ShiftTable["ME05"].Category)
	assert.Equal(t, models.OffDay, opts.Rules.ShiftTable["PH"].Category)
	assert.Contains(t, opts.Rules.StatusTokens, "PH")
	assert.Equal(t, 40, opts.Rules.Scan.HeaderRows)
}

func TestExplicitShiftTimesWinOverPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shifts = ShiftConfig{Preset: "early", MorningStart: "06:30", AfternoonStart: "14:30", NightStart: "22:30"}
	w, err := cfg.Windows()
	require.NoError(t, err)
	assert.Equal(t, "06:30/14:30/22:30", w.String())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EXCEL_URL", " https://example.com/roster.xlsx ")
	t.Setenv("ROSTER_TZ", "UTC")
	t.Setenv("ROSTER_SHIFT_PRESET", "early")
	t.Setenv("ROSTER_WORKERS", "3")
	t.Setenv("ROSTER_LOG_LEVEL", "warn")
	t.Setenv("ROSTER_OUTPUT_DIR", "out")

	path := writeFile(t, "roster.yaml", "timezone: Asia/Dubai\nshifts:\n  night_start: \"23:00\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/roster.xlsx", cfg.ExcelURL)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, ShiftConfig{Preset: "early"}, cfg.Shifts)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "out", cfg.OutputDir)
}

func TestEnvWorkersMustBeNumeric(t *testing.T) {
	t.Setenv("ROSTER_WORKERS", "many")
	_, err := Load(filepath.Join(t.TempDir(), "roster.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ROSTER_WORKERS")
}

func TestSchedulesDir(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("docs", "schedules"), cfg.SchedulesDir())

	t.Setenv("ROSTER_OUTPUT_DIR", "site")
	cfg, err := Load(filepath.Join(t.TempDir(), "roster.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("site", "schedules"), cfg.SchedulesDir())
}

func TestLoadEnv(t *testing.T) {
	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))

	path := writeFile(t, ".env", "ROSTER_TEST_LOADENV=from-file\n")
	t.Cleanup(func() { os.Unsetenv("ROSTER_TEST_LOADENV") })
	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "from-file", os.Getenv("ROSTER_TEST_LOADENV"))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{"preset", func(c *Config) { c.Shifts.Preset = "weekend" }},
		{"shift times", func(c *Config) { c.Shifts.MorningStart = "25:00" }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"no departments", func(c *Config) { c.Departments = nil }},
		{"department without sheet", func(c *Config) { c.Departments[0].Sheet = "" }},
		{"range", func(c *Config) { c.Departments[0].Range = "A1" }},
		{"weekdays", func(c *Config) { c.Rules.Weekdays = []string{"SUN", "MON"} }},
		{"category", func(c *Config) {
			c.Rules.ShiftCodes = map[string]ShiftCodeConfig{"EV18": {Label: "Evening", Category: "Evening"}}
		}},
		{"scan", func(c *Config) { c.Rules.Scan = &parser.ScanLimits{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
			_, err := cfg.Options()
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "roster.yaml")
	cfg := DefaultConfig()
	cfg.ExcelPath = "roster.xlsx"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "roster.xlsx", loaded.ExcelPath)
	assert.Equal(t, cfg.Departments, loaded.Departments)
	assert.Equal(t, cfg.Shifts, loaded.Shifts)
	assert.NoError(t, loaded.Validate())
}
