// Package config loads roster settings from YAML, .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/ukaji3/roster-go/pkg/roster"
	"github.com/ukaji3/roster-go/pkg/roster/clock"
	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/ukaji3/roster-go/pkg/roster/parser"
	"gopkg.in/yaml.v3"
)

// Config holds all roster settings.
type Config struct {
	// Timezone is the IANA zone timestamps are interpreted in.
	Timezone string `yaml:"timezone"`

	// Workbook source: a local path or a URL to download.
	ExcelPath string `yaml:"excel_path"`
	ExcelURL  string `yaml:"excel_url"`

	// OutputDir is the root for generated files. Per-employee schedules go
	// to its schedules subdirectory.
	OutputDir string `yaml:"output_dir"`

	// Workers bounds concurrent department processing (0 = GOMAXPROCS).
	Workers int `yaml:"workers"`

	Shifts      ShiftConfig        `yaml:"shifts"`
	Departments []DepartmentConfig `yaml:"departments"`
	Rules       RulesConfig        `yaml:"rules"`
	Logging     LoggingConfig      `yaml:"logging"`
}

// ShiftConfig selects shift window boundaries. Explicit times win over the preset.
type ShiftConfig struct {
	Preset         string `yaml:"preset"` // default, extended, early
	MorningStart   string `yaml:"morning_start"`
	AfternoonStart string `yaml:"afternoon_start"`
	NightStart     string `yaml:"night_start"`
}

// DepartmentConfig maps a department to its sheet.
type DepartmentConfig struct {
	Name         string `yaml:"name"`
	Sheet        string `yaml:"sheet"`
	Range        string `yaml:"range"` // e.g. "A1:AH150"
	UsePrintArea bool   `yaml:"use_print_area"`
}

// ShiftCodeConfig adds or replaces a shift table entry.
type ShiftCodeConfig struct {
	Label    string `yaml:"label"`
	Category string `yaml:"category"`
}

// RulesConfig overrides parts of the built-in rule set.
type RulesConfig struct {
	Version      string                     `yaml:"version"`
	Weekdays     []string                   `yaml:"weekdays"`
	StatusTokens []string                   `yaml:"extra_status_tokens"`
	ShiftCodes   map[string]ShiftCodeConfig `yaml:"shift_codes"`
	Scan         *parser.ScanLimits         `yaml:"scan"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	cfg := &Config{
		Timezone:  "Asia/Muscat",
		OutputDir: "docs",
		Shifts:    ShiftConfig{Preset: "default"},
		Logging:   LoggingConfig{Level: "info"},
	}
	for _, d := range roster.DefaultDepartments() {
		cfg.Departments = append(cfg.Departments, DepartmentConfig{Name: d.Name, Sheet: d.Sheet})
	}
	return cfg
}

// LoadEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from a YAML file, falling back to defaults when
// the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// Return defaults if config file doesn't exist
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("EXCEL_URL"); v != "" {
		c.ExcelURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("EXCEL_PATH"); v != "" {
		c.ExcelPath = strings.TrimSpace(v)
	}
	if v := os.Getenv("ROSTER_TZ"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("ROSTER_SHIFT_PRESET"); v != "" {
		c.Shifts = ShiftConfig{Preset: v}
	}
	if v := os.Getenv("ROSTER_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("ROSTER_WORKERS"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid ROSTER_WORKERS %q: %w", v, err)
		}
		c.Workers = n
	}
	if v := os.Getenv("ROSTER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// SchedulesDir is where per-employee schedule files are written.
func (c *Config) SchedulesDir() string {
	return filepath.Join(c.OutputDir, "schedules")
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Windows resolves the shift boundaries.
func (c *Config) Windows() (clock.Windows, error) {
	s := c.Shifts
	if s.MorningStart != "" || s.AfternoonStart != "" || s.NightStart != "" {
		return clock.Parse(s.MorningStart, s.AfternoonStart, s.NightStart)
	}
	return clock.Preset(s.Preset)
}

// RuleSet applies the overrides to the built-in rules.
func (c *Config) RuleSet() (parser.Rules, error) {
	rules := parser.DefaultRules()
	rc := c.Rules

	if rc.Version != "" {
		rules.Version = rc.Version
	}
	if len(rc.Weekdays) > 0 {
		if len(rc.Weekdays) != 7 {
			return parser.Rules{}, fmt.Errorf("weekdays: want 7 names, got %d", len(rc.Weekdays))
		}
		copy(rules.Weekdays[:], rc.Weekdays)
	}
	rules.StatusTokens = append(rules.StatusTokens, rc.StatusTokens...)
	for code, sc := range rc.ShiftCodes {
		cat, ok := models.ParseCategory(sc.Category)
		if !ok {
			return parser.Rules{}, fmt.Errorf("shift code %s: unknown category %q", code, sc.Category)
		}
		rules.ShiftTable[strings.ToUpper(code)] = parser.ShiftDef{Label: sc.Label, Category: cat}
	}
	if rc.Scan != nil {
		rules.Scan = *rc.Scan
	}
	return rules, rules.Validate()
}

// Validate checks that every section resolves.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.Windows(); err != nil {
		return err
	}
	if _, err := c.RuleSet(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if len(c.Departments) == 0 {
		return fmt.Errorf("at least one department is required")
	}
	for i, d := range c.Departments {
		if d.Name == "" || d.Sheet == "" {
			return fmt.Errorf("department %d: name and sheet are required", i)
		}
		if d.Range != "" {
			if _, ok := parser.ParseRange(d.Range); !ok {
				return fmt.Errorf("department %s: invalid range %q", d.Name, d.Range)
			}
		}
	}
	return nil
}

// Options converts the configuration into engine options.
func (c *Config) Options() (roster.Options, error) {
	if err := c.Validate(); err != nil {
		return roster.Options{}, err
	}
	windows, _ := c.Windows()
	rules, _ := c.RuleSet()

	opts := roster.Options{
		Rules:   rules,
		Windows: windows,
		Workers: c.Workers,
	}
	for _, d := range c.Departments {
		dept := roster.Department{Name: d.Name, Sheet: d.Sheet, UsePrintArea: d.UsePrintArea}
		if d.Range != "" {
			dept.Area, _ = parser.ParseRange(d.Range)
		}
		opts.Departments = append(opts.Departments, dept)
	}
	return opts, nil
}
