package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// RulesVersion identifies the built-in rule set.
const RulesVersion = "2025.1"

// ShiftDef is a shift table entry.
type ShiftDef struct {
	Label    string          `yaml:"label"`
	Category models.Category `yaml:"category"`
}

// ScanLimits bounds the geometry search windows.
type ScanLimits struct {
	// HeaderRows is how many rows from the top are searched for weekday names.
	HeaderRows int `yaml:"header_rows"`
	// DateLookahead is how many rows below the weekday row may hold dates.
	DateLookahead int `yaml:"date_lookahead"`
	// MinWeekdayTokens is the distinct weekday names a header row needs.
	MinWeekdayTokens int `yaml:"min_weekday_tokens"`
	// MinDateNumbers is the 1..31 cells a date row needs.
	MinDateNumbers int `yaml:"min_date_numbers"`
	// EmployeeRows is how many rows below the date row are scored for names.
	EmployeeRows int `yaml:"employee_rows"`
}

// Rules is the data-only rule set driving classification, mapping and
// geometry location. Treat a Rules value as immutable once handed to a
// constructor; DefaultRules returns a fresh copy each call.
type Rules struct {
	Version string `yaml:"version"`
	// Weekdays are the header abbreviations, Sunday first.
	Weekdays [7]string `yaml:"weekdays"`
	// StatusTokens are short codes accepted as shift codes on exact match.
	StatusTokens []string `yaml:"status_tokens"`
	// StandbyTokens map to Standby on exact match.
	StandbyTokens []string `yaml:"standby_tokens"`
	// ShiftPrefix matches the start of a shift code such as MN06.
	ShiftPrefix string `yaml:"shift_prefix"`
	// Keywords matches leave/rest/training/standby phrases.
	Keywords   string              `yaml:"keywords"`
	ShiftTable map[string]ShiftDef `yaml:"shift_table"`
	Scan       ScanLimits          `yaml:"scan"`
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		Version:       RulesVersion,
		Weekdays:      [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"},
		StatusTokens:  []string{"OFF", "O", "LV", "TR", "ST", "SL", "AL", "STM", "STN", "OT"},
		StandbyTokens: []string{"ST", "STM", "STN"},
		ShiftPrefix:   `^(MN|AN|NN|NT|ME|AE|NE)\d{1,2}`,
		Keywords:      `(ANNUAL\s*LEAVE|SICK\s*LEAVE|REST/OFF\s*DAY|REST|OFF\s*DAY|TRAINING|STANDBY)`,
		ShiftTable: map[string]ShiftDef{
			"MN06": {Label: "🌅 Morning (MN06)", Category: models.Morning},
			"ME06": {Label: "🌅 Morning (ME06)", Category: models.Morning},
			"ME07": {Label: "🌅 Morning (ME07)", Category: models.Morning},
			"MN12": {Label: "🌆 Afternoon (MN12)", Category: models.Afternoon},
			"AN13": {Label: "🌆 Afternoon (AN13)", Category: models.Afternoon},
			"AE14": {Label: "🌆 Afternoon (AE14)", Category: models.Afternoon},
			"NN21": {Label: "🌙 Night (NN21)", Category: models.Night},
			"NE22": {Label: "🌙 Night (NE22)", Category: models.Night},
		},
		Scan: ScanLimits{
			HeaderRows:       80,
			DateLookahead:    3,
			MinWeekdayTokens: 3,
			MinDateNumbers:   5,
			EmployeeRows:     200,
		},
	}
}

// Validate checks that patterns compile and limits are usable.
func (r Rules) Validate() error {
	_, err := r.compile()
	return err
}

// compiled holds the regular expressions and lookup sets derived from Rules.
type compiled struct {
	prefix   *regexp.Regexp
	keywords *regexp.Regexp
	status   map[string]bool
	standby  map[string]bool
	weekdays [7]string
	table    map[string]ShiftDef
	scan     ScanLimits
}

func (r Rules) compile() (*compiled, error) {
	for i, d := range r.Weekdays {
		if strings.TrimSpace(d) == "" {
			return nil, fmt.Errorf("weekday %d is empty", i)
		}
	}
	if r.Scan.HeaderRows <= 0 || r.Scan.DateLookahead <= 0 || r.Scan.EmployeeRows <= 0 {
		return nil, fmt.Errorf("scan limits must be positive: %+v", r.Scan)
	}
	prefix, err := regexp.Compile(r.ShiftPrefix)
	if err != nil {
		return nil, fmt.Errorf("invalid shift prefix pattern: %w", err)
	}
	keywords, err := regexp.Compile(r.Keywords)
	if err != nil {
		return nil, fmt.Errorf("invalid keyword pattern: %w", err)
	}

	c := &compiled{
		prefix:   prefix,
		keywords: keywords,
		status:   upperSet(r.StatusTokens),
		standby:  upperSet(r.StandbyTokens),
		table:    make(map[string]ShiftDef, len(r.ShiftTable)),
		scan:     r.Scan,
	}
	for i, d := range r.Weekdays {
		c.weekdays[i] = strings.ToUpper(strings.TrimSpace(d))
	}
	for code, def := range r.ShiftTable {
		if !def.Category.Valid() {
			return nil, fmt.Errorf("shift %s: unknown category %q", code, def.Category)
		}
		c.table[strings.ToUpper(code)] = def
	}
	return c, nil
}

func upperSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[strings.ToUpper(strings.TrimSpace(t))] = true
	}
	return set
}
