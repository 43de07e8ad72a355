package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// Labels for the status codes resolved ahead of the shift table.
const (
	LabelNone        = "-"
	LabelAnnualLeave = "✈️ Annual Leave"
	LabelSickLeave   = "🤒 Sick Leave"
	LabelLeave       = "🏖️ Leave"
	LabelTraining    = "📚 Training"
	LabelStandby     = "🧍 Standby"
	LabelOvertime    = "⏱️ Overtime"
	LabelOffDay      = "🛌 Off Day"
)

var restRe = regexp.MustCompile(`(REST|OFF\s*DAY|REST/OFF)`)

// Mapper resolves shift codes to a display label and category.
// Safe for concurrent use.
type Mapper struct {
	rules *compiled
}

// NewMapper compiles rules into a Mapper.
func NewMapper(rules Rules) (*Mapper, error) {
	c, err := rules.compile()
	if err != nil {
		return nil, err
	}
	return &Mapper{rules: c}, nil
}

// Map returns the label and category for code. The first matching rule
// wins; keyword phrases are checked before the shift table. Unknown codes
// keep their normalized text as the label under Other.
func (m *Mapper) Map(code string) (string, models.Category) {
	c0 := Normalize(code)
	c := strings.ToUpper(c0)

	switch {
	case c == "" || c == "0":
		return LabelNone, models.Other
	case c == "AL" || strings.Contains(c, "ANNUAL LEAVE"):
		return LabelAnnualLeave, models.Leave
	case c == "SL" || strings.Contains(c, "SICK LEAVE"):
		return LabelSickLeave, models.Leave
	case c == "LV":
		return LabelLeave, models.Leave
	case c == "TR" || strings.Contains(c, "TRAINING"):
		return LabelTraining, models.Training
	case m.rules.standby[c] || strings.Contains(c, "STANDBY"):
		return LabelStandby, models.Standby
	}

	if inner, ok := m.rules.standbyShift(c); ok {
		return LabelStandby + " (" + inner + ")", models.Standby
	}
	if c == "OT" {
		return LabelOvertime + " (OT)", models.Standby
	}
	if c == "OFF" || c == "O" || restRe.MatchString(c) {
		return LabelOffDay, models.OffDay
	}
	if def, ok := m.rules.table[c]; ok {
		return def.Label, def.Category
	}
	return c0, models.Other
}

// standbyShift reports whether up is a standby token glued to a table code,
// such as STME06, and returns the table code.
func (c *compiled) standbyShift(up string) (string, bool) {
	if !strings.HasPrefix(up, "ST") {
		return "", false
	}
	inner := strings.TrimPrefix(up, "ST")
	if _, ok := c.table[inner]; ok {
		return inner, true
	}
	return "", false
}
