package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	timeRangeRe  = regexp.MustCompile(`^\d{3,4}\s*H?\s*-\s*\d{3,4}\s*H?$`)
	timeSuffixRe = regexp.MustCompile(`^\d{3,4}\s*H$`)
	timeBareRe   = regexp.MustCompile(`^\d{3,4}$`)
	nameIDRe     = regexp.MustCompile(`-\s*\d{3,}`)
	letterRe     = regexp.MustCompile(`[A-Za-z\x{0600}-\x{06FF}]`)
	dateNumberRe = regexp.MustCompile(`^\d{1,2}(\.0)?$`)
)

// Classifier decides what a cell's text denotes. Safe for concurrent use.
type Classifier struct {
	rules *compiled
}

// NewClassifier compiles rules into a Classifier.
func NewClassifier(rules Rules) (*Classifier, error) {
	c, err := rules.compile()
	if err != nil {
		return nil, err
	}
	return &Classifier{rules: c}, nil
}

// IsTimeLike reports whether s is an "HHMM" or "HHMM-HHMM" value, optionally H-suffixed.
func IsTimeLike(s string) bool {
	up := strings.ToUpper(Normalize(s))
	return timeRangeRe.MatchString(up) || timeSuffixRe.MatchString(up) || timeBareRe.MatchString(up)
}

// IsDateNumber reports whether s is a day-of-month number in [1, 31].
func IsDateNumber(s string) bool {
	_, ok := DateNumber(s)
	return ok
}

// DateNumber parses s as a day-of-month number in [1, 31].
func DateNumber(s string) (int, bool) {
	v := Normalize(s)
	if !dateNumberRe.MatchString(v) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(v, ".0"))
	if err != nil || n < 1 || n > 31 {
		return 0, false
	}
	return n, true
}

// IsEmployeeName reports whether s plausibly names an employee.
// The "Name - 1234" pattern is checked before the two-token fallback.
// Anything IsShiftCode accepts is rejected.
func (c *Classifier) IsEmployeeName(s string) bool {
	v := Normalize(s)
	if v == "" {
		return false
	}
	up := strings.ToUpper(v)
	if IsTimeLike(up) || c.rules.keywords.MatchString(up) {
		return false
	}
	if c.isStatus(up) || c.rules.prefix.MatchString(up) {
		return false
	}
	if !letterRe.MatchString(v) {
		return false
	}
	if nameIDRe.MatchString(v) {
		return true
	}
	return len(strings.Fields(v)) >= 2
}

// IsShiftCode reports whether s plausibly is a shift or status code.
func (c *Classifier) IsShiftCode(s string) bool {
	up := strings.ToUpper(Normalize(s))
	if up == "" || IsTimeLike(up) {
		return false
	}
	if c.isStatus(up) {
		return true
	}
	return c.rules.prefix.MatchString(up) || c.rules.keywords.MatchString(up)
}

func (c *Classifier) isStatus(up string) bool {
	if c.rules.status[up] {
		return true
	}
	_, ok := c.rules.standbyShift(up)
	return ok
}
