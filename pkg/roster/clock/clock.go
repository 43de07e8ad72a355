// Package clock derives the active shift and the roster date from a timestamp.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// Windows are shift start boundaries in minutes after midnight.
// Morning runs [MorningStart, AfternoonStart), Afternoon runs
// [AfternoonStart, NightStart), and Night covers the rest, wrapping
// past midnight.
type Windows struct {
	MorningStart   int
	AfternoonStart int
	NightStart     int
}

// Default is 06:00 / 14:00 / 21:00.
func Default() Windows {
	return Windows{MorningStart: 6 * 60, AfternoonStart: 14 * 60, NightStart: 21 * 60}
}

// Extended keeps the afternoon until 22:00.
func Extended() Windows {
	return Windows{MorningStart: 6 * 60, AfternoonStart: 14 * 60, NightStart: 22 * 60}
}

// Early starts the morning at 05:00.
func Early() Windows {
	return Windows{MorningStart: 5 * 60, AfternoonStart: 14 * 60, NightStart: 21 * 60}
}

// Preset returns the named windows: "default", "extended" or "early".
func Preset(name string) (Windows, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return Default(), nil
	case "extended":
		return Extended(), nil
	case "early":
		return Early(), nil
	}
	return Windows{}, fmt.Errorf("unknown shift window preset %q", name)
}

// Parse builds Windows from "HH:MM" boundaries.
func Parse(morning, afternoon, night string) (Windows, error) {
	var w Windows
	var err error
	if w.MorningStart, err = parseClock(morning); err != nil {
		return Windows{}, err
	}
	if w.AfternoonStart, err = parseClock(afternoon); err != nil {
		return Windows{}, err
	}
	if w.NightStart, err = parseClock(night); err != nil {
		return Windows{}, err
	}
	return w, w.Validate()
}

func parseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour*60 + minute, nil
}

// Validate requires 0 < MorningStart < AfternoonStart < NightStart < 24h.
func (w Windows) Validate() error {
	if w.MorningStart <= 0 || w.MorningStart >= w.AfternoonStart ||
		w.AfternoonStart >= w.NightStart || w.NightStart >= 24*60 {
		return fmt.Errorf("shift windows must be increasing within the day: %s", w)
	}
	return nil
}

func (w Windows) String() string {
	f := func(m int) string { return fmt.Sprintf("%02d:%02d", m/60, m%60) }
	return f(w.MorningStart) + "/" + f(w.AfternoonStart) + "/" + f(w.NightStart)
}

// ActiveShift returns the shift running at t, in t's location.
func (w Windows) ActiveShift(t time.Time) models.Category {
	m := t.Hour()*60 + t.Minute()
	switch {
	case m >= w.MorningStart && m < w.AfternoonStart:
		return models.Morning
	case m >= w.AfternoonStart && m < w.NightStart:
		return models.Afternoon
	}
	return models.Night
}

// EffectiveDate returns the roster date for t at midnight in t's location.
// A night shift is keyed to the day it started, so between midnight and
// MorningStart the previous day is returned.
func (w Windows) EffectiveDate(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	m := t.Hour()*60 + t.Minute()
	if w.ActiveShift(t) == models.Night && m < w.MorningStart {
		return day.AddDate(0, 0, -1)
	}
	return day
}
