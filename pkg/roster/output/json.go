// Package output serializes extraction results to JSON.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// ToJSON encodes v, indenting when pretty is set. HTML characters and
// non-ASCII text (labels carry emoji, names may be Arabic) are left as is.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ReportToJSON encodes a report.
func ReportToJSON(r *models.Report, pretty bool) ([]byte, error) {
	return ToJSON(r, pretty)
}

// MonthToJSON encodes a month roster.
func MonthToJSON(m *models.MonthRoster, pretty bool) ([]byte, error) {
	return ToJSON(m, pretty)
}

// WriteSchedules writes one <id>.json file per employee into dir. An
// existing file's other months are kept; months present in s replace the
// stored ones. Returns the number of files written.
func WriteSchedules(dir string, schedules []models.EmployeeSchedule) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	written := 0
	for _, s := range schedules {
		path := filepath.Join(dir, s.ID+".json")

		merged := models.EmployeeSchedule{ID: s.ID, Schedules: map[string][]models.ScheduleDay{}}
		if data, err := os.ReadFile(path); err == nil {
			// An unreadable file is replaced
			var existing models.EmployeeSchedule
			if json.Unmarshal(data, &existing) == nil && existing.Schedules != nil {
				merged.Schedules = existing.Schedules
			}
		}
		merged.Name = s.Name
		merged.Department = s.Department
		for month, days := range s.Schedules {
			merged.Schedules[month] = days
		}

		data, err := ToJSON(merged, true)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written++
	}
	return written, nil
}

// IndexFile is the name of the schedule index inside a schedules directory.
const IndexFile = "index.json"

// WriteScheduleIndex lists every <id>.json file in dir into dir/index.json,
// sorted by department then name. Files that cannot be read or decoded are
// left out.
func WriteScheduleIndex(dir string, updated time.Time) (*models.ScheduleIndex, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	index := &models.ScheduleIndex{Employees: []models.ScheduleIndexEntry{}, LastUpdated: updated}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == IndexFile || filepath.Ext(name) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		var s models.EmployeeSchedule
		if err := json.Unmarshal(data, &s); err != nil {
			continue
		}
		months := make([]string, 0, len(s.Schedules))
		for month := range s.Schedules {
			months = append(months, month)
		}
		sort.Strings(months)
		index.Employees = append(index.Employees, models.ScheduleIndexEntry{
			ID:         strings.TrimSuffix(name, ".json"),
			Name:       s.Name,
			Department: s.Department,
			Months:     months,
		})
	}
	sort.SliceStable(index.Employees, func(i, j int) bool {
		a, b := index.Employees[i], index.Employees[j]
		if a.Department != b.Department {
			return a.Department < b.Department
		}
		return a.Name < b.Name
	})
	index.Total = len(index.Employees)

	data, err := ToJSON(index, true)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, IndexFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return index, nil
}
