package models

import "time"

// Report is the extraction result for one timestamp across all departments.
type Report struct {
	// Timestamp is the instant the roster was extracted for.
	Timestamp time.Time `json:"timestamp"`
	// ActiveShift is the shift running at Timestamp.
	ActiveShift Category `json:"active_shift"`
	// EffectiveDate is the roster date read (midnight, Timestamp's location).
	EffectiveDate time.Time `json:"effective_date"`
	// Departments keeps configuration order.
	Departments []DepartmentRoster `json:"departments"`
}

// Buckets returns the department name to bucket mapping.
func (r *Report) Buckets() map[string]Bucket {
	out := make(map[string]Bucket, len(r.Departments))
	for _, d := range r.Departments {
		out[d.Department] = d.Buckets
	}
	return out
}

// EmployeesTotal counts entries across every department.
func (r *Report) EmployeesTotal() int {
	n := 0
	for _, d := range r.Departments {
		n += d.Buckets.Total()
	}
	return n
}

// DepartmentsTotal counts departments whose sheet could be read.
func (r *Report) DepartmentsTotal() int {
	n := 0
	for _, d := range r.Departments {
		if d.Skipped == "" {
			n++
		}
	}
	return n
}

// ActiveDepartment lists the entries of one department on the active shift.
type ActiveDepartment struct {
	Department string  `json:"department"`
	Entries    []Entry `json:"entries"`
}

// ActiveRoster returns only the active shift's entries, omitting departments
// with nobody on that shift.
func (r *Report) ActiveRoster() []ActiveDepartment {
	var out []ActiveDepartment
	for _, d := range r.Departments {
		entries := d.Buckets[r.ActiveShift]
		if len(entries) == 0 {
			continue
		}
		out = append(out, ActiveDepartment{Department: d.Department, Entries: entries})
	}
	return out
}

// DayRoster is the roster of every department for one day.
type DayRoster struct {
	Departments      []DepartmentRoster `json:"departments"`
	EmployeesTotal   int                `json:"employees_total"`
	DepartmentsTotal int                `json:"departments_total"`
}

// MonthRoster holds one DayRoster per day of a month, keyed by "2006-01-02".
type MonthRoster struct {
	// Month is formatted "2006-01".
	Month string `json:"month"`
	// DefaultDay is the effective date the month was built around.
	DefaultDay   string               `json:"default_day"`
	CurrentShift Category             `json:"current_shift"`
	GeneratedAt  time.Time            `json:"generated_at"`
	Days         map[string]DayRoster `json:"days"`
}
