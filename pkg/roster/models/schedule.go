package models

import "time"

// ScheduleDay is one day of an employee's month schedule.
type ScheduleDay struct {
	Date       string   `json:"date"`
	Day        int      `json:"day"`
	Weekday    string   `json:"weekday"`
	ShiftCode  string   `json:"shift_code"`
	ShiftLabel string   `json:"shift_label"`
	ShiftGroup Category `json:"shift_group"`
}

// EmployeeSchedule is the per-employee view across months.
type EmployeeSchedule struct {
	// ID is the trailing number of a "Name - ID" cell.
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	// Schedules maps "2006-01" to that month's days in date order.
	Schedules map[string][]ScheduleDay `json:"schedules"`
}

// ScheduleIndexEntry lists one employee file and the months it holds.
type ScheduleIndexEntry struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Months     []string `json:"months"`
}

// ScheduleIndex is the index.json written next to the employee files.
type ScheduleIndex struct {
	Total       int                  `json:"total"`
	Employees   []ScheduleIndexEntry `json:"employees"`
	LastUpdated time.Time            `json:"last_updated"`
}
