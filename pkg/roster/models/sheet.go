package models

// Geometry locates headers and data regions within a sheet.
// A zero field means the locator could not find it.
type Geometry struct {
	// HeaderRow is the row holding weekday names (1-based).
	HeaderRow int `json:"header_row,omitempty"`
	// DateRow is the row holding day-of-month numbers (1-based).
	DateRow int `json:"date_row,omitempty"`
	// TodayColumn is the column for the extraction date (1-based).
	TodayColumn int `json:"today_column,omitempty"`
	// EmployeeColumn is the column holding employee names (1-based).
	EmployeeColumn int `json:"employee_column,omitempty"`
}

// Complete reports whether every field was located.
func (g Geometry) Complete() bool {
	return g.HeaderRow > 0 && g.DateRow > 0 && g.TodayColumn > 0 && g.EmployeeColumn > 0
}

// Missing returns the names of fields that were not located.
func (g Geometry) Missing() []string {
	var missing []string
	if g.HeaderRow <= 0 {
		missing = append(missing, "header_row")
	}
	if g.DateRow <= 0 {
		missing = append(missing, "date_row")
	}
	if g.TodayColumn <= 0 {
		missing = append(missing, "today_column")
	}
	if g.EmployeeColumn <= 0 {
		missing = append(missing, "employee_column")
	}
	return missing
}

// DepartmentRoster is the extraction result for one department sheet.
type DepartmentRoster struct {
	// Department is the configured department name.
	Department string `json:"department"`
	// Sheet is the workbook sheet the department was read from.
	Sheet string `json:"sheet"`
	// Geometry is what the locator resolved, possibly partial.
	Geometry Geometry `json:"geometry"`
	// Buckets holds entries per category. Never nil.
	Buckets Bucket `json:"buckets"`
	// Skipped explains why no entries were read (empty when the sheet was read).
	Skipped string `json:"skipped,omitempty"`
}
