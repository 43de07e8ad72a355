package models

// PrintArea represents cell coordinate bounds for a rectangular sheet window.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1" yaml:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1" yaml:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2" yaml:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2" yaml:"c2"`
}

// Empty reports whether the area covers no cells. The zero value is empty.
func (a PrintArea) Empty() bool {
	return a.R1 < 1 || a.C1 < 1 || a.R2 < a.R1 || a.C2 < a.C1
}
