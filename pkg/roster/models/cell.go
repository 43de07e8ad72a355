// Package models defines data structures for duty roster extraction.
package models

// Grid is a read-only, 1-indexed view over a parsed sheet.
// Value returns nil for empty or out-of-range cells. MinRow is the first
// row the view covers; rows above it always read as empty.
type Grid interface {
	MinRow() int
	MaxRow() int
	MaxColumn() int
	Value(row, col int) any
}

// Matrix is an in-memory Grid built from parsed sheet rows.
type Matrix struct {
	rows   [][]any
	maxCol int
}

// NewMatrix creates a Matrix from 0-indexed rows of cell values.
// Rows may be ragged; MaxColumn is the widest row.
func NewMatrix(rows [][]any) *Matrix {
	m := &Matrix{rows: rows}
	for _, row := range rows {
		if len(row) > m.maxCol {
			m.maxCol = len(row)
		}
	}
	return m
}

// MinRow is always 1 for a Matrix.
func (m *Matrix) MinRow() int {
	return 1
}

// MaxRow returns the number of rows (1-based last row index).
func (m *Matrix) MaxRow() int {
	return len(m.rows)
}

// MaxColumn returns the widest row length (1-based last column index).
func (m *Matrix) MaxColumn() int {
	return m.maxCol
}

// Value returns the cell value at (row, col), both 1-based.
func (m *Matrix) Value(row, col int) any {
	if row < 1 || row > len(m.rows) {
		return nil
	}
	r := m.rows[row-1]
	if col < 1 || col > len(r) {
		return nil
	}
	return r[col-1]
}

// Clip returns a view of g restricted to area. Coordinates stay absolute;
// cells outside area read as empty. An empty area returns g unchanged.
func Clip(g Grid, area PrintArea) Grid {
	if area.Empty() {
		return g
	}
	return &window{grid: g, area: area}
}

type window struct {
	grid Grid
	area PrintArea
}

func (w *window) MinRow() int {
	return w.area.R1
}

func (w *window) MaxRow() int {
	return min(w.area.R2, w.grid.MaxRow())
}

func (w *window) MaxColumn() int {
	return min(w.area.C2, w.grid.MaxColumn())
}

func (w *window) Value(row, col int) any {
	if row < w.area.R1 || row > w.MaxRow() || col < w.area.C1 || col > w.MaxColumn() {
		return nil
	}
	return w.grid.Value(row, col)
}
