package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B2", "NAME")
	f.SetCellValue(sheetName, "C2", "FRI")
	f.SetCellValue(sheetName, "C3", 16)
	f.SetCellValue(sheetName, "B4", "Ahmed Ali - 1001")
	f.SetCellValue(sheetName, "C4", "MN06")
	f.SetCellValue(sheetName, "D4", 6.5)
	// Blank trailing cells must not widen the grid
	f.SetCellValue(sheetName, "F8", "   ")

	tmpFile := filepath.Join(t.TempDir(), "roster.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	grid, err := LoadSheet(f2, sheetName)
	if err != nil {
		t.Fatalf("LoadSheet failed: %v", err)
	}

	if grid.MaxRow() != 4 {
		t.Errorf("Expected 4 rows, got %d", grid.MaxRow())
	}
	if grid.MaxColumn() != 4 {
		t.Errorf("Expected 4 columns, got %d", grid.MaxColumn())
	}
	if grid.Value(1, 1) != nil {
		t.Errorf("Expected nil for A1, got %v", grid.Value(1, 1))
	}
	if grid.Value(2, 2) != "NAME" {
		t.Errorf("Expected 'NAME', got %v", grid.Value(2, 2))
	}
	if grid.Value(3, 3) != int64(16) {
		t.Errorf("Expected int64(16), got %v (type: %T)", grid.Value(3, 3), grid.Value(3, 3))
	}
	if grid.Value(4, 4) != 6.5 {
		t.Errorf("Expected 6.5, got %v", grid.Value(4, 4))
	}
	if grid.Value(8, 6) != nil {
		t.Errorf("Expected nil past the data bounds, got %v", grid.Value(8, 6))
	}
}

func TestLoadSheetMissing(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := LoadSheet(f, "Officers"); err == nil {
		t.Error("Expected an error for a missing sheet")
	}
}

func TestMatrixFromStringsEmpty(t *testing.T) {
	grid := matrixFromStrings([][]string{{"", " "}, {}})
	if grid.MaxRow() != 0 || grid.MaxColumn() != 0 {
		t.Errorf("Expected an empty grid, got %dx%d", grid.MaxRow(), grid.MaxColumn())
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"MN06", "MN06"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
