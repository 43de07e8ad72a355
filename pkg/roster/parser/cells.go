package parser

import (
	"strconv"

	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/xuri/excelize/v2"
)

// LoadSheet reads a sheet's formatted cell values into a Matrix.
// Trailing empty rows and columns are dropped so MaxRow and MaxColumn
// reflect real content; leading ones are kept to preserve coordinates.
func LoadSheet(f *excelize.File, sheetName string) (*models.Matrix, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return matrixFromStrings(rows), nil
}

func matrixFromStrings(rows [][]string) *models.Matrix {
	_, maxRow, _, maxCol := findDataBounds(rows)
	if maxRow < 0 {
		return models.NewMatrix(nil)
	}

	result := make([][]any, maxRow+1)
	for rowIdx := 0; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		width := min(len(row), maxCol+1)
		cells := make([]any, width)
		for colIdx := 0; colIdx < width; colIdx++ {
			if row[colIdx] == "" {
				continue
			}
			cells[colIdx] = parseValue(row[colIdx])
		}
		result[rowIdx] = cells
	}
	return models.NewMatrix(result)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
