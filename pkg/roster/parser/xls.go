package parser

import (
	"fmt"

	"github.com/extrame/xls"
	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// XLSSheetList returns the sheet names of a legacy workbook in order.
func XLSSheetList(wb *xls.WorkBook) []string {
	names := make([]string, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		if sheet := wb.GetSheet(i); sheet != nil {
			names = append(names, sheet.Name)
		}
	}
	return names
}

// LoadXLSSheet reads a legacy .xls sheet into a Matrix, the same way
// LoadSheet does for .xlsx.
func LoadXLSSheet(wb *xls.WorkBook, sheetName string) (*models.Matrix, error) {
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil || sheet.Name != sheetName {
			continue
		}
		rows := xlsRows(int(sheet.MaxRow), func(r int) xlsRow {
			if row := sheet.Row(r); row != nil {
				return row
			}
			return nil
		})
		return matrixFromStrings(rows), nil
	}
	return nil, fmt.Errorf("sheet %q does not exist", sheetName)
}

// xlsRow is the part of *xls.Row a sheet copy reads.
type xlsRow interface {
	FirstCol() int
	LastCol() int
	Col(i int) string
}

// xlsRows copies rows 0..maxRow into string rows. Cells left of FirstCol
// stay empty so column positions are preserved; LastCol is exclusive.
func xlsRows(maxRow int, row func(int) xlsRow) [][]string {
	rows := make([][]string, 0, maxRow+1)
	for r := 0; r <= maxRow; r++ {
		xr := row(r)
		if xr == nil {
			rows = append(rows, nil)
			continue
		}
		cols := make([]string, max(xr.LastCol(), 0))
		for c := max(xr.FirstCol(), 0); c < len(cols); c++ {
			cols[c] = xr.Col(c)
		}
		rows = append(rows, cols)
	}
	return rows
}
