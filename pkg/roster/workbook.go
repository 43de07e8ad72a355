package roster

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/ukaji3/roster-go/pkg/roster/parser"
	"github.com/xuri/excelize/v2"
)

// Workbook supplies parsed sheet grids to the engine.
type Workbook interface {
	SheetList() []string
	Grid(sheet string) (models.Grid, error)
}

// printAreaSource is implemented by workbooks that know their print areas.
type printAreaSource interface {
	PrintAreas(sheet string) []models.PrintArea
}

// File is a Workbook backed by an .xlsx or legacy .xls file.
type File struct {
	xlsx       *excelize.File
	xls        *xls.WorkBook
	printAreas map[string][]models.PrintArea
}

// OpenFile opens a workbook, choosing the reader by file extension.
func OpenFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return OpenReader(bytes.NewReader(data), filepath.Base(path))
}

// OpenReader decodes a workbook from r. name supplies the extension.
func OpenReader(r io.Reader, name string) (*File, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", "":
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return &File{xlsx: f, printAreas: parser.ExtractPrintAreas(f)}, nil
	case ".xls":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return &File{xls: wb}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
}

// SheetList returns sheet names in workbook order.
func (f *File) SheetList() []string {
	if f.xlsx != nil {
		return f.xlsx.GetSheetList()
	}
	return parser.XLSSheetList(f.xls)
}

// Grid parses one sheet.
func (f *File) Grid(sheet string) (models.Grid, error) {
	if f.xlsx != nil {
		return parser.LoadSheet(f.xlsx, sheet)
	}
	return parser.LoadXLSSheet(f.xls, sheet)
}

// PrintAreas returns the print areas defined for sheet, if any.
func (f *File) PrintAreas(sheet string) []models.PrintArea {
	return f.printAreas[sheet]
}

// Close releases the underlying reader.
func (f *File) Close() error {
	if f.xlsx != nil {
		return f.xlsx.Close()
	}
	return nil
}

// Sheets is an in-memory Workbook for grids parsed elsewhere.
type Sheets struct {
	names []string
	grids map[string]models.Grid
}

// NewSheets creates an empty in-memory workbook.
func NewSheets() *Sheets {
	return &Sheets{grids: make(map[string]models.Grid)}
}

// Add registers a grid under name, replacing any previous one.
func (s *Sheets) Add(name string, g models.Grid) *Sheets {
	if _, ok := s.grids[name]; !ok {
		s.names = append(s.names, name)
	}
	s.grids[name] = g
	return s
}

// SheetList returns sheet names in insertion order.
func (s *Sheets) SheetList() []string {
	return append([]string(nil), s.names...)
}

// Grid returns the named grid.
func (s *Sheets) Grid(sheet string) (models.Grid, error) {
	g, ok := s.grids[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	return g, nil
}
