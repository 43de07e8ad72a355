package roster

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input could not be decoded as a workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrUnsupportedFormat indicates a file extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ErrSheetNotFound indicates a configured sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrGeometryNotFound indicates the header geometry of a sheet could not be located.
var ErrGeometryNotFound = errors.New("geometry not found")

// ExtractionError represents a problem scoped to one sheet.
type ExtractionError struct {
	SheetName string
	Component string // "grid", "geometry"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
