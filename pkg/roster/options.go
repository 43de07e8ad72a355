// Package roster extracts per-department duty assignments from roster workbooks.
package roster

import (
	"runtime"

	"github.com/ukaji3/roster-go/pkg/roster/clock"
	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/ukaji3/roster-go/pkg/roster/parser"
	"go.uber.org/zap"
)

// Department binds a department name to the workbook sheet holding its roster.
type Department struct {
	// Name is the department name used in results.
	Name string
	// Sheet is the workbook sheet name.
	Sheet string
	// Area restricts the grid to a window of the sheet. Ignored when empty.
	Area models.PrintArea
	// UsePrintArea restricts the grid to the sheet's first print area, when
	// the workbook defines one and Area is empty.
	UsePrintArea bool
}

// Options configures extraction behavior.
type Options struct {
	// Rules is the classification and geometry rule set.
	Rules parser.Rules
	// Windows are the shift boundaries used for the active shift and date rollover.
	Windows clock.Windows
	// Departments are read in order.
	Departments []Department
	// Workers bounds how many departments are processed concurrently.
	// Zero or less means GOMAXPROCS.
	Workers int
	// Logger receives skip warnings. Nil disables logging.
	Logger *zap.Logger
}

// DefaultDepartments returns the sheets of the standard cargo roster workbook.
func DefaultDepartments() []Department {
	names := []string{"Officers", "Supervisors", "Load Control", "Export Checker", "Export Operators"}
	deps := make([]Department, len(names))
	for i, n := range names {
		deps[i] = Department{Name: n, Sheet: n}
	}
	return deps
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Rules:       parser.DefaultRules(),
		Windows:     clock.Default(),
		Departments: DefaultDepartments(),
	}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
