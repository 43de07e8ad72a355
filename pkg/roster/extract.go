package roster

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/ukaji3/roster-go/pkg/roster/parser"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

// Engine extracts rosters from workbooks. It is immutable after New and
// safe for concurrent use.
type Engine struct {
	opts    Options
	locator *parser.Locator
	builder *parser.Builder
	log     *zap.Logger
}

// New compiles opts into an Engine.
func New(opts Options) (*Engine, error) {
	if err := opts.Windows.Validate(); err != nil {
		return nil, err
	}
	locator, err := parser.NewLocator(opts.Rules)
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	builder, err := parser.NewBuilder(opts.Rules)
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	opts.Departments = append([]Department(nil), opts.Departments...)
	return &Engine{
		opts:    opts,
		locator: locator,
		builder: builder,
		log:     opts.logger(),
	}, nil
}

// Extract builds the roster for the shift running at at. Departments whose
// sheet is missing or whose geometry cannot be located get an empty bucket.
// Only cancellation returns an error.
func (e *Engine) Extract(ctx context.Context, wb Workbook, at time.Time) (*models.Report, error) {
	sheets, err := e.loadSheets(ctx, wb)
	if err != nil {
		return nil, err
	}

	date := e.opts.Windows.EffectiveDate(at)
	departments, err := e.rosters(ctx, sheets, date, zapcore.WarnLevel)
	if err != nil {
		return nil, err
	}

	return &models.Report{
		Timestamp:     at,
		ActiveShift:   e.opts.Windows.ActiveShift(at),
		EffectiveDate: date,
		Departments:   departments,
	}, nil
}

// ExtractMonth builds a DayRoster for every day of the effective date's month.
func (e *Engine) ExtractMonth(ctx context.Context, wb Workbook, at time.Time) (*models.MonthRoster, error) {
	sheets, err := e.loadSheets(ctx, wb)
	if err != nil {
		return nil, err
	}

	date := e.opts.Windows.EffectiveDate(at)
	month := &models.MonthRoster{
		Month:        date.Format("2006-01"),
		DefaultDay:   date.Format("2006-01-02"),
		CurrentShift: e.opts.Windows.ActiveShift(at),
		GeneratedAt:  at,
		Days:         make(map[string]models.DayRoster),
	}

	first := date.AddDate(0, 0, 1-date.Day())
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		departments, err := e.rosters(ctx, sheets, d, zapcore.DebugLevel)
		if err != nil {
			return nil, err
		}
		day := models.Report{Departments: departments}
		month.Days[d.Format("2006-01-02")] = models.DayRoster{
			Departments:      departments,
			EmployeesTotal:   day.EmployeesTotal(),
			DepartmentsTotal: day.DepartmentsTotal(),
		}
	}
	return month, nil
}

// Schedules builds per-employee schedules for a month, keyed by the ID of
// "Name - ID" cells. Employees appearing in several sheets keep the last
// department read. Results are sorted by ID.
func (e *Engine) Schedules(ctx context.Context, wb Workbook, year int, month time.Month, loc *time.Location) ([]models.EmployeeSchedule, error) {
	sheets, err := e.loadSheets(ctx, wb)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)

	perSheet := make([][]models.EmployeeSchedule, len(sheets))
	err = e.each(ctx, sheets, func(i int, s sheetGrid) {
		if s.grid == nil {
			return
		}
		header, ok := e.locator.HeaderRow(s.grid)
		if !ok {
			return
		}
		dateRow, ok := e.locator.DateRow(s.grid, header)
		if !ok {
			return
		}
		empCol, ok := e.locator.EmployeeColumn(s.grid, dateRow+1)
		if !ok {
			return
		}
		geom := models.Geometry{HeaderRow: header, DateRow: dateRow, EmployeeColumn: empCol}
		days := e.locator.DayColumns(s.grid, header, dateRow, first)
		perSheet[i] = e.builder.Schedules(s.grid, geom, days, first, s.dept.Name)
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.EmployeeSchedule)
	for _, schedules := range perSheet {
		for _, s := range schedules {
			cur, ok := byID[s.ID]
			if !ok {
				s := s
				byID[s.ID] = &s
				continue
			}
			cur.Name = s.Name
			cur.Department = s.Department
			for k, v := range s.Schedules {
				cur.Schedules[k] = v
			}
		}
	}

	out := make([]models.EmployeeSchedule, 0, len(byID))
	for _, s := range byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// sheetGrid is a department with its loaded grid, or the reason it has none.
type sheetGrid struct {
	dept    Department
	grid    models.Grid
	skipped error
}

// loadSheets reads every department grid up front. Workbook readers are
// not assumed to be safe for concurrent use.
func (e *Engine) loadSheets(ctx context.Context, wb Workbook) ([]sheetGrid, error) {
	present := make(map[string]bool)
	for _, name := range wb.SheetList() {
		present[name] = true
	}
	areas, _ := wb.(printAreaSource)

	sheets := make([]sheetGrid, len(e.opts.Departments))
	for i, dept := range e.opts.Departments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sheets[i].dept = dept

		if !present[dept.Sheet] {
			sheets[i].skipped = NewExtractionError(dept.Sheet, "grid", ErrSheetNotFound)
			e.log.Warn("Sheet not found",
				zap.String("department", dept.Name),
				zap.String("sheet", dept.Sheet))
			continue
		}
		grid, err := wb.Grid(dept.Sheet)
		if err != nil {
			// Continue with an empty department
			sheets[i].skipped = NewExtractionError(dept.Sheet, "grid", err)
			e.log.Warn("Failed to read sheet",
				zap.String("department", dept.Name),
				zap.String("sheet", dept.Sheet),
				zap.Error(err))
			continue
		}

		area := dept.Area
		if area.Empty() && dept.UsePrintArea && areas != nil {
			if pa := areas.PrintAreas(dept.Sheet); len(pa) > 0 {
				area = pa[0]
			}
		}
		sheets[i].grid = models.Clip(grid, area)
	}
	return sheets, nil
}

// rosters resolves every department for date. Each worker writes only its
// own slot; results keep department order.
func (e *Engine) rosters(ctx context.Context, sheets []sheetGrid, date time.Time, skipLevel zapcore.Level) ([]models.DepartmentRoster, error) {
	out := make([]models.DepartmentRoster, len(sheets))
	err := e.each(ctx, sheets, func(i int, s sheetGrid) {
		out[i] = e.department(s, date, skipLevel)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) each(ctx context.Context, sheets []sheetGrid, fn func(int, sheetGrid)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.workers())
	for i, s := range sheets {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i, s)
			return nil
		})
	}
	return g.Wait()
}

func (e *Engine) department(s sheetGrid, date time.Time, skipLevel zapcore.Level) models.DepartmentRoster {
	r := models.DepartmentRoster{
		Department: s.dept.Name,
		Sheet:      s.dept.Sheet,
		Buckets:    models.NewBucket(),
	}
	if s.grid == nil {
		if s.skipped != nil {
			r.Skipped = s.skipped.Error()
		}
		return r
	}

	r.Geometry = e.locator.Locate(s.grid, date)
	if !r.Geometry.Complete() {
		missing := r.Geometry.Missing()
		err := NewExtractionError(s.dept.Sheet, "geometry",
			fmt.Errorf("%w: missing %s", ErrGeometryNotFound, strings.Join(missing, ", ")))
		r.Skipped = err.Error()
		if ce := e.log.Check(skipLevel, "Skipping department"); ce != nil {
			ce.Write(
				zap.String("department", s.dept.Name),
				zap.String("date", date.Format("2006-01-02")),
				zap.Strings("missing", missing))
		}
		return r
	}

	r.Buckets = e.builder.Build(s.grid, r.Geometry)
	return r
}
