// Package main provides the CLI entry point for roster-go.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/ukaji3/roster-go/internal/config"
	"github.com/ukaji3/roster-go/internal/logging"
	"github.com/ukaji3/roster-go/pkg/roster"
	"github.com/ukaji3/roster-go/pkg/roster/output"
	"go.uber.org/zap"
)

const downloadTimeout = 60 * time.Second

var (
	configPath string
	envFile    string
	verbose    bool
	atFlag     string
	outputPath string
	pretty     bool
	activeOnly bool
	schedDir   string
	monthFlag  string

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Extract daily duty assignments from roster workbooks",
		Long: `roster reads a monthly duty roster workbook (one sheet per department)
and outputs, as JSON, who is on which shift for a given date.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "roster.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&atFlag, "at", "", `Timestamp to extract for (RFC3339 or "2006-01-02 15:04"; default: now)`)
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	todayCmd := &cobra.Command{
		Use:   "today [workbook]",
		Short: "Extract the roster for the current shift's date",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runToday,
	}
	todayCmd.Flags().BoolVar(&activeOnly, "active-only", false, "Only output employees on the active shift")

	monthCmd := &cobra.Command{
		Use:   "month [workbook]",
		Short: "Extract the roster for every day of the effective month",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMonth,
	}

	schedulesCmd := &cobra.Command{
		Use:   "schedules [workbook]",
		Short: "Write per-employee month schedules as <id>.json files plus an index.json",
		Long: `schedules writes one <id>.json file per employee and refreshes index.json.
Without --month it covers the month before the effective date, its month and
the month after.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSchedules,
	}
	schedulesCmd.Flags().StringVar(&schedDir, "dir", "", "Directory for per-employee files (default: <output_dir>/schedules)")
	schedulesCmd.Flags().StringVar(&monthFlag, "month", "", "Single month to process (YYYY-MM)")

	rootCmd.AddCommand(todayCmd, monthCmd, schedulesCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(envFile); err != nil {
		return err
	}
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err = logging.New(cfg.Logging.Level, verbose)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	return nil
}

func runToday(cmd *cobra.Command, args []string) error {
	engine, wb, at, err := prepare(cmd.Context(), args)
	if err != nil {
		return err
	}
	defer wb.Close()

	report, err := engine.Extract(cmd.Context(), wb, at)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Info("Roster extracted",
		zap.String("date", report.EffectiveDate.Format("2006-01-02")),
		zap.String("active_shift", string(report.ActiveShift)),
		zap.Int("employees", report.EmployeesTotal()),
		zap.Int("departments", report.DepartmentsTotal()))

	var data []byte
	if activeOnly {
		data, err = output.ToJSON(report.ActiveRoster(), pretty)
	} else {
		data, err = output.ReportToJSON(report, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(data)
}

func runMonth(cmd *cobra.Command, args []string) error {
	engine, wb, at, err := prepare(cmd.Context(), args)
	if err != nil {
		return err
	}
	defer wb.Close()

	month, err := engine.ExtractMonth(cmd.Context(), wb, at)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Info("Month extracted", zap.String("month", month.Month), zap.Int("days", len(month.Days)))

	data, err := output.MonthToJSON(month, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(data)
}

func runSchedules(cmd *cobra.Command, args []string) error {
	engine, wb, at, err := prepare(cmd.Context(), args)
	if err != nil {
		return err
	}
	defer wb.Close()

	months := roster.AdjacentMonths(engine.EffectiveDate(at))
	if monthFlag != "" {
		month, err := roster.ParseMonth(monthFlag, at.Location())
		if err != nil {
			return err
		}
		months = []time.Time{month}
	}

	dir := schedDir
	if dir == "" {
		dir = cfg.SchedulesDir()
	}
	for _, month := range months {
		schedules, err := engine.Schedules(cmd.Context(), wb, month.Year(), month.Month(), month.Location())
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		n, err := output.WriteSchedules(dir, schedules)
		if err != nil {
			return fmt.Errorf("failed to write schedules: %w", err)
		}
		logger.Info("Schedules written",
			zap.String("month", month.Format("2006-01")),
			zap.String("dir", dir),
			zap.Int("employees", n))
	}

	index, err := output.WriteScheduleIndex(dir, time.Now().In(at.Location()))
	if err != nil {
		return fmt.Errorf("failed to write schedule index: %w", err)
	}
	logger.Info("Schedule index written", zap.Int("employees", index.Total))
	return nil
}

// prepare builds the engine, opens the workbook and resolves the timestamp.
func prepare(ctx context.Context, args []string) (*roster.Engine, *roster.File, time.Time, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	opts.Logger = logger
	engine, err := roster.New(opts)
	if err != nil {
		return nil, nil, time.Time{}, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	at, err := parseAt(atFlag, loc)
	if err != nil {
		return nil, nil, time.Time{}, err
	}

	source := cfg.ExcelPath
	if source == "" {
		source = cfg.ExcelURL
	}
	if len(args) > 0 {
		source = args[0]
	}
	if source == "" {
		return nil, nil, time.Time{}, fmt.Errorf("no workbook given: pass a path or set EXCEL_PATH / EXCEL_URL")
	}

	wb, err := openWorkbook(ctx, source)
	if err != nil {
		return nil, nil, time.Time{}, err
	}
	return engine, wb, at, nil
}

func parseAt(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Now().In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q: want RFC3339 or \"2006-01-02 15:04\"", s)
	}
	return t, nil
}

func openWorkbook(ctx context.Context, source string) (*roster.File, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		logger.Debug("Opening workbook", zap.String("path", source))
		return roster.OpenFile(source)
	}

	logger.Info("Downloading workbook", zap.String("url", source))
	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	name := path.Base(req.URL.Path)
	if ext := path.Ext(name); ext == "" || ext == "." {
		// Export endpoints usually serve xlsx without an extension
		name = "download.xlsx"
	}
	return roster.OpenReader(bytes.NewReader(data), name)
}

func write(data []byte) error {
	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
