// Package cli wires the loan calculator into a cobra command tree.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rustyeddy/carloan/config"
	"github.com/rustyeddy/carloan/internal/logging"
	"github.com/rustyeddy/carloan/journal"
	"github.com/rustyeddy/carloan/loan"
	"github.com/spf13/cobra"
)

// App is the state shared by every sub-command: persistent flag values,
// the resolved config and the lazily opened journal.
type App struct {
	ConfigPath string
	Strict     bool
	JSON       bool

	LogLevel  string
	LogFormat string

	JournalType string
	JournalCSV  string
	JournalDB   string

	Principal          float64
	Rate               float64
	TenureMonths       int
	TenureYears        int
	VehiclePrice       float64
	DownPaymentPercent float64

	cfg     *config.Config
	log     *slog.Logger
	journal journal.Journal
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "carloan",
		Short: "Car-loan EMI, prepayment and affordability calculator",
		Long: `carloan computes the EMI of a car loan and what-if scenarios on it:

  - EMI, total payment and total interest
  - Lump-sum prepayment (reduce tenure or reduce EMI)
  - Step-up EMI and shorter-tenure plans
  - Month-by-month amortization with recurring prepayments
  - Affordability against monthly income

Every calculation reads the loan from --config and the loan flags, and can
be journaled to CSV or SQLite.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&app.ConfigPath, "config", "c", "", "path to config file (YAML or JSON)")
	pf.BoolVar(&app.Strict, "strict", false, "reject invalid inputs instead of degrading to zero")
	pf.BoolVar(&app.JSON, "json", false, "print results as JSON")
	pf.StringVar(&app.LogLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&app.LogFormat, "log-format", "", "log format: text|json")
	pf.StringVar(&app.JournalType, "journal", "", "journal scenarios to: none|csv|sqlite")
	pf.StringVar(&app.JournalCSV, "journal-csv", "", "CSV journal path")
	pf.StringVar(&app.JournalDB, "db", "", "SQLite journal path")

	pf.Float64VarP(&app.Principal, "principal", "p", 0, "loan amount")
	pf.Float64VarP(&app.Rate, "rate", "r", 0, "annual interest rate in percent")
	pf.IntVarP(&app.TenureMonths, "tenure", "t", 0, "tenure in months")
	pf.IntVar(&app.TenureYears, "years", 0, "tenure in years (overrides --tenure)")
	pf.Float64Var(&app.VehiclePrice, "price", 0, "vehicle price, financed after --down")
	pf.Float64Var(&app.DownPaymentPercent, "down", 0, "down payment as a percent of --price")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.teardown()
	}

	cmd.AddCommand(
		newEMICmd(app),
		newPrepayCmd(app),
		newStepUpCmd(app),
		newShortenCmd(app),
		newScheduleCmd(app),
		newAffordCmd(app),
		newConfigCmd(app),
		newJournalCmd(app),
		newVersionCmd(),
	)

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *App) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.ConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(a.ConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("principal") {
		cfg.Loan.Principal = a.Principal
	}
	if flags.Changed("price") {
		cfg.Loan.VehiclePrice = a.VehiclePrice
		if !flags.Changed("principal") {
			cfg.Loan.Principal = 0
		}
	}
	if flags.Changed("down") {
		cfg.Loan.DownPaymentPercent = a.DownPaymentPercent
	}
	if flags.Changed("rate") {
		cfg.Loan.AnnualRatePercent = a.Rate
	}
	if flags.Changed("tenure") {
		cfg.Loan.TenureMonths = a.TenureMonths
	}
	if flags.Changed("years") {
		cfg.Loan.TenureMonths = a.TenureYears * 12
	}
	if a.LogLevel != "" {
		cfg.Log.Level = a.LogLevel
	}
	if a.LogFormat != "" {
		cfg.Log.Format = a.LogFormat
	}
	if a.JournalType != "" {
		cfg.Journal.Type = a.JournalType
	}
	if a.JournalCSV != "" {
		cfg.Journal.CSVFile = a.JournalCSV
	}
	if a.JournalDB != "" {
		cfg.Journal.DBPath = a.JournalDB
	}

	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), cfg.Log)
	a.log.Debug("command start", "cmd", cmd.CommandPath(), "config", a.ConfigPath, "strict", a.Strict)
	return nil
}

func (a *App) teardown() error {
	if a.journal == nil {
		return nil
	}
	err := a.journal.Close()
	a.journal = nil
	if err != nil {
		return fmt.Errorf("close journal: %w", err)
	}
	return nil
}

// Terms are the loan terms after config and flags are applied.
func (a *App) Terms() loan.Terms {
	return a.cfg.Terms()
}

// state is the loan after monthsPaid installments.
func (a *App) state(monthsPaid int) (loan.State, error) {
	t := a.Terms()
	if a.Strict {
		if err := loan.ValidateTerms(t); err != nil {
			return loan.State{}, err
		}
		if monthsPaid < 0 || monthsPaid >= t.TenureMonths {
			return loan.State{}, fmt.Errorf("--after must be between 0 and %d", t.TenureMonths-1)
		}
	}
	return loan.StateAfter(t, monthsPaid), nil
}

func (a *App) openJournal() (journal.Journal, error) {
	if a.journal != nil {
		return a.journal, nil
	}

	var (
		j   journal.Journal
		err error
	)
	switch a.cfg.Journal.Type {
	case "", "none":
		j = journal.Nop{}
	case "csv":
		if a.cfg.Journal.CSVFile == "" {
			return nil, fmt.Errorf("csv journal needs --journal-csv")
		}
		j, err = journal.NewCSV(a.cfg.Journal.CSVFile)
	case "sqlite":
		if a.cfg.Journal.DBPath == "" {
			return nil, fmt.Errorf("sqlite journal needs --db")
		}
		j, err = journal.NewSQLite(a.cfg.Journal.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", a.cfg.Journal.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s journal: %w", a.cfg.Journal.Type, err)
	}

	a.log.Debug("journal opened", "type", a.cfg.Journal.Type)
	a.journal = j
	return j, nil
}

func (a *App) record(rec journal.ScenarioRecord) error {
	a.log.Debug("scenario computed", "kind", rec.Kind, "emi", rec.EMI, "interest_saved", rec.InterestSaved)

	j, err := a.openJournal()
	if err != nil {
		return err
	}
	if err := j.RecordScenario(rec); err != nil {
		return fmt.Errorf("record scenario: %w", err)
	}
	if _, nop := j.(journal.Nop); !nop {
		a.log.Info("scenario journaled", "id", rec.ID, "kind", rec.Kind, "journal", a.cfg.Journal.Type)
	}
	return nil
}

// emit prints v as JSON when --json is set, otherwise the text rows.
func (a *App) emit(w io.Writer, v any, rows []row) error {
	if a.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	printRows(w, rows)
	return nil
}

type row struct {
	label string
	value string
}

func printRows(w io.Writer, rows []row) {
	for _, r := range rows {
		if r.label == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "  %-20s %s\n", r.label+":", r.value)
	}
}
