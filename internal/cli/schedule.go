package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rustyeddy/carloan/format"
	"github.com/rustyeddy/carloan/journal"
	"github.com/rustyeddy/carloan/loan"
	"github.com/spf13/cobra"
)

type scheduleOutput struct {
	Schedule   loan.Schedule       `json:"schedule"`
	Comparison loan.PlanComparison `json:"comparison"`
}

func newScheduleCmd(app *App) *cobra.Command {
	var (
		plan    loan.PrepaymentPlan
		csvPath string
		noRows  bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the month-by-month amortization schedule",
		Long: `Amortize the loan month by month, applying recurring prepayments.

Without prepayment flags the plan comes from the config file.

Examples:
  carloan schedule
  carloan schedule --prepay 16000 --every 12
  carloan schedule --prepay 50000 --every 6 --start 3 --csv schedule.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("prepay") && !flags.Changed("every") && !flags.Changed("start") {
				plan = app.cfg.Prepayment.Plan
			}

			t := app.Terms()
			if app.Strict {
				if err := loan.ValidateTerms(t); err != nil {
					return err
				}
			}

			out := scheduleOutput{
				Schedule:   loan.BuildSchedule(t, plan),
				Comparison: loan.ComparePlan(t, plan),
			}

			if csvPath != "" {
				if err := writeSchedule(cmd.OutOrStdout(), csvPath, out.Schedule); err != nil {
					return err
				}
				app.log.Info("schedule written", "path", csvPath, "months", len(out.Schedule.Installments))
			}

			sum := out.Comparison.WithPlan
			rec := journal.NewScenario(journal.KindSchedule, t)
			rec.Input = plan.Amount
			rec.NewEMI = out.Schedule.EMI
			rec.NewTenureMonths = sum.Months
			rec.InterestSaved = out.Comparison.InterestSaved
			rec.NetSavings = out.Comparison.InterestSaved
			if !plan.Empty() {
				rec.Note = fmt.Sprintf("prepay %s every %d months", format.Currency(plan.Amount), plan.EveryMonths)
			}
			if err := app.record(rec); err != nil {
				return err
			}

			if app.JSON {
				return app.emit(cmd.OutOrStdout(), out, nil)
			}
			if csvPath == "-" {
				return nil
			}

			w := cmd.OutOrStdout()
			if !noRows {
				printSchedule(w, out.Schedule)
				fmt.Fprintln(w)
			}
			printRows(w, []row{
				{"Monthly EMI", format.Currency(out.Schedule.EMI)},
				{"Months", fmt.Sprint(sum.Months)},
				{"Total paid", format.Currency(sum.TotalPaid)},
				{"Total interest", format.Currency(sum.TotalInterest)},
				{"Total prepaid", format.Currency(sum.TotalPrepaid)},
			})
			if !plan.Empty() {
				printRows(w, []row{
					{},
					{"Without prepayment", format.Tenure(out.Comparison.Baseline.Months)},
					{"With prepayment", format.Tenure(sum.Months)},
					{"Months saved", fmt.Sprint(out.Comparison.MonthsSaved)},
					{"Interest saved", format.Currency(out.Comparison.InterestSaved)},
				})
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&plan.Amount, "prepay", 0, "recurring prepayment amount")
	cmd.Flags().IntVar(&plan.EveryMonths, "every", 12, "months between prepayments")
	cmd.Flags().IntVar(&plan.StartMonth, "start", 0, "month of the first prepayment (default --every)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the schedule as CSV to this path (- for stdout)")
	cmd.Flags().BoolVar(&noRows, "summary", false, "print only the summary")

	return cmd
}

func writeSchedule(stdout io.Writer, path string, s loan.Schedule) error {
	if path == "-" {
		return journal.WriteScheduleCSV(stdout, s)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create schedule csv: %w", err)
	}
	if err := journal.WriteScheduleCSV(f, s); err != nil {
		_ = f.Close()
		return fmt.Errorf("write schedule csv: %w", err)
	}
	return f.Close()
}

func printSchedule(w io.Writer, s loan.Schedule) {
	fmt.Fprintf(w, "%5s  %14s  %12s  %12s  %12s  %12s  %14s\n",
		"Month", "Opening", "Payment", "Interest", "Principal", "Prepayment", "Closing")
	for _, in := range s.Installments {
		fmt.Fprintf(w, "%5d  %14s  %12s  %12s  %12s  %12s  %14s\n",
			in.Month,
			format.Currency(in.Opening),
			format.Currency(in.Payment),
			format.Currency(in.Interest),
			format.Currency(in.Principal),
			format.Currency(in.Prepayment),
			format.Currency(in.Closing),
		)
	}
}
