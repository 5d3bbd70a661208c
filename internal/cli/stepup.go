package cli

import (
	"fmt"

	"github.com/rustyeddy/carloan/format"
	"github.com/rustyeddy/carloan/journal"
	"github.com/rustyeddy/carloan/loan"
	"github.com/spf13/cobra"
)

func newStepUpCmd(app *App) *cobra.Command {
	var (
		newEMI  float64
		percent float64
		after   int
	)

	cmd := &cobra.Command{
		Use:   "stepup",
		Short: "Raise the EMI and see how much sooner the loan closes",
		Long: `Raise the EMI from a point in the loan and solve for the shorter tenure.

Give the new EMI with --emi or as a percentage increase with --percent.

Examples:
  carloan stepup --emi 30000
  carloan stepup --percent 10 --after 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.state(after)
			if err != nil {
				return err
			}

			target := newEMI
			if cmd.Flags().Changed("percent") {
				target = s.EMI * (1 + percent/100)
			}

			var res loan.StepUpResult
			if app.Strict {
				res, err = loan.Strict{}.StepUp(s, target)
			} else {
				res, err = loan.SolveStepUp(s, target)
			}
			if err != nil {
				return fmt.Errorf("step-up: %w", err)
			}

			rec := journal.NewScenario(journal.KindStepUp, app.Terms())
			rec.Input = target
			rec.NewEMI = res.NewEMI
			rec.NewTenureMonths = res.NewTenureMonths
			rec.InterestSaved = res.InterestSaved
			rec.NetSavings = res.InterestSaved
			rec.Note = fmt.Sprintf("step-up after %d months", after)
			if err := app.record(rec); err != nil {
				return err
			}

			return app.emit(cmd.OutOrStdout(), res, []row{
				{"Outstanding", format.Currency(s.Principal)},
				{"EMI", format.Currency(s.EMI)},
				{"New EMI", format.Currency(res.NewEMI)},
				{"Additional EMI", format.Currency(res.AdditionalEMI)},
				{"Remaining tenure", format.Tenure(s.RemainingMonths)},
				{"New tenure", format.Tenure(res.NewTenureMonths)},
				{"Months reduced", fmt.Sprint(res.MonthsReduced)},
				{},
				{"Interest saved", format.Currency(res.InterestSaved)},
			})
		},
	}

	cmd.Flags().Float64Var(&newEMI, "emi", 0, "new monthly installment")
	cmd.Flags().Float64Var(&percent, "percent", 0, "raise the EMI by this percent")
	cmd.Flags().IntVar(&after, "after", 0, "installments already paid")
	cmd.MarkFlagsOneRequired("emi", "percent")
	cmd.MarkFlagsMutuallyExclusive("emi", "percent")

	return cmd
}
