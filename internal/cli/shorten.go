package cli

import (
	"fmt"

	"github.com/rustyeddy/carloan/format"
	"github.com/rustyeddy/carloan/journal"
	"github.com/rustyeddy/carloan/loan"
	"github.com/spf13/cobra"
)

func newShortenCmd(app *App) *cobra.Command {
	var (
		months int
		after  int
	)

	cmd := &cobra.Command{
		Use:   "shorten",
		Short: "Close the loan in fewer months and see the EMI it takes",
		Long: `Pick a shorter remaining tenure and solve for the higher EMI.

Example:
  carloan shorten --months 24
  carloan shorten --months 12 --after 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.state(after)
			if err != nil {
				return err
			}

			res := loan.SolveShorterTenure(s, months)
			if app.Strict {
				if res, err = (loan.Strict{}).ShorterTenure(s, months); err != nil {
					return fmt.Errorf("shorter tenure: %w", err)
				}
			}

			rec := journal.NewScenario(journal.KindShorten, app.Terms())
			rec.Input = float64(months)
			rec.NewEMI = res.NewEMI
			rec.NewTenureMonths = res.NewTenureMonths
			rec.InterestSaved = res.InterestSaved
			rec.NetSavings = res.InterestSaved
			rec.Note = fmt.Sprintf("shorten after %d months", after)
			if err := app.record(rec); err != nil {
				return err
			}

			return app.emit(cmd.OutOrStdout(), res, []row{
				{"Outstanding", format.Currency(s.Principal)},
				{"Remaining tenure", format.Tenure(s.RemainingMonths)},
				{"New tenure", format.Tenure(res.NewTenureMonths)},
				{"EMI", format.Currency(s.EMI)},
				{"New EMI", format.Currency(res.NewEMI)},
				{"EMI increase", format.Currency(res.EMIIncrease)},
				{},
				{"Interest saved", format.Currency(res.InterestSaved)},
			})
		},
	}

	cmd.Flags().IntVarP(&months, "months", "m", 0, "new remaining tenure in months (required)")
	cmd.Flags().IntVar(&after, "after", 0, "installments already paid")
	_ = cmd.MarkFlagRequired("months")

	return cmd
}
