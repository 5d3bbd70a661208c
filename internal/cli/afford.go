package cli

import (
	"github.com/rustyeddy/carloan/format"
	"github.com/rustyeddy/carloan/journal"
	"github.com/rustyeddy/carloan/loan"
	"github.com/spf13/cobra"
)

type affordOutput struct {
	EMI          float64                  `json:"emi"`
	Result       loan.AffordabilityResult `json:"result"`
	MaxFOIR      float64                  `json:"max_foir"`
	MaxPrincipal float64                  `json:"max_principal"`
}

func newAffordCmd(app *App) *cobra.Command {
	var (
		income   float64
		existing float64
		maxFOIR  float64
	)

	cmd := &cobra.Command{
		Use:   "afford",
		Short: "Rate the EMI against monthly income",
		Long: `Compare the loan's EMI, plus installments already being paid, with
monthly income, and work out the largest loan that stays within --max-foir.

Example:
  carloan afford --income 100000 --existing 10000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("income") {
				income = app.cfg.Affordability.MonthlyIncome
			}
			if !flags.Changed("existing") {
				existing = app.cfg.Affordability.ExistingEMIs
			}
			if !flags.Changed("max-foir") {
				maxFOIR = app.cfg.Affordability.MaxFOIR
			}

			t := app.Terms()
			out := affordOutput{
				EMI:          t.EMI(),
				MaxFOIR:      maxFOIR,
				MaxPrincipal: loan.MaxAffordablePrincipal(income, existing, maxFOIR, t.AnnualRatePercent, t.TenureMonths),
			}
			out.Result = loan.Affordability(out.EMI, income, existing)
			if app.Strict {
				var err error
				if out.Result, err = (loan.Strict{}).Affordability(out.EMI, income, existing); err != nil {
					return err
				}
			}

			rec := journal.NewScenario(journal.KindAfford, t)
			rec.Input = income
			rec.Note = string(out.Result.Band)
			if err := app.record(rec); err != nil {
				return err
			}

			return app.emit(cmd.OutOrStdout(), out, []row{
				{"Monthly EMI", format.Currency(out.EMI)},
				{"Monthly income", format.Currency(income)},
				{"Existing EMIs", format.Currency(existing)},
				{},
				{"EMI to income", format.Percent(out.Result.EMIToIncome)},
				{"FOIR", format.Percent(out.Result.FOIR)},
				{"Verdict", string(out.Result.Band)},
				{"Max loan at " + format.Percent(maxFOIR), format.Currency(out.MaxPrincipal)},
			})
		},
	}

	cmd.Flags().Float64Var(&income, "income", 0, "net monthly income")
	cmd.Flags().Float64Var(&existing, "existing", 0, "installments already being paid each month")
	cmd.Flags().Float64Var(&maxFOIR, "max-foir", loan.StretchedRatio, "highest acceptable obligation-to-income ratio")

	return cmd
}
