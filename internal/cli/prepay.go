package cli

import (
	"fmt"

	"github.com/rustyeddy/carloan/format"
	"github.com/rustyeddy/carloan/journal"
	"github.com/rustyeddy/carloan/loan"
	"github.com/spf13/cobra"
)

func newPrepayCmd(app *App) *cobra.Command {
	var (
		amount  float64
		after   int
		mode    string
		rt      string
		penalty float64
	)

	cmd := &cobra.Command{
		Use:   "prepay",
		Short: "Apply a lump-sum prepayment",
		Long: `Apply a lump-sum prepayment after a number of installments.

Modes:
  tenure - keep the EMI and shorten the loan (default)
  emi    - keep the tenure and lower the EMI

Fixed-rate loans are charged --penalty percent of the prepayment; floating
rate loans are not.

Examples:
  carloan prepay --amount 100000
  carloan prepay --amount 16000 --after 12 --rate-type fixed --penalty 2
  carloan prepay --amount 100000 --mode emi`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rate-type") {
				rt = app.cfg.Prepayment.RateType
			}
			if !cmd.Flags().Changed("penalty") {
				penalty = app.cfg.Prepayment.PenaltyRatePercent
			}
			rateType, err := loan.ParseRateType(rt)
			if err != nil {
				return err
			}

			s, err := app.state(after)
			if err != nil {
				return err
			}

			switch mode {
			case "tenure":
				return runPrepayTenure(cmd, app, s, amount, rateType, penalty)
			case "emi":
				return runPrepayEMI(cmd, app, s, amount, rateType, penalty)
			}
			return fmt.Errorf("unknown --mode %q (want tenure or emi)", mode)
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "prepayment amount (required)")
	cmd.Flags().IntVar(&after, "after", 0, "installments already paid")
	cmd.Flags().StringVar(&mode, "mode", "tenure", "tenure|emi")
	cmd.Flags().StringVar(&rt, "rate-type", "floating", "fixed|floating")
	cmd.Flags().Float64Var(&penalty, "penalty", 0, "foreclosure charge in percent (fixed rate only)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runPrepayTenure(cmd *cobra.Command, app *App, s loan.State, amount float64, rt loan.RateType, penalty float64) error {
	var (
		res loan.PrepaymentResult
		err error
	)
	if app.Strict {
		res, err = loan.Strict{}.Prepayment(s, amount, rt, penalty)
	} else {
		res, err = loan.SolvePrepayment(s, amount, rt, penalty)
	}
	if err != nil {
		return fmt.Errorf("prepayment: %w", err)
	}

	rec := journal.NewScenario(journal.KindPrepay, app.Terms())
	rec.Input = amount
	rec.NewTenureMonths = res.NewTenureMonths
	rec.NewEMI = s.EMI
	rec.InterestSaved = res.InterestSaved
	rec.NetSavings = res.NetSavings
	rec.Note = fmt.Sprintf("reduce tenure after %d months, %s", app.Terms().TenureMonths-s.RemainingMonths, rt)
	if err := app.record(rec); err != nil {
		return err
	}

	return app.emit(cmd.OutOrStdout(), res, []row{
		{"Outstanding", format.Currency(s.Principal)},
		{"Prepayment", format.Currency(amount)},
		{"New principal", format.Currency(res.NewPrincipal)},
		{"EMI", format.Currency(s.EMI)},
		{"Remaining tenure", format.Tenure(s.RemainingMonths)},
		{"New tenure", format.Tenure(res.NewTenureMonths)},
		{"Months reduced", fmt.Sprint(res.MonthsReduced)},
		{},
		{"Interest saved", format.Currency(res.InterestSaved)},
		{"Penalty", format.Currency(res.Penalty)},
		{"Net savings", format.Currency(res.NetSavings)},
	})
}

func runPrepayEMI(cmd *cobra.Command, app *App, s loan.State, amount float64, rt loan.RateType, penalty float64) error {
	res := loan.ReduceEMI(s, amount, rt, penalty)
	if app.Strict {
		var err error
		if res, err = (loan.Strict{}).ReduceEMI(s, amount, rt, penalty); err != nil {
			return fmt.Errorf("prepayment: %w", err)
		}
	}

	rec := journal.NewScenario(journal.KindReduceEMI, app.Terms())
	rec.Input = amount
	rec.NewTenureMonths = s.RemainingMonths
	rec.NewEMI = res.NewEMI
	rec.InterestSaved = res.InterestSaved
	rec.NetSavings = res.NetSavings
	rec.Note = fmt.Sprintf("reduce EMI after %d months, %s", app.Terms().TenureMonths-s.RemainingMonths, rt)
	if err := app.record(rec); err != nil {
		return err
	}

	return app.emit(cmd.OutOrStdout(), res, []row{
		{"Outstanding", format.Currency(s.Principal)},
		{"Prepayment", format.Currency(amount)},
		{"New principal", format.Currency(res.NewPrincipal)},
		{"Tenure", format.Tenure(s.RemainingMonths)},
		{"EMI", format.Currency(s.EMI)},
		{"New EMI", format.Currency(res.NewEMI)},
		{"EMI reduction", format.Currency(res.EMIReduction)},
		{},
		{"Interest saved", format.Currency(res.InterestSaved)},
		{"Penalty", format.Currency(res.Penalty)},
		{"Net savings", format.Currency(res.NetSavings)},
	})
}
