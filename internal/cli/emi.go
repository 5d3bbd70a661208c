package cli

import (
	"fmt"

	"github.com/rustyeddy/carloan/format"
	"github.com/rustyeddy/carloan/journal"
	"github.com/rustyeddy/carloan/loan"
	"github.com/spf13/cobra"
)

type emiOutput struct {
	Terms         loan.Terms `json:"terms"`
	EMI           float64    `json:"emi"`
	TotalPayment  float64    `json:"total_payment"`
	TotalInterest float64    `json:"total_interest"`
}

func newEMICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "emi",
		Short: "Compute the EMI, total payment and total interest",
		Long: `Compute the equated monthly installment of the loan.

Example:
  carloan emi -p 800000 -r 8 -t 36`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := app.Terms()

			emi := t.EMI()
			if app.Strict {
				var err error
				if emi, err = (loan.Strict{}).EMI(t); err != nil {
					return err
				}
			}

			out := emiOutput{
				Terms:         t,
				EMI:           emi,
				TotalPayment:  loan.TotalPayment(emi, t.TenureMonths),
				TotalInterest: loan.TotalInterest(t.Principal, emi, t.TenureMonths),
			}
			if emi == 0 {
				out.TotalPayment, out.TotalInterest = 0, 0
			}

			rec := journal.NewScenario(journal.KindEMI, t)
			rec.NewEMI = emi
			rec.NewTenureMonths = t.TenureMonths
			if err := app.record(rec); err != nil {
				return err
			}

			return app.emit(cmd.OutOrStdout(), out, []row{
				{"Loan amount", format.Currency(t.Principal)},
				{"Interest rate", fmt.Sprintf("%g%% p.a.", t.AnnualRatePercent)},
				{"Tenure", format.Tenure(t.TenureMonths)},
				{},
				{"Monthly EMI", format.Currency(out.EMI)},
				{"Total payment", format.Currency(out.TotalPayment)},
				{"Total interest", format.Currency(out.TotalInterest)},
			})
		},
	}
}
