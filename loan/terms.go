// Package loan implements amortizing-loan math: the EMI formula, interest
// accounting and the prepayment, step-up and shorter-tenure solvers.
//
// Every function is pure. Package-level functions are lenient: non-positive
// inputs degrade to zero or a no-op result so a half-filled form never
// fails. Use Strict for validated calls.
package loan

import "math"

// Terms are the inputs of a new loan.
type Terms struct {
	Principal         float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months" yaml:"tenure_months"`
}

// Valid reports whether the EMI is defined for t.
func (t Terms) Valid() bool {
	return t.Principal > 0 && t.AnnualRatePercent > 0 && t.TenureMonths > 0
}

// MonthlyRate is the annual percentage rate as a monthly fraction.
func (t Terms) MonthlyRate() float64 {
	return MonthlyRate(t.AnnualRatePercent)
}

// EMI is ComputeEMI over t.
func (t Terms) EMI() float64 {
	return ComputeEMI(t.Principal, t.AnnualRatePercent, t.TenureMonths)
}

// State returns the snapshot of t before any installment is paid.
func (t Terms) State() State {
	return State{
		Principal:       t.Principal,
		EMI:             t.EMI(),
		MonthlyRate:     t.MonthlyRate(),
		RemainingMonths: t.TenureMonths,
	}
}

// State is a point-in-time snapshot of a running loan. Solvers derive new
// results from it and never modify it.
type State struct {
	Principal       float64 `json:"principal"`
	EMI             float64 `json:"emi"`
	MonthlyRate     float64 `json:"monthly_rate"`
	RemainingMonths int     `json:"remaining_months"`
}

// MonthlyInterest is the interest accrued on the outstanding principal in
// the coming month.
func (s State) MonthlyInterest() float64 {
	return s.MonthlyRate * s.Principal
}

// MonthlyRate converts an annual percentage rate (8 for 8%) into a monthly
// fraction.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 1200
}

// StateAfter returns the state of t once monthsPaid installments have been
// paid on schedule. monthsPaid is clamped to [0, TenureMonths].
func StateAfter(t Terms, monthsPaid int) State {
	s := t.State()
	if monthsPaid <= 0 || !t.Valid() {
		return s
	}
	if monthsPaid >= t.TenureMonths {
		s.Principal = 0
		s.RemainingMonths = 0
		return s
	}

	balance := t.Principal * (1 - paidFraction(s.MonthlyRate, monthsPaid, t.TenureMonths))
	if balance < 0 || math.IsNaN(balance) {
		balance = 0
	}

	s.Principal = balance
	s.RemainingMonths = t.TenureMonths - monthsPaid
	return s
}

// paidFraction is the share of the principal repaid after k of n scheduled
// installments: ((1+r)^k - 1) / ((1+r)^n - 1).
func paidFraction(r float64, k, n int) float64 {
	_, gk := compound(r, k)
	_, gn := compound(r, n)
	if math.IsInf(gn, 1) {
		return math.Exp(float64(k-n) * math.Log1p(r))
	}
	if gn == 0 {
		return float64(k) / float64(n)
	}
	return gk / gn
}

// PrincipalFromPrice is the amount financed for a vehicle price after a
// down payment given as a percentage of the price.
func PrincipalFromPrice(price, downPaymentPercent float64) float64 {
	if price <= 0 {
		return 0
	}
	if downPaymentPercent <= 0 {
		return price
	}
	if downPaymentPercent >= 100 {
		return 0
	}
	return price * (1 - downPaymentPercent/100)
}
