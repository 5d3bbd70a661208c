package loan

import (
	"fmt"
	"strings"
)

// RateType decides whether a prepayment carries a foreclosure penalty.
type RateType string

const (
	RateFixed    RateType = "fixed"
	RateFloating RateType = "floating"
)

// ParseRateType accepts "fixed" or "floating" in any case.
func ParseRateType(s string) (RateType, error) {
	switch RateType(strings.ToLower(strings.TrimSpace(s))) {
	case RateFixed:
		return RateFixed, nil
	case RateFloating:
		return RateFloating, nil
	}
	return "", fmt.Errorf("unknown rate type %q (want fixed or floating)", s)
}

// Penalty is the charge on a prepayment of amount. Only fixed-rate loans
// are charged.
func (rt RateType) Penalty(amount, penaltyRatePercent float64) float64 {
	if rt != RateFixed || amount <= 0 || penaltyRatePercent <= 0 {
		return 0
	}
	return amount * penaltyRatePercent / 100
}

// PrepaymentResult is the outcome of a lump-sum prepayment that keeps the
// EMI and shortens the tenure.
type PrepaymentResult struct {
	NewPrincipal    float64 `json:"new_principal"`
	NewTenureMonths int     `json:"new_tenure_months"`
	MonthsReduced   int     `json:"months_reduced"`
	InterestSaved   float64 `json:"interest_saved"`
	Penalty         float64 `json:"penalty"`
	NetSavings      float64 `json:"net_savings"`
}

// SolvePrepayment applies amount to the principal of s and solves for the
// new tenure at the same EMI, rounded up to a whole month. A prepayment that
// clears the principal settles the loan and a non-positive amount leaves it
// unchanged. It returns ErrInvalidLoanState when the EMI does not cover
// interest on the reduced principal.
func SolvePrepayment(s State, amount float64, rt RateType, penaltyRatePercent float64) (PrepaymentResult, error) {
	if amount <= 0 {
		return PrepaymentResult{
			NewPrincipal:    s.Principal,
			NewTenureMonths: s.RemainingMonths,
		}, nil
	}

	res := PrepaymentResult{
		NewPrincipal: s.Principal - amount,
		Penalty:      rt.Penalty(amount, penaltyRatePercent),
	}

	if res.NewPrincipal <= 0 {
		res.NewPrincipal = 0
		res.MonthsReduced = s.RemainingMonths
		res.InterestSaved = RemainingInterest(s)
		res.NetSavings = res.InterestSaved - res.Penalty
		return res, nil
	}

	n, err := tenureFor(res.NewPrincipal, s.EMI, s.MonthlyRate)
	if err != nil {
		return PrepaymentResult{}, err
	}

	res.NewTenureMonths = n
	res.MonthsReduced = s.RemainingMonths - n
	res.InterestSaved = RemainingInterest(s) - TotalInterest(res.NewPrincipal, s.EMI, n)
	res.NetSavings = res.InterestSaved - res.Penalty
	return res, nil
}

// ReduceEMIResult is the outcome of a prepayment that keeps the tenure and
// lowers the EMI.
type ReduceEMIResult struct {
	NewPrincipal  float64 `json:"new_principal"`
	NewEMI        float64 `json:"new_emi"`
	EMIReduction  float64 `json:"emi_reduction"`
	InterestSaved float64 `json:"interest_saved"`
	Penalty       float64 `json:"penalty"`
	NetSavings    float64 `json:"net_savings"`
}

// ReduceEMI applies amount to the principal of s and recomputes the EMI over
// the unchanged remaining tenure. A non-positive amount leaves the loan
// unchanged.
func ReduceEMI(s State, amount float64, rt RateType, penaltyRatePercent float64) ReduceEMIResult {
	if amount <= 0 {
		return ReduceEMIResult{NewPrincipal: s.Principal, NewEMI: s.EMI}
	}

	res := ReduceEMIResult{
		NewPrincipal: s.Principal - amount,
		Penalty:      rt.Penalty(amount, penaltyRatePercent),
	}
	if res.NewPrincipal < 0 {
		res.NewPrincipal = 0
	}
	if res.NewPrincipal > 0 && s.RemainingMonths > 0 {
		res.NewEMI = emi(res.NewPrincipal, s.MonthlyRate, s.RemainingMonths)
	}

	res.EMIReduction = s.EMI - res.NewEMI
	res.InterestSaved = RemainingInterest(s) - TotalInterest(res.NewPrincipal, res.NewEMI, s.RemainingMonths)
	res.NetSavings = res.InterestSaved - res.Penalty
	return res
}
