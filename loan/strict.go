package loan

import (
	"errors"
	"fmt"
)

// Strict wraps the solvers with input validation. Where the package-level
// functions degrade to zero or a no-op, Strict returns an *InputError.
//
// The zero value is ready to use.
type Strict struct{}

// ValidateTerms rejects terms for which the EMI is undefined.
func ValidateTerms(t Terms) error {
	return errors.Join(
		positive("principal", t.Principal),
		positive("annual_rate_percent", t.AnnualRatePercent),
		positive("tenure_months", float64(t.TenureMonths)),
	)
}

// ValidateState rejects snapshots that cannot be solved against.
func ValidateState(s State) error {
	return errors.Join(
		nonNegative("principal", s.Principal),
		positive("emi", s.EMI),
		nonNegative("monthly_rate", s.MonthlyRate),
		nonNegative("remaining_months", float64(s.RemainingMonths)),
	)
}

// EMI validates t and computes its EMI. Terms whose EMI overflows a
// float64 return ErrInvalidLoanState.
func (Strict) EMI(t Terms) (float64, error) {
	if err := ValidateTerms(t); err != nil {
		return 0, err
	}
	emi := t.EMI()
	if emi <= 0 {
		return 0, fmt.Errorf("%w: EMI of %g at %g%% over %d months is out of range",
			ErrInvalidLoanState, t.Principal, t.AnnualRatePercent, t.TenureMonths)
	}
	return emi, nil
}

// Prepayment is SolvePrepayment with a positive amount and a known rate type.
func (Strict) Prepayment(s State, amount float64, rt RateType, penaltyRatePercent float64) (PrepaymentResult, error) {
	if err := ValidateState(s); err != nil {
		return PrepaymentResult{}, err
	}
	if err := errors.Join(
		positive("prepayment_amount", amount),
		nonNegative("penalty_rate_percent", penaltyRatePercent),
		validRateType(rt),
	); err != nil {
		return PrepaymentResult{}, err
	}
	return SolvePrepayment(s, amount, rt, penaltyRatePercent)
}

// ReduceEMI is ReduceEMI with a positive amount and a known rate type.
func (Strict) ReduceEMI(s State, amount float64, rt RateType, penaltyRatePercent float64) (ReduceEMIResult, error) {
	if err := ValidateState(s); err != nil {
		return ReduceEMIResult{}, err
	}
	if err := errors.Join(
		positive("prepayment_amount", amount),
		nonNegative("penalty_rate_percent", penaltyRatePercent),
		validRateType(rt),
	); err != nil {
		return ReduceEMIResult{}, err
	}
	return ReduceEMI(s, amount, rt, penaltyRatePercent), nil
}

// StepUp is SolveStepUp with a newEMI above the current EMI.
func (Strict) StepUp(s State, newEMI float64) (StepUpResult, error) {
	if err := ValidateState(s); err != nil {
		return StepUpResult{}, err
	}
	if newEMI <= s.EMI {
		return StepUpResult{}, &InputError{Field: "new_emi", Value: newEMI, Reason: fmt.Sprintf("must exceed current EMI %.2f", s.EMI)}
	}
	return SolveStepUp(s, newEMI)
}

// ShorterTenure is SolveShorterTenure with a tenure in (0, RemainingMonths).
func (Strict) ShorterTenure(s State, newTenureMonths int) (ShorterTenureResult, error) {
	if err := ValidateState(s); err != nil {
		return ShorterTenureResult{}, err
	}
	if err := positive("new_tenure_months", float64(newTenureMonths)); err != nil {
		return ShorterTenureResult{}, err
	}
	if newTenureMonths >= s.RemainingMonths {
		return ShorterTenureResult{}, &InputError{
			Field:  "new_tenure_months",
			Value:  float64(newTenureMonths),
			Reason: fmt.Sprintf("must be less than remaining tenure %d", s.RemainingMonths),
		}
	}
	return SolveShorterTenure(s, newTenureMonths), nil
}

// Affordability is Affordability with positive income and no negative EMIs.
func (Strict) Affordability(emi, monthlyIncome, existingEMIs float64) (AffordabilityResult, error) {
	if err := errors.Join(
		nonNegative("emi", emi),
		positive("monthly_income", monthlyIncome),
		nonNegative("existing_emis", existingEMIs),
	); err != nil {
		return AffordabilityResult{}, err
	}
	return Affordability(emi, monthlyIncome, existingEMIs), nil
}

func validRateType(rt RateType) error {
	if rt == RateFixed || rt == RateFloating {
		return nil
	}
	return &InputError{Field: "rate_type", Reason: fmt.Sprintf("must be %q or %q, not %q", RateFixed, RateFloating, rt)}
}
