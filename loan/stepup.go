package loan

// StepUpResult is the outcome of raising the EMI on a running loan.
type StepUpResult struct {
	NewEMI          float64 `json:"new_emi"`
	NewTenureMonths int     `json:"new_tenure_months"`
	MonthsReduced   int     `json:"months_reduced"`
	InterestSaved   float64 `json:"interest_saved"`
	AdditionalEMI   float64 `json:"additional_emi"`
}

// SolveStepUp solves for the shorter tenure that newEMI repays the
// principal of s in. A newEMI that does not exceed the current EMI leaves
// the loan unchanged.
func SolveStepUp(s State, newEMI float64) (StepUpResult, error) {
	if newEMI <= s.EMI {
		return StepUpResult{
			NewEMI:          s.EMI,
			NewTenureMonths: s.RemainingMonths,
		}, nil
	}

	n, err := tenureFor(s.Principal, newEMI, s.MonthlyRate)
	if err != nil {
		return StepUpResult{}, err
	}

	return StepUpResult{
		NewEMI:          newEMI,
		NewTenureMonths: n,
		MonthsReduced:   s.RemainingMonths - n,
		InterestSaved:   RemainingInterest(s) - TotalInterest(s.Principal, newEMI, n),
		AdditionalEMI:   newEMI - s.EMI,
	}, nil
}

// SolveStepUpPercent raises the EMI of s by pct percent.
func SolveStepUpPercent(s State, pct float64) (StepUpResult, error) {
	return SolveStepUp(s, s.EMI*(1+pct/100))
}
