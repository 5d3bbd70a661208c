package loan

// ShorterTenureResult is the outcome of closing a running loan early by
// paying a higher EMI.
type ShorterTenureResult struct {
	NewEMI          float64 `json:"new_emi"`
	NewTenureMonths int     `json:"new_tenure_months"`
	EMIIncrease     float64 `json:"emi_increase"`
	InterestSaved   float64 `json:"interest_saved"`
}

// SolveShorterTenure computes the EMI that repays the principal of s in
// newTenureMonths. A tenure that is not shorter than the remaining one, or
// not positive, leaves the loan unchanged.
func SolveShorterTenure(s State, newTenureMonths int) ShorterTenureResult {
	if newTenureMonths >= s.RemainingMonths || newTenureMonths <= 0 {
		return ShorterTenureResult{
			NewEMI:          s.EMI,
			NewTenureMonths: s.RemainingMonths,
		}
	}

	newEMI := emi(s.Principal, s.MonthlyRate, newTenureMonths)
	return ShorterTenureResult{
		NewEMI:          newEMI,
		NewTenureMonths: newTenureMonths,
		EMIIncrease:     newEMI - s.EMI,
		InterestSaved:   RemainingInterest(s) - TotalInterest(s.Principal, newEMI, newTenureMonths),
	}
}
