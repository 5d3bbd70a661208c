package loan

// RemainingInterest is what is still to be paid on s minus the principal.
// It assumes s.EMI is consistent with the principal, rate and tenure.
func RemainingInterest(s State) float64 {
	return TotalInterest(s.Principal, s.EMI, s.RemainingMonths)
}

// TotalInterest is the total paid over months installments minus the
// principal.
func TotalInterest(principal, emi float64, months int) float64 {
	return emi*float64(months) - principal
}

// TotalPayment is emi times months.
func TotalPayment(emi float64, months int) float64 {
	return emi * float64(months)
}
