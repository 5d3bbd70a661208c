package loan

// Band classifies how much of a borrower's income goes to installments.
type Band string

const (
	BandUnknown      Band = "unknown"
	BandComfortable  Band = "comfortable"
	BandStretched    Band = "stretched"
	BandUnaffordable Band = "unaffordable"
)

// Obligation-to-income cut-offs.
const (
	ComfortableRatio = 0.35
	StretchedRatio   = 0.50
)

type AffordabilityResult struct {
	EMIToIncome float64 `json:"emi_to_income"`
	// FOIR is the fixed-obligation-to-income ratio: all installments,
	// including the new one, over monthly income.
	FOIR float64 `json:"foir"`
	Band Band    `json:"band"`
}

// Affordability rates a new installment against monthly income and the
// installments already being paid. Non-positive income yields BandUnknown.
func Affordability(emi, monthlyIncome, existingEMIs float64) AffordabilityResult {
	if monthlyIncome <= 0 {
		return AffordabilityResult{Band: BandUnknown}
	}
	if existingEMIs < 0 {
		existingEMIs = 0
	}

	res := AffordabilityResult{
		EMIToIncome: emi / monthlyIncome,
		FOIR:        (emi + existingEMIs) / monthlyIncome,
	}
	switch {
	case res.FOIR <= ComfortableRatio:
		res.Band = BandComfortable
	case res.FOIR <= StretchedRatio:
		res.Band = BandStretched
	default:
		res.Band = BandUnaffordable
	}
	return res
}

// MaxAffordablePrincipal is the largest loan whose EMI keeps the FOIR at
// maxRatio.
func MaxAffordablePrincipal(monthlyIncome, existingEMIs, maxRatio, annualRatePercent float64, tenureMonths int) float64 {
	budget := monthlyIncome*maxRatio - existingEMIs
	return MaxPrincipal(budget, annualRatePercent, tenureMonths)
}
