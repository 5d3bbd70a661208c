package loan

import (
	"fmt"
	"math"
)

// ComputeEMI returns the equated monthly installment that amortizes
// principal over tenureMonths at annualRatePercent:
//
//	r   = annualRatePercent / 1200
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// It returns 0 when any input is not positive. The result is not rounded.
func ComputeEMI(principal, annualRatePercent float64, tenureMonths int) float64 {
	if principal <= 0 || annualRatePercent <= 0 || tenureMonths <= 0 {
		return 0
	}
	return emi(principal, MonthlyRate(annualRatePercent), tenureMonths)
}

// ComputeEMIYears is ComputeEMI with the tenure given in whole years.
func ComputeEMIYears(principal, annualRatePercent float64, tenureYears int) float64 {
	return ComputeEMI(principal, annualRatePercent, tenureYears*12)
}

// MaxPrincipal is the inverse of ComputeEMI: the largest principal that a
// monthly budget of maxEMI repays over tenureMonths.
func MaxPrincipal(maxEMI, annualRatePercent float64, tenureMonths int) float64 {
	if maxEMI <= 0 || annualRatePercent <= 0 || tenureMonths <= 0 {
		return 0
	}
	r := MonthlyRate(annualRatePercent)
	growth, gm1 := compound(r, tenureMonths)
	if math.IsInf(growth, 1) {
		return finite(maxEMI / r)
	}
	return finite(maxEMI * ((gm1 / growth) / r))
}

// compound returns (1+r)^n and (1+r)^n - 1, both evaluated through log1p so
// a rate too small to change 1+r still compounds.
func compound(r float64, months int) (growth, gm1 float64) {
	x := float64(months) * math.Log1p(r)
	return math.Exp(x), math.Expm1(x)
}

// finite maps NaN and ±Inf to 0.
func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// emi evaluates the formula for a monthly rate r. A zero rate splits the
// principal evenly. Once (1+r)^n overflows the EMI is its limit, the
// monthly interest P*r.
func emi(principal, r float64, months int) float64 {
	n := float64(months)
	if r == 0 {
		return finite(principal / n)
	}
	growth, gm1 := compound(r, months)
	if math.IsInf(growth, 1) {
		return finite(principal * r)
	}
	if gm1 == 0 {
		return finite(principal / n)
	}
	return finite(principal * (growth * (r / gm1)))
}

// maxTenureMonths bounds a solved tenure so it always fits an int.
const maxTenureMonths = math.MaxInt32

// tenureFor solves the EMI formula for n given an installment, rounding up
// to whole months. A tenure beyond maxTenureMonths is ErrInvalidLoanState.
func tenureFor(principal, installment, r float64) (int, error) {
	if principal <= 0 {
		return 0, nil
	}
	interest := r * principal
	if installment <= 0 {
		return 0, notCovered(installment, interest)
	}

	var n float64
	if r == 0 {
		n = principal / installment
	} else {
		if installment <= interest {
			return 0, notCovered(installment, interest)
		}
		n = math.Log1p(interest/(installment-interest)) / math.Log1p(r)
	}

	if math.IsNaN(n) || n > maxTenureMonths {
		return 0, fmt.Errorf("%w: tenure of %g months is out of range", ErrInvalidLoanState, n)
	}
	return ceilMonths(n), nil
}

// ceilMonths rounds a fractional tenure up, ignoring float noise just above
// a whole month so an exact solve does not grow by one.
func ceilMonths(n float64) int {
	const eps = 1e-9
	whole := math.Round(n)
	if math.Abs(n-whole) < eps {
		return int(whole)
	}
	return int(math.Ceil(n))
}
