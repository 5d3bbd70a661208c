package loan

import "math"

// settled is the balance below which a loan counts as repaid.
const settled = 1e-6

// PrepaymentPlan describes extra principal payments made after the EMI of
// the month they fall in.
type PrepaymentPlan struct {
	// Amount is paid every EveryMonths months, first in StartMonth
	// (EveryMonths when zero).
	Amount      float64 `json:"amount" yaml:"amount"`
	EveryMonths int     `json:"every_months" yaml:"every_months"`
	StartMonth  int     `json:"start_month,omitempty" yaml:"start_month,omitempty"`

	// OneOff maps a month number to a single extra payment.
	OneOff map[int]float64 `json:"one_off,omitempty" yaml:"one_off,omitempty"`
}

// Yearly is a plan paying amount at the end of every twelfth month.
func Yearly(amount float64) PrepaymentPlan {
	return PrepaymentPlan{Amount: amount, EveryMonths: 12}
}

// Due is the prepayment scheduled for month (1-based).
func (p PrepaymentPlan) Due(month int) float64 {
	amt := p.OneOff[month]
	if p.Amount > 0 && p.EveryMonths > 0 {
		start := p.StartMonth
		if start <= 0 {
			start = p.EveryMonths
		}
		if month >= start && (month-start)%p.EveryMonths == 0 {
			amt += p.Amount
		}
	}
	if amt < 0 {
		return 0
	}
	return amt
}

// Empty reports whether the plan never prepays.
func (p PrepaymentPlan) Empty() bool {
	if p.Amount > 0 && p.EveryMonths > 0 {
		return false
	}
	for _, v := range p.OneOff {
		if v > 0 {
			return false
		}
	}
	return true
}

// Installment is one month of a Schedule. Prepayment is applied after the
// month's EMI.
type Installment struct {
	Month      int     `json:"month"`
	Opening    float64 `json:"opening"`
	Payment    float64 `json:"payment"`
	Interest   float64 `json:"interest"`
	Principal  float64 `json:"principal"`
	Prepayment float64 `json:"prepayment"`
	Closing    float64 `json:"closing"`
}

// Schedule is the month-by-month amortization of Terms.
type Schedule struct {
	Terms        Terms         `json:"terms"`
	EMI          float64       `json:"emi"`
	Installments []Installment `json:"installments"`
}

// ScheduleSummary totals a Schedule.
type ScheduleSummary struct {
	Months        int     `json:"months"`
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
	TotalPrepaid  float64 `json:"total_prepaid"`
}

// BuildSchedule amortizes t month by month, applying plan after each EMI.
// The final payment is trimmed to what is left, so the schedule ends
// early when prepayments shorten the loan. Invalid terms give an empty
// schedule.
func BuildSchedule(t Terms, plan PrepaymentPlan) Schedule {
	sch := Schedule{Terms: t, EMI: t.EMI()}
	if !t.Valid() {
		return sch
	}

	r := t.MonthlyRate()
	balance := t.Principal
	sch.Installments = make([]Installment, 0, t.TenureMonths)

	for month := 1; month <= t.TenureMonths && balance > settled; month++ {
		in := Installment{Month: month, Opening: balance}
		in.Interest = balance * r

		in.Payment = sch.EMI
		if month == t.TenureMonths || in.Payment > balance+in.Interest {
			in.Payment = balance + in.Interest
		}
		in.Principal = in.Payment - in.Interest
		balance -= in.Principal

		if extra := plan.Due(month); extra > 0 && balance > settled {
			in.Prepayment = math.Min(extra, balance)
			balance -= in.Prepayment
		}
		if balance < settled {
			balance = 0
		}

		in.Closing = balance
		sch.Installments = append(sch.Installments, in)
	}
	return sch
}

// Summary adds up the installments of s.
func (s Schedule) Summary() ScheduleSummary {
	sum := ScheduleSummary{Months: len(s.Installments)}
	for _, in := range s.Installments {
		sum.TotalPaid += in.Payment + in.Prepayment
		sum.TotalInterest += in.Interest
		sum.TotalPrepaid += in.Prepayment
	}
	return sum
}

// PlanComparison sets a prepayment plan against the plain schedule.
type PlanComparison struct {
	Baseline      ScheduleSummary `json:"baseline"`
	WithPlan      ScheduleSummary `json:"with_plan"`
	MonthsSaved   int             `json:"months_saved"`
	InterestSaved float64         `json:"interest_saved"`
}

func ComparePlan(t Terms, plan PrepaymentPlan) PlanComparison {
	base := BuildSchedule(t, PrepaymentPlan{}).Summary()
	with := BuildSchedule(t, plan).Summary()
	return PlanComparison{
		Baseline:      base,
		WithPlan:      with,
		MonthsSaved:   base.Months - with.Months,
		InterestSaved: base.TotalInterest - with.TotalInterest,
	}
}
