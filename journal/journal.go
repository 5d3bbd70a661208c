package journal

import (
	"time"

	"github.com/rustyeddy/carloan/loan"
	"github.com/rustyeddy/carloan/pkg/id"
)

// Kind names the calculation a scenario came from.
type Kind string

const (
	KindEMI       Kind = "emi"
	KindPrepay    Kind = "prepay"
	KindReduceEMI Kind = "reduce-emi"
	KindStepUp    Kind = "stepup"
	KindShorten   Kind = "shorten"
	KindSchedule  Kind = "schedule"
	KindAfford    Kind = "afford"
)

// ScenarioRecord is one computed what-if, as the CLI reported it.
type ScenarioRecord struct {
	ID                string
	Kind              Kind
	Principal         float64
	AnnualRatePercent float64
	TenureMonths      int
	EMI               float64

	// Input is the lever that was pulled: the prepayment amount, the new
	// EMI, the new tenure or the monthly income.
	Input float64

	NewTenureMonths int
	NewEMI          float64
	InterestSaved   float64
	NetSavings      float64
	Note            string
	CreatedAt       time.Time
}

// NewScenario starts a record for terms with a fresh ID.
func NewScenario(kind Kind, t loan.Terms) ScenarioRecord {
	now := time.Now().UTC()
	return ScenarioRecord{
		ID:                id.At(now),
		Kind:              kind,
		Principal:         t.Principal,
		AnnualRatePercent: t.AnnualRatePercent,
		TenureMonths:      t.TenureMonths,
		EMI:               t.EMI(),
		CreatedAt:         now,
	}
}

type Journal interface {
	RecordScenario(ScenarioRecord) error
	Close() error
}

// Nop discards every record.
type Nop struct{}

func (Nop) RecordScenario(ScenarioRecord) error { return nil }
func (Nop) Close() error                        { return nil }
