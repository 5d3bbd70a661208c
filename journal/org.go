package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/carloan/format"
	"github.com/rustyeddy/carloan/pkg/id"
)

// FormatScenarioOrg renders a ScenarioRecord as an Org-mode entry with the
// raw figures in a PROPERTIES drawer.
func FormatScenarioOrg(s ScenarioRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Scenario: %s %s over %s (%s)\n",
		s.Kind, format.Currency(s.Principal), format.Tenure(s.TenureMonths), id.Short(s.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", s.ID)
	fmt.Fprintf(&b, ":KIND: %s\n", s.Kind)
	fmt.Fprintf(&b, ":PRINCIPAL: %.2f\n", s.Principal)
	fmt.Fprintf(&b, ":ANNUAL_RATE_PERCENT: %.4f\n", s.AnnualRatePercent)
	fmt.Fprintf(&b, ":TENURE_MONTHS: %d\n", s.TenureMonths)
	fmt.Fprintf(&b, ":EMI: %.2f\n", s.EMI)
	fmt.Fprintf(&b, ":INPUT: %.2f\n", s.Input)
	fmt.Fprintf(&b, ":NEW_TENURE_MONTHS: %d\n", s.NewTenureMonths)
	fmt.Fprintf(&b, ":NEW_EMI: %.2f\n", s.NewEMI)
	fmt.Fprintf(&b, ":INTEREST_SAVED: %.2f\n", s.InterestSaved)
	fmt.Fprintf(&b, ":NET_SAVINGS: %.2f\n", s.NetSavings)
	fmt.Fprintf(&b, ":CREATED_AT: %s\n", s.CreatedAt.UTC().Format(time.RFC3339))
	b.WriteString(":END:\n")
	if s.Note != "" {
		fmt.Fprintf(&b, "\n%s\n", s.Note)
	}
	return b.String()
}

// FormatScenariosOrg renders multiple scenarios separated by blank lines.
func FormatScenariosOrg(recs []ScenarioRecord) string {
	var b strings.Builder
	for i, s := range recs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatScenarioOrg(s))
	}
	return b.String()
}
