// Package format renders loan figures for display.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol prefixes every rendered amount.
const Symbol = "₹"

// Undefined stands in for a NaN or infinite figure.
const Undefined = "—"

func undefined(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// Currency rounds amount half away from zero to whole rupees and groups
// the digits the Indian way: the last three, then pairs.
//
//	Currency(1234567) == "₹12,34,567"
func Currency(amount float64) string {
	return CurrencyPlaces(amount, 0)
}

// CurrencyPlaces is Currency with places digits after the decimal point.
// NaN and infinite amounts render as Symbol + Undefined.
func CurrencyPlaces(amount float64, places int32) string {
	if undefined(amount) {
		return Symbol + Undefined
	}
	d := decimal.NewFromFloat(amount).Round(places)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	s := d.StringFixed(places)
	whole, frac, _ := strings.Cut(s, ".")

	out := sign + Symbol + group(whole)
	if frac != "" {
		out += "." + frac
	}
	return out
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)

	return strings.Join(parts, ",") + "," + tail
}

// Tenure renders months as "X years Y months", dropping a zero part and
// using the singular where it applies.
func Tenure(months int) string {
	if months <= 0 {
		return "0 months"
	}

	years, rest := months/12, months%12
	switch {
	case years == 0:
		return plural(rest, "month")
	case rest == 0:
		return plural(years, "year")
	}
	return plural(years, "year") + " " + plural(rest, "month")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Percent renders a ratio (0.325) as "32.5%".
func Percent(ratio float64) string {
	if undefined(ratio) || undefined(ratio*100) {
		return Undefined
	}
	return decimal.NewFromFloat(ratio*100).Round(1).StringFixed(1) + "%"
}
