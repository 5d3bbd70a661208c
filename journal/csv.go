package journal

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rustyeddy/carloan/loan"
	"github.com/shopspring/decimal"
)

var scenarioHeader = []string{
	"id", "kind", "principal", "annual_rate_percent", "tenure_months", "emi", "input",
	"new_tenure_months", "new_emi", "interest_saved", "net_savings", "note", "created_at",
}

// CSV appends scenarios to a flat file. A new or empty file gets a header.
type CSV struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSV, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(scenarioHeader); err != nil {
			_ = f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return &CSV{w: w, f: f}, nil
}

func (j *CSV) RecordScenario(s ScenarioRecord) error {
	err := j.w.Write([]string{
		s.ID,
		string(s.Kind),
		f(s.Principal),
		f(s.AnnualRatePercent),
		strconv.Itoa(s.TenureMonths),
		f(s.EMI),
		f(s.Input),
		strconv.Itoa(s.NewTenureMonths),
		f(s.NewEMI),
		f(s.InterestSaved),
		f(s.NetSavings),
		s.Note,
		s.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		_ = j.f.Close()
		return err
	}
	return j.f.Close()
}

var scheduleHeader = []string{"month", "opening", "payment", "interest", "principal", "prepayment", "closing"}

// WriteScheduleCSV writes one row per installment, amounts rounded to
// paise.
func WriteScheduleCSV(w io.Writer, s loan.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(scheduleHeader); err != nil {
		return err
	}
	for _, in := range s.Installments {
		err := cw.Write([]string{
			strconv.Itoa(in.Month),
			money(in.Opening),
			money(in.Payment),
			money(in.Interest),
			money(in.Principal),
			money(in.Prepayment),
			money(in.Closing),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func money(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}
