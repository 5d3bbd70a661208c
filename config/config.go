package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/carloan/loan"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults the CLI starts from. Flags override it.
type Config struct {
	Loan          LoanConfig          `json:"loan" yaml:"loan"`
	Prepayment    PrepaymentConfig    `json:"prepayment" yaml:"prepayment"`
	Affordability AffordabilityConfig `json:"affordability" yaml:"affordability"`
	Journal       JournalConfig       `json:"journal" yaml:"journal"`
	Log           LogConfig           `json:"log" yaml:"log"`
}

// LoanConfig describes the car loan being evaluated
type LoanConfig struct {
	loan.Terms         `yaml:",inline"`
	VehiclePrice       float64 `json:"vehicle_price,omitempty" yaml:"vehicle_price,omitempty"`
	DownPaymentPercent float64 `json:"down_payment_percent,omitempty" yaml:"down_payment_percent,omitempty"`
}

// PrepaymentConfig contains prepayment and foreclosure parameters
type PrepaymentConfig struct {
	RateType           string              `json:"rate_type" yaml:"rate_type"` // "fixed" or "floating"
	PenaltyRatePercent float64             `json:"penalty_rate_percent" yaml:"penalty_rate_percent"`
	Plan               loan.PrepaymentPlan `json:"plan" yaml:"plan"`
}

// AffordabilityConfig contains the borrower's monthly figures
type AffordabilityConfig struct {
	MonthlyIncome float64 `json:"monthly_income" yaml:"monthly_income"`
	ExistingEMIs  float64 `json:"existing_emis" yaml:"existing_emis"`
	MaxFOIR       float64 `json:"max_foir" yaml:"max_foir"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type    string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	CSVFile string `json:"csv_file,omitempty" yaml:"csv_file,omitempty"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // "debug", "info", "warn", "error"
	Format string `json:"format" yaml:"format"` // "text" or "json"
}

// Terms returns the loan terms, deriving the principal from the vehicle
// price when no principal is set.
func (c *Config) Terms() loan.Terms {
	t := c.Loan.Terms
	if t.Principal <= 0 && c.Loan.VehiclePrice > 0 {
		t.Principal = loan.PrincipalFromPrice(c.Loan.VehiclePrice, c.Loan.DownPaymentPercent)
	}
	return t
}

// RateType parses the configured prepayment rate type.
func (c *Config) RateType() (loan.RateType, error) {
	return loan.ParseRateType(c.Prepayment.RateType)
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	t := c.Terms()
	if t.Principal <= 0 {
		return fmt.Errorf("loan.principal or loan.vehicle_price must be positive")
	}
	if t.AnnualRatePercent <= 0 {
		return fmt.Errorf("loan.annual_rate_percent must be positive")
	}
	if t.TenureMonths <= 0 {
		return fmt.Errorf("loan.tenure_months must be positive")
	}
	if c.Loan.DownPaymentPercent < 0 || c.Loan.DownPaymentPercent >= 100 {
		return fmt.Errorf("loan.down_payment_percent must be between 0 and 100")
	}
	if _, err := c.RateType(); err != nil {
		return fmt.Errorf("prepayment.rate_type: %w", err)
	}
	if c.Prepayment.PenaltyRatePercent < 0 {
		return fmt.Errorf("prepayment.penalty_rate_percent must not be negative")
	}
	if c.Prepayment.Plan.Amount < 0 || c.Prepayment.Plan.EveryMonths < 0 {
		return fmt.Errorf("prepayment.plan amount and every_months must not be negative")
	}
	if c.Affordability.MonthlyIncome < 0 || c.Affordability.ExistingEMIs < 0 {
		return fmt.Errorf("affordability figures must not be negative")
	}
	if c.Affordability.MaxFOIR <= 0 || c.Affordability.MaxFOIR > 1 {
		return fmt.Errorf("affordability.max_foir must be between 0 and 1")
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.CSVFile == "" {
			return fmt.Errorf("journal csv_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'text' or 'json'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Loan: LoanConfig{
			Terms: loan.Terms{
				Principal:         800000,
				AnnualRatePercent: 8,
				TenureMonths:      36,
			},
		},
		Prepayment: PrepaymentConfig{
			RateType:           string(loan.RateFloating),
			PenaltyRatePercent: 2,
			Plan:               loan.Yearly(16000),
		},
		Affordability: AffordabilityConfig{
			MaxFOIR: loan.StretchedRatio,
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
