package loan

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLoanInputs is matched by every *InputError.
	ErrInvalidLoanInputs = errors.New("invalid loan inputs")

	// ErrInvalidLoanState is returned when an installment does not cover the
	// monthly interest on the balance, so the loan never amortizes.
	ErrInvalidLoanState = errors.New("invalid loan state")
)

// InputError names the field that failed strict validation.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %g)", ErrInvalidLoanInputs, e.Field, e.Reason, e.Value)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidLoanInputs
}

func positive(field string, v float64) error {
	if v > 0 {
		return nil
	}
	return &InputError{Field: field, Value: v, Reason: "must be positive"}
}

func nonNegative(field string, v float64) error {
	if v >= 0 {
		return nil
	}
	return &InputError{Field: field, Value: v, Reason: "must not be negative"}
}

func notCovered(emi, interest float64) error {
	return fmt.Errorf("%w: installment %.2f does not cover monthly interest %.2f", ErrInvalidLoanState, emi, interest)
}
