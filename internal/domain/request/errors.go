package request

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrLoanTypeNotFound = errors.New("loan type not found")
	ErrAmountOutOfRange = errors.New("amount out of range")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("loan request not found")
)

// ValidationError names the offending field of a draft.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }
func (e *ValidationError) Unwrap() error { return ErrValidation }

type LoanTypeNotFoundError struct{ ID uint64 }

func (e *LoanTypeNotFoundError) Error() string {
	return fmt.Sprintf("loan type %d does not exist", e.ID)
}
func (e *LoanTypeNotFoundError) Unwrap() error { return ErrLoanTypeNotFound }

// AmountOutOfRangeError carries the violated bounds for the user-facing message.
type AmountOutOfRangeError struct {
	Amount   decimal.Decimal
	Min      decimal.Decimal
	Max      decimal.Decimal
	LoanType string
}

func (e *AmountOutOfRangeError) Error() string {
	return fmt.Sprintf("amount %s must be between %s and %s for loan type %s",
		e.Amount.StringFixed(2), e.Min.StringFixed(2), e.Max.StringFixed(2), e.LoanType)
}
func (e *AmountOutOfRangeError) Unwrap() error { return ErrAmountOutOfRange }
