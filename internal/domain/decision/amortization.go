package decision

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var ErrInvalidTerm = errors.New("months must be > 0")

// periodRatePrecision is the number of fractional digits kept for the per-period rate in schedules.
const periodRatePrecision = 10

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// MonthlyInstallment returns the fixed French-amortization installment rounded half-up to cents.
func MonthlyInstallment(principal, annualRatePercent decimal.Decimal, months int) (decimal.Decimal, error) {
	if months <= 0 {
		return decimal.Zero, ErrInvalidTerm
	}
	i := annualRatePercent.InexactFloat64() / 12.0 / 100.0
	if i == 0 {
		return principal.Div(decimal.NewFromInt(int64(months))).Round(2), nil
	}
	p := principal.InexactFloat64()
	payment := (p * i) / (1 - math.Pow(1+i, -float64(months)))
	return decimal.NewFromFloat(payment).Round(2), nil
}

// GeneratePaymentPlan builds the month-by-month schedule for a loan.
// The running balance is kept unrounded; only the emitted rows are rounded.
// Rounding drift left after the last row is floored at zero.
func GeneratePaymentPlan(principal, annualRatePercent decimal.Decimal, months int) ([]PaymentInstallment, error) {
	payment, err := MonthlyInstallment(principal, annualRatePercent, months)
	if err != nil {
		return nil, err
	}
	periodRate := annualRatePercent.
		DivRound(hundred, periodRatePrecision).
		DivRound(twelve, periodRatePrecision)

	plan := make([]PaymentInstallment, 0, months)
	remaining := principal
	for n := 1; n <= months; n++ {
		interest := remaining.Mul(periodRate)
		capital := payment.Sub(interest)
		remaining = remaining.Sub(capital)

		plan = append(plan, PaymentInstallment{
			Number:           n,
			CapitalPayment:   capital.Round(2),
			InterestPayment:  interest.Round(2),
			RemainingBalance: decimal.Max(remaining, decimal.Zero).Round(2),
		})
	}
	return plan, nil
}
