package decision

import "github.com/shopspring/decimal"

type Outcome string

const (
	OutcomeApproved     Outcome = "APPROVED"
	OutcomeRejected     Outcome = "REJECTED"
	OutcomeManualReview Outcome = "MANUAL_REVIEW"
)

// PaymentInstallment is one row of an amortization schedule. Amounts are rounded to cents.
type PaymentInstallment struct {
	Number           int             `json:"number"`
	CapitalPayment   decimal.Decimal `json:"capital_payment"`
	InterestPayment  decimal.Decimal `json:"interest_payment"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// Result is the outcome of a capacity evaluation.
type Result struct {
	Decision           Outcome              `json:"decision"`
	MonthlyInstallment decimal.Decimal      `json:"monthly_installment"`
	AvailableCapacity  decimal.Decimal      `json:"available_capacity"`
	DebtLoad           decimal.Decimal      `json:"debt_load"`
	PaymentPlan        []PaymentInstallment `json:"payment_plan"`
}

// Loan is the minimum an existing obligation needs to price its installment.
type Loan struct {
	Principal  decimal.Decimal
	AnnualRate decimal.Decimal // percent, 12 means 12%
	Term       int
}
