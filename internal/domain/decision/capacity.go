package decision

import "github.com/shopspring/decimal"

var (
	// CapacityRatio is the share of declared income an applicant may commit to monthly installments.
	CapacityRatio = decimal.RequireFromString("0.35")
	// LeverageMultiple is the income multiple above which an affordable request still goes to manual review.
	LeverageMultiple = decimal.NewFromInt(5)
)

// Input gathers everything the engine needs; fetching it is the caller's job.
type Input struct {
	Amount        decimal.Decimal
	Term          int
	AnnualRate    decimal.Decimal // rate of the requested loan type
	Income        decimal.NullDecimal
	ApprovedLoans []Loan
}

// DebtLoad sums the monthly installments of loans the applicant already carries.
func DebtLoad(loans []Loan) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range loans {
		inst, err := MonthlyInstallment(l.Principal, l.AnnualRate, l.Term)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(inst)
	}
	return total, nil
}

// Evaluate classifies a new request against the applicant's affordability.
// An absent income counts as zero.
func Evaluate(in Input) (*Result, error) {
	income := decimal.Zero
	if in.Income.Valid {
		income = in.Income.Decimal
	}
	maxObligation := income.Mul(CapacityRatio)

	debt, err := DebtLoad(in.ApprovedLoans)
	if err != nil {
		return nil, err
	}
	available := maxObligation.Sub(debt)

	installment, err := MonthlyInstallment(in.Amount, in.AnnualRate, in.Term)
	if err != nil {
		return nil, err
	}

	var outcome Outcome
	switch {
	case installment.GreaterThan(available):
		outcome = OutcomeRejected
	case in.Amount.GreaterThan(income.Mul(LeverageMultiple)):
		outcome = OutcomeManualReview
	default:
		outcome = OutcomeApproved
	}

	plan, err := GeneratePaymentPlan(in.Amount, in.AnnualRate, in.Term)
	if err != nil {
		return nil, err
	}

	return &Result{
		Decision:           outcome,
		MonthlyInstallment: installment,
		AvailableCapacity:  available,
		DebtLoad:           debt,
		PaymentPlan:        plan,
	}, nil
}
