package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type State string

const (
	StatePendingReview State = "PENDING_REVIEW"
	StateApproved      State = "APPROVED"
	StateRejected      State = "REJECTED"
	StateManualReview  State = "MANUAL_REVIEW"
)

// Valid reports whether s is one of the known lifecycle states.
func (s State) Valid() bool {
	switch s {
	case StatePendingReview, StateApproved, StateRejected, StateManualReview:
		return true
	}
	return false
}

// ReviewStates are the states listed to advisors for manual review.
var ReviewStates = []State{StatePendingReview, StateRejected, StateManualReview}

// Table: loan_requests
type LoanRequest struct {
	ID             uint64              `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Email          string              `gorm:"column:email;size:255;not null;index:idx_loan_requests_email_state" json:"email"`
	Identification string              `gorm:"column:identification;size:64;not null" json:"identification"`
	Amount         decimal.Decimal     `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	Term           int                 `gorm:"column:term;not null" json:"term"`
	LoanTypeID     uint64              `gorm:"column:loan_type_id;not null;index" json:"loan_type_id"`
	State          State               `gorm:"column:state;size:32;not null;index:idx_loan_requests_email_state" json:"state"`
	Income         decimal.NullDecimal `gorm:"column:income;type:decimal(18,2)" json:"income"`
	CreatedAt      time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LoanRequest) TableName() string { return "loan_requests" }

// ReviewRow is a request joined with its loan type, as shown in the advisor queue.
type ReviewRow struct {
	ID             uint64
	Email          string
	Identification string
	Amount         decimal.Decimal
	Term           int
	State          State
	LoanTypeName   string
	InterestRate   decimal.Decimal
}

// ApprovedLoan is a prior approved request priced with its loan type's rate.
type ApprovedLoan struct {
	Principal  decimal.Decimal
	Term       int
	AnnualRate decimal.Decimal
}

// ReviewFilter narrows the manual-review listing. Page is 0-based.
type ReviewFilter struct {
	Page   int
	Size   int
	Filter string // substring of the applicant email, empty means no filter
}
