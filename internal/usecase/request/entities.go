package request

import (
	"time"

	"github.com/shopspring/decimal"

	domain "loan-request-service/internal/domain/request"
	"loan-request-service/internal/domain/review"
)

// SubmitInput is an applicant's loan-request draft.
type SubmitInput struct {
	Email          string              `json:"email"`
	Identification string              `json:"identification"`
	Amount         decimal.Decimal     `json:"amount"`
	Term           int                 `json:"term"`
	LoanTypeID     uint64              `json:"loan_type_id"`
	Income         decimal.NullDecimal `json:"income"`
}

// CapacityInput is a draft evaluated for affordability. RequestID is optional and only
// labels the outcome notification.
type CapacityInput struct {
	SubmitInput
	RequestID uint64 `json:"request_id"`
}

type ListInput struct {
	Page           int
	Size           int
	Filter         string
	Identification string
}

type UpdateStateInput struct {
	RequestID      uint64
	State          domain.State
	Identification string
}

type RequestDTO struct {
	ID             uint64              `json:"id"`
	Email          string              `json:"email"`
	Identification string              `json:"identification"`
	Amount         decimal.Decimal     `json:"amount"`
	Term           int                 `json:"term"`
	LoanTypeID     uint64              `json:"loan_type_id"`
	State          string              `json:"state"`
	Income         decimal.NullDecimal `json:"income"`
	CreatedAt      time.Time           `json:"created_at"`
}

// ReviewItemDTO is one row of the advisor queue.
type ReviewItemDTO struct {
	ID               uint64          `json:"id"`
	Email            string          `json:"email"`
	Identification   string          `json:"identification"`
	Amount           decimal.Decimal `json:"amount"`
	Term             int             `json:"term"`
	State            string          `json:"state"`
	LoanType         string          `json:"loan_type"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	TotalMonthlyDebt decimal.Decimal `json:"total_monthly_debt"`
}

type ReviewDTO struct {
	ReviewID   string    `json:"review_id"`
	RequestID  uint64    `json:"request_id"`
	FromState  string    `json:"from_state"`
	ToState    string    `json:"to_state"`
	ReviewedBy string    `json:"reviewed_by"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

func toRequestDTO(l *domain.LoanRequest) *RequestDTO {
	return &RequestDTO{
		ID:             l.ID,
		Email:          l.Email,
		Identification: l.Identification,
		Amount:         l.Amount,
		Term:           l.Term,
		LoanTypeID:     l.LoanTypeID,
		State:          string(l.State),
		Income:         l.Income,
		CreatedAt:      l.CreatedAt,
	}
}

func toReviewDTO(r review.Review) ReviewDTO {
	return ReviewDTO{
		ReviewID:   r.ReviewID,
		RequestID:  r.RequestID,
		FromState:  string(r.FromState),
		ToState:    string(r.ToState),
		ReviewedBy: r.ReviewerIdentification,
		ReviewedAt: r.ReviewedAt,
	}
}
