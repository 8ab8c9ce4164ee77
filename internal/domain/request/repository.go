package request

import "context"

type Repository interface {
	// Create assigns the identifier on l.
	Create(ctx context.Context, l *LoanRequest) error

	GetByID(ctx context.Context, id uint64) (*LoanRequest, error)

	// FindForManualReview returns rows in descending identifier order.
	FindForManualReview(ctx context.Context, f ReviewFilter) ([]ReviewRow, error)

	// UpdateState locks the row, writes state and returns the row with the state it held before.
	// It returns ErrNotFound when no request has the id.
	UpdateState(ctx context.Context, id uint64, state State) (*LoanRequest, State, error)

	FindApprovedLoansByApplicant(ctx context.Context, email string) ([]ApprovedLoan, error)
}
