package requestmock

import (
	"context"

	domain "loan-request-service/internal/domain/request"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return context.Canceled, unset writes are no-ops.
type Repo struct {
	CreateFn                       func(ctx context.Context, l *domain.LoanRequest) error
	GetByIDFn                      func(ctx context.Context, id uint64) (*domain.LoanRequest, error)
	FindForManualReviewFn          func(ctx context.Context, f domain.ReviewFilter) ([]domain.ReviewRow, error)
	UpdateStateFn                  func(ctx context.Context, id uint64, state domain.State) (*domain.LoanRequest, domain.State, error)
	FindApprovedLoansByApplicantFn func(ctx context.Context, email string) ([]domain.ApprovedLoan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) FindForManualReview(ctx context.Context, f domain.ReviewFilter) ([]domain.ReviewRow, error) {
	if m.FindForManualReviewFn != nil {
		return m.FindForManualReviewFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateState(ctx context.Context, id uint64, state domain.State) (*domain.LoanRequest, domain.State, error) {
	if m.UpdateStateFn != nil {
		return m.UpdateStateFn(ctx, id, state)
	}
	return nil, "", context.Canceled
}

func (m *Repo) FindApprovedLoansByApplicant(ctx context.Context, email string) ([]domain.ApprovedLoan, error) {
	if m.FindApprovedLoansByApplicantFn != nil {
		return m.FindApprovedLoansByApplicantFn(ctx, email)
	}
	return nil, context.Canceled
}
