package reviewmock

import (
	"context"

	domain "loan-request-service/internal/domain/review"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, r *domain.Review) error
	ListByRequestIDFn func(ctx context.Context, requestID uint64) ([]domain.Review, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Review) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListByRequestID(ctx context.Context, requestID uint64) ([]domain.Review, error) {
	if m.ListByRequestIDFn != nil {
		return m.ListByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}
