package loantypemock

import (
	"context"

	domain "loan-request-service/internal/domain/loantype"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	GetByIDFn func(ctx context.Context, id uint64) (*domain.LoanType, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanType, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

// Fixed returns a Repo that serves lt for its own id and ErrNotFound otherwise.
func Fixed(lt domain.LoanType) *Repo {
	return &Repo{GetByIDFn: func(_ context.Context, id uint64) (*domain.LoanType, error) {
		if id != lt.ID {
			return nil, domain.ErrNotFound
		}
		c := lt
		return &c, nil
	}}
}
