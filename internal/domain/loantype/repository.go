package loantype

import "context"

type Repository interface {
	// GetByID returns ErrNotFound when the catalog has no such loan type.
	GetByID(ctx context.Context, id uint64) (*LoanType, error)
}
