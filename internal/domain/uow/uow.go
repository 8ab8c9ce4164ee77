package uow

import (
	"context"

	"loan-request-service/internal/domain/request"
	"loan-request-service/internal/domain/review"
)

// Repos are bound to the same transaction.
type Repos struct {
	Requests request.Repository
	Reviews  review.Repository
}

type UnitOfWork interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
