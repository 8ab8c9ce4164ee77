package review

import "context"

type Repository interface {
	Create(ctx context.Context, r *Review) error

	// ListByRequestID returns the trail oldest first.
	ListByRequestID(ctx context.Context, requestID uint64) ([]Review, error)
}
