package identitymock

import (
	"context"

	"loan-request-service/internal/domain/identity"
)

var _ identity.Gateway = (*Gateway)(nil)

// Gateway is a function-backed identity.Gateway. Unset checks answer false.
type Gateway struct {
	ExistsApplicantFn func(ctx context.Context, identification, authHeader string) (bool, error)
	HasReviewerRoleFn func(ctx context.Context, identification, authHeader string) (bool, error)
}

// Allow answers true to every check.
func Allow() *Gateway {
	yes := func(context.Context, string, string) (bool, error) { return true, nil }
	return &Gateway{ExistsApplicantFn: yes, HasReviewerRoleFn: yes}
}

func (m *Gateway) ExistsApplicant(ctx context.Context, identification, authHeader string) (bool, error) {
	if m.ExistsApplicantFn != nil {
		return m.ExistsApplicantFn(ctx, identification, authHeader)
	}
	return false, nil
}

func (m *Gateway) HasReviewerRole(ctx context.Context, identification, authHeader string) (bool, error) {
	if m.HasReviewerRoleFn != nil {
		return m.HasReviewerRoleFn(ctx, identification, authHeader)
	}
	return false, nil
}
