package identity

import (
	"context"
	"errors"
	"strings"
)

// BearerPrefix is the only authorization scheme the service accepts.
const BearerPrefix = "Bearer "

var ErrMalformedToken = errors.New("authorization token missing or malformed")

// Gateway answers identity questions for a caller's credential.
// Implementations return an error on transport failures instead of answering false.
type Gateway interface {
	ExistsApplicant(ctx context.Context, identification, authHeader string) (bool, error)
	HasReviewerRole(ctx context.Context, identification, authHeader string) (bool, error)
}

// ParseBearer returns the opaque token of a "Bearer <token>" header.
func ParseBearer(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, BearerPrefix) {
		return "", ErrMalformedToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix))
	if token == "" {
		return "", ErrMalformedToken
	}
	return token, nil
}
