package identity

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domain "loan-request-service/internal/domain/identity"
)

var ErrTokenInvalid = errors.New("token is invalid")

// Claims is the token payload the local gateway trusts.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTGateway answers identity questions from a locally verified HS256 token.
// The subject claim carries the identification.
type JWTGateway struct {
	secret       []byte
	reviewerRole string
}

func NewJWTGateway(secret, reviewerRole string) *JWTGateway {
	return &JWTGateway{secret: []byte(secret), reviewerRole: reviewerRole}
}

func (g *JWTGateway) ExistsApplicant(_ context.Context, identification, authHeader string) (bool, error) {
	claims, err := g.parse(authHeader)
	if err != nil {
		return false, nil
	}
	return claims.Subject == identification, nil
}

func (g *JWTGateway) HasReviewerRole(_ context.Context, identification, authHeader string) (bool, error) {
	claims, err := g.parse(authHeader)
	if err != nil {
		return false, nil
	}
	return claims.Subject == identification && claims.Role == g.reviewerRole, nil
}

func (g *JWTGateway) parse(authHeader string) (*Claims, error) {
	raw, err := domain.ParseBearer(authHeader)
	if err != nil {
		return nil, err
	}
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return g.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrTokenInvalid
}

// Sign issues a token for identification. Used by local tooling and tests.
func (g *JWTGateway) Sign(identification, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identification,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "loan-request-service",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}
