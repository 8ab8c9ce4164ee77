package request

import (
	"regexp"

	"github.com/shopspring/decimal"

	domain "loan-request-service/internal/domain/request"
)

const (
	minTerm = 1
	maxTerm = 36
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

// validateDraft checks applicant-supplied fields. It never touches a collaborator.
func validateDraft(email string, amount decimal.Decimal, term int) error {
	if email == "" || !reEmail.MatchString(email) {
		return &domain.ValidationError{Field: "email", Message: "email is not valid"}
	}
	if !amount.IsPositive() {
		return &domain.ValidationError{Field: "amount", Message: "amount must be greater than 0"}
	}
	if term < minTerm || term > maxTerm {
		return &domain.ValidationError{Field: "term", Message: "term must be between 1 and 36 months"}
	}
	return nil
}
