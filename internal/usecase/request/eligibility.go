package request

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"loan-request-service/internal/domain/loantype"
	domain "loan-request-service/internal/domain/request"
)

// resolveEligibility looks the loan type up and checks the amount against its bounds.
func resolveEligibility(ctx context.Context, catalog loantype.Repository, loanTypeID uint64, amount decimal.Decimal) (*loantype.LoanType, error) {
	lt, err := catalog.GetByID(ctx, loanTypeID)
	if err != nil {
		if errors.Is(err, loantype.ErrNotFound) {
			return nil, &domain.LoanTypeNotFoundError{ID: loanTypeID}
		}
		return nil, err
	}
	if !lt.Covers(amount) {
		return nil, &domain.AmountOutOfRangeError{
			Amount:   amount,
			Min:      lt.MinAmount,
			Max:      lt.MaxAmount,
			LoanType: lt.Name,
		}
	}
	return lt, nil
}
