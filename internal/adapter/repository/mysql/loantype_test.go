package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domain "loan-request-service/internal/domain/loantype"
)

func TestLoanType_GetByID(t *testing.T) {
	db := openTestDB(t)
	seeded := seedLoanType(t, db, "MORTGAGE", 7)
	repo := NewLoanTypeRepository(db)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "MORTGAGE" || !got.InterestRate.Equal(decimal.NewFromInt(7)) || !got.MaxAmount.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("unexpected loan type: %+v", got)
	}

	if _, err := repo.GetByID(ctx, seeded.ID+1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
