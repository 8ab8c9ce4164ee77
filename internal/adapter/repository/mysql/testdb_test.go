package mysql

import (
	"testing"

	"github.com/shopspring/decimal"

	"loan-request-service/internal/domain/loantype"
	"loan-request-service/internal/domain/request"
	"loan-request-service/internal/domain/review"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the service schema.
// One connection only: every new sqlite connection would see its own empty database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&loantype.LoanType{}, &request.LoanRequest{}, &review.Review{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedLoanType(t *testing.T, db *gorm.DB, name string, rate int64) *loantype.LoanType {
	t.Helper()
	lt := &loantype.LoanType{
		Name:         name,
		MinAmount:    decimal.NewFromInt(100),
		MaxAmount:    decimal.NewFromInt(100000),
		InterestRate: decimal.NewFromInt(rate),
	}
	if err := db.Create(lt).Error; err != nil {
		t.Fatalf("seed loan type: %v", err)
	}
	return lt
}

func makeRequest(email string, amount int64, term int, loanTypeID uint64, state request.State) *request.LoanRequest {
	return &request.LoanRequest{
		Email:          email,
		Identification: "CC-" + email,
		Amount:         decimal.NewFromInt(amount),
		Term:           term,
		LoanTypeID:     loanTypeID,
		State:          state,
	}
}
