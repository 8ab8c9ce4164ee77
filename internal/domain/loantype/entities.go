package loantype

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("loan type not found")

// Table: loan_types. Maintained by catalog management, read-only here.
type LoanType struct {
	ID                  uint64          `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name                string          `gorm:"column:name;size:120;not null" json:"name"`
	MinAmount           decimal.Decimal `gorm:"column:min_amount;type:decimal(18,2);not null" json:"min_amount"`
	MaxAmount           decimal.Decimal `gorm:"column:max_amount;type:decimal(18,2);not null" json:"max_amount"`
	InterestRate        decimal.Decimal `gorm:"column:interest_rate;type:decimal(6,2);not null" json:"interest_rate"` // annual, percent
	AutomaticValidation bool            `gorm:"column:automatic_validation;not null;default:false" json:"automatic_validation"`
}

func (LoanType) TableName() string { return "loan_types" }

// Covers reports whether amount is inside [MinAmount, MaxAmount].
func (lt *LoanType) Covers(amount decimal.Decimal) bool {
	return !amount.LessThan(lt.MinAmount) && !amount.GreaterThan(lt.MaxAmount)
}
