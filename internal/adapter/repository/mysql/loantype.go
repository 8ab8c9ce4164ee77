package mysql

import (
	"context"
	"errors"

	loantypeDomain "loan-request-service/internal/domain/loantype"

	"gorm.io/gorm"
)

type LoanTypeRepository struct{ db *gorm.DB }

func NewLoanTypeRepository(db *gorm.DB) *LoanTypeRepository { return &LoanTypeRepository{db: db} }

func (r *LoanTypeRepository) GetByID(ctx context.Context, id uint64) (*loantypeDomain.LoanType, error) {
	var out loantypeDomain.LoanType
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loantypeDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}
