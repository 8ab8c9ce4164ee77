package mysql

import (
	"context"

	reviewDomain "loan-request-service/internal/domain/review"

	"gorm.io/gorm"
)

type ReviewRepository struct{ db *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{db: db} }

func (r *ReviewRepository) Create(ctx context.Context, rv *reviewDomain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) ListByRequestID(ctx context.Context, requestID uint64) ([]reviewDomain.Review, error) {
	var out []reviewDomain.Review
	res := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("reviewed_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
