package review

import (
	"time"

	"loan-request-service/internal/domain/request"
)

// Table: loan_request_reviews. One row per advisor state change.
type Review struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RequestID uint64 `gorm:"column:request_id;not null;index" json:"request_id"`
	// Public identifier (32-char lowercase hex)
	ReviewID               string        `gorm:"column:review_id;type:char(32);not null;uniqueIndex" json:"review_id"`
	FromState              request.State `gorm:"column:from_state;size:32;not null" json:"from_state"`
	ToState                request.State `gorm:"column:to_state;size:32;not null" json:"to_state"`
	ReviewerIdentification string        `gorm:"column:reviewer_identification;size:64;not null" json:"reviewer_identification"`
	ReviewedAt             time.Time     `gorm:"column:reviewed_at;not null" json:"reviewed_at"`
	CreatedAt              time.Time     `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Review) TableName() string { return "loan_request_reviews" }
