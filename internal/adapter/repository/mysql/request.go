package mysql

import (
	"context"
	"errors"
	"strings"

	requestDomain "loan-request-service/internal/domain/request"
	"loan-request-service/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestRepository struct{ db *gorm.DB }

// likeEscaper makes % and _ in a filter match literally. '!' is the ESCAPE character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, l *requestDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *RequestRepository) GetByID(ctx context.Context, id uint64) (*requestDomain.LoanRequest, error) {
	var out requestDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, requestDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *RequestRepository) FindForManualReview(ctx context.Context, f requestDomain.ReviewFilter) ([]requestDomain.ReviewRow, error) {
	states := make([]string, 0, len(requestDomain.ReviewStates))
	for _, s := range requestDomain.ReviewStates {
		states = append(states, string(s))
	}

	q := r.db.WithContext(ctx).
		Table("loan_requests AS r").
		Select("r.id, r.email, r.identification, r.amount, r.term, r.state, lt.name AS loan_type_name, lt.interest_rate").
		Joins("JOIN loan_types AS lt ON lt.id = r.loan_type_id").
		Where("r.state IN ?", states)
	if f.Filter != "" {
		q = q.Where("LOWER(r.email) LIKE ? ESCAPE '!'", "%"+likeEscaper.Replace(strings.ToLower(f.Filter))+"%")
	}

	var out []requestDomain.ReviewRow
	res := q.Order("r.id DESC").
		Limit(f.Size).
		Offset(pagination.Params{Page: f.Page, Size: f.Size}.Offset()).
		Scan(&out)
	return out, res.Error
}

// UpdateState reads with SELECT ... FOR UPDATE and writes through the same handle.
// Inside a UoW concurrent reviewers of one request are serialised on the row lock.
func (r *RequestRepository) UpdateState(ctx context.Context, id uint64, state requestDomain.State) (*requestDomain.LoanRequest, requestDomain.State, error) {
	db := r.db.WithContext(ctx)

	var out requestDomain.LoanRequest
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", requestDomain.ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	prev := out.State
	if err := db.Model(&out).Update("state", state).Error; err != nil {
		return nil, "", err
	}
	out.State = state
	return &out, prev, nil
}

func (r *RequestRepository) FindApprovedLoansByApplicant(ctx context.Context, email string) ([]requestDomain.ApprovedLoan, error) {
	var out []requestDomain.ApprovedLoan
	res := r.db.WithContext(ctx).
		Table("loan_requests AS r").
		Select("r.amount AS principal, r.term, lt.interest_rate AS annual_rate").
		Joins("JOIN loan_types AS lt ON lt.id = r.loan_type_id").
		Where("r.email = ? AND r.state = ?", email, string(requestDomain.StateApproved)).
		Order("r.id ASC").
		Scan(&out)
	return out, res.Error
}
