package request

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"loan-request-service/internal/domain/decision"
	"loan-request-service/internal/domain/identity"
	"loan-request-service/internal/domain/loantype"
	"loan-request-service/internal/domain/notify"
	domain "loan-request-service/internal/domain/request"
	"loan-request-service/internal/domain/review"
	"loan-request-service/internal/domain/uow"
	"loan-request-service/pkg/id"
	"loan-request-service/pkg/pagination"
)

// Recorder receives lifecycle counters. A nil Recorder is allowed.
type Recorder interface {
	ObserveDecision(outcome string)
	ObserveNotificationFailure(kind string)
}

const (
	notifyKindState    = "state"
	notifyKindCapacity = "capacity"
)

type Usecase struct {
	requests  domain.Repository
	loanTypes loantype.Repository
	identity  identity.Gateway
	notifier  notify.Notifier
	uow       uow.UnitOfWork
	metrics   Recorder
	now       func() time.Time
}

// NewUsecase: the UoW must bind the same request store used for reads.
func NewUsecase(
	requests domain.Repository,
	loanTypes loantype.Repository,
	ids identity.Gateway,
	notifier notify.Notifier,
	tx uow.UnitOfWork,
) *Usecase {
	return &Usecase{
		requests:  requests,
		loanTypes: loanTypes,
		identity:  ids,
		notifier:  notifier,
		uow:       tx,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *Usecase) WithMetrics(m Recorder) *Usecase {
	u.metrics = m
	return u
}

// Submit validates a draft, checks the applicant and the loan type, and persists it as PENDING_REVIEW.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput, authHeader string) (*RequestDTO, error) {
	if err := validateDraft(in.Email, in.Amount, in.Term); err != nil {
		return nil, err
	}
	if err := u.authorizeApplicant(ctx, in.Identification, authHeader); err != nil {
		return nil, err
	}
	if _, err := resolveEligibility(ctx, u.loanTypes, in.LoanTypeID, in.Amount); err != nil {
		return nil, err
	}

	l := &domain.LoanRequest{
		Email:          in.Email,
		Identification: in.Identification,
		Amount:         in.Amount,
		Term:           in.Term,
		LoanTypeID:     in.LoanTypeID,
		State:          domain.StatePendingReview,
		Income:         in.Income,
	}
	if err := u.requests.Create(ctx, l); err != nil {
		return nil, err
	}
	return toRequestDTO(l), nil
}

// ListForManualReview returns one page of the advisor queue, newest first.
func (u *Usecase) ListForManualReview(ctx context.Context, in ListInput, authHeader string) ([]ReviewItemDTO, error) {
	if err := u.authorizeReviewer(ctx, in.Identification, authHeader, domain.ErrForbidden); err != nil {
		return nil, err
	}

	p := pagination.New(in.Page, in.Size)
	rows, err := u.requests.FindForManualReview(ctx, domain.ReviewFilter{
		Page:   p.Page,
		Size:   p.Size,
		Filter: strings.TrimSpace(in.Filter),
	})
	if err != nil {
		return nil, err
	}

	debts := make(map[string]decimal.Decimal, len(rows))
	out := make([]ReviewItemDTO, 0, len(rows))
	for _, row := range rows {
		debt, ok := debts[row.Email]
		if !ok {
			debt, err = u.monthlyDebt(ctx, row.Email)
			if err != nil {
				return nil, err
			}
			debts[row.Email] = debt
		}
		out = append(out, ReviewItemDTO{
			ID:               row.ID,
			Email:            row.Email,
			Identification:   row.Identification,
			Amount:           row.Amount,
			Term:             row.Term,
			State:            string(row.State),
			LoanType:         row.LoanTypeName,
			InterestRate:     row.InterestRate,
			TotalMonthlyDebt: debt,
		})
	}
	return out, nil
}

// UpdateState moves a request to an advisor-chosen state and records the review in the same transaction.
// The applicant notification is best effort.
func (u *Usecase) UpdateState(ctx context.Context, in UpdateStateInput, authHeader string) (*RequestDTO, error) {
	switch {
	case in.RequestID == 0:
		return nil, fmt.Errorf("%w: request id is required", domain.ErrInvalidInput)
	case in.State == "":
		return nil, fmt.Errorf("%w: state is required", domain.ErrInvalidInput)
	case !in.State.Valid() || in.State == domain.StatePendingReview:
		return nil, fmt.Errorf("%w: unknown target state %q", domain.ErrInvalidInput, in.State)
	case strings.TrimSpace(in.Identification) == "":
		return nil, fmt.Errorf("%w: identification is required", domain.ErrInvalidInput)
	}
	if err := u.authorizeReviewer(ctx, in.Identification, authHeader, domain.ErrUnauthorized); err != nil {
		return nil, err
	}

	var updated *domain.LoanRequest
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var (
			from domain.State
			err  error
		)
		updated, from, err = r.Requests.UpdateState(ctx, in.RequestID, in.State)
		if err != nil {
			return err
		}

		return r.Reviews.Create(ctx, &review.Review{
			RequestID:              updated.ID,
			ReviewID:               id.NewID32(),
			FromState:              from,
			ToState:                updated.State,
			ReviewerIdentification: in.Identification,
			ReviewedAt:             u.now(),
		})
	})
	if err != nil {
		return nil, err
	}

	if msg, err := stateChangedMessage(updated); err != nil {
		log.Printf("request %d: build state notification: %v", updated.ID, err)
	} else {
		u.deliver(ctx, notifyKindState, msg)
	}
	return toRequestDTO(updated), nil
}

// History returns the review trail of a request, oldest first.
func (u *Usecase) History(ctx context.Context, requestID uint64, identification, authHeader string) ([]ReviewDTO, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("%w: request id is required", domain.ErrInvalidInput)
	}
	if err := u.authorizeReviewer(ctx, identification, authHeader, domain.ErrForbidden); err != nil {
		return nil, err
	}

	var out []ReviewDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Requests.GetByID(ctx, requestID); err != nil {
			return err
		}
		trail, err := r.Reviews.ListByRequestID(ctx, requestID)
		if err != nil {
			return err
		}
		out = make([]ReviewDTO, 0, len(trail))
		for _, rv := range trail {
			out = append(out, toReviewDTO(rv))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EvaluateCapacity prices a draft against the applicant's income and already approved debt.
// Nothing is persisted. The outcome is announced best effort.
func (u *Usecase) EvaluateCapacity(ctx context.Context, in CapacityInput, authHeader string) (*decision.Result, error) {
	if err := validateDraft(in.Email, in.Amount, in.Term); err != nil {
		return nil, err
	}
	if err := u.authorizeApplicant(ctx, in.Identification, authHeader); err != nil {
		return nil, err
	}
	lt, err := resolveEligibility(ctx, u.loanTypes, in.LoanTypeID, in.Amount)
	if err != nil {
		return nil, err
	}

	approved, err := u.requests.FindApprovedLoansByApplicant(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	res, err := decision.Evaluate(decision.Input{
		Amount:        in.Amount,
		Term:          in.Term,
		AnnualRate:    lt.InterestRate,
		Income:        in.Income,
		ApprovedLoans: toDecisionLoans(approved),
	})
	if err != nil {
		return nil, err
	}
	if u.metrics != nil {
		u.metrics.ObserveDecision(string(res.Decision))
	}

	u.deliver(ctx, notifyKindCapacity, capacityMessage(in.RequestID, in.Email, res))
	return res, nil
}

func (u *Usecase) monthlyDebt(ctx context.Context, email string) (decimal.Decimal, error) {
	approved, err := u.requests.FindApprovedLoansByApplicant(ctx, email)
	if err != nil {
		return decimal.Zero, err
	}
	return decision.DebtLoad(toDecisionLoans(approved))
}

func (u *Usecase) authorizeApplicant(ctx context.Context, identification, authHeader string) error {
	if _, err := identity.ParseBearer(authHeader); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	ok, err := u.identity.ExistsApplicant(ctx, identification, authHeader)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: applicant %q is not registered", domain.ErrUnauthorized, identification)
	}
	return nil
}

// authorizeReviewer fails with denied when the caller lacks the reviewer role.
func (u *Usecase) authorizeReviewer(ctx context.Context, identification, authHeader string, denied error) error {
	if _, err := identity.ParseBearer(authHeader); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	ok, err := u.identity.HasReviewerRole(ctx, identification, authHeader)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q is not a reviewer", denied, identification)
	}
	return nil
}

func (u *Usecase) deliver(ctx context.Context, kind, msg string) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Send(ctx, msg); err != nil {
		log.Printf("notify %s: %v", kind, err)
		if u.metrics != nil {
			u.metrics.ObserveNotificationFailure(kind)
		}
	}
}

func toDecisionLoans(in []domain.ApprovedLoan) []decision.Loan {
	out := make([]decision.Loan, 0, len(in))
	for _, a := range in {
		out = append(out, decision.Loan{Principal: a.Principal, AnnualRate: a.AnnualRate, Term: a.Term})
	}
	return out
}
