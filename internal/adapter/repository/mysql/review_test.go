package mysql

import (
	"context"
	"testing"
	"time"

	requestDomain "loan-request-service/internal/domain/request"
	reviewDomain "loan-request-service/internal/domain/review"
	"loan-request-service/pkg/id"
)

func makeReview(requestID uint64, from, to requestDomain.State, at time.Time) *reviewDomain.Review {
	return &reviewDomain.Review{
		RequestID:              requestID,
		ReviewID:               id.NewID32(),
		FromState:              from,
		ToState:                to,
		ReviewerIdentification: "ADV-1",
		ReviewedAt:             at.UTC(),
	}
}

func TestReview_CreateAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	// inserted out of order on purpose
	for _, rv := range []*reviewDomain.Review{
		makeReview(1, requestDomain.StateManualReview, requestDomain.StateApproved, now),
		makeReview(1, requestDomain.StatePendingReview, requestDomain.StateManualReview, now.Add(-time.Hour)),
		makeReview(2, requestDomain.StatePendingReview, requestDomain.StateRejected, now),
	} {
		if err := repo.Create(ctx, rv); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if rv.ID == 0 {
			t.Fatalf("Create did not set auto-increment ID")
		}
	}

	got, err := repo.ListByRequestID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByRequestID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 reviews, got %d", len(got))
	}
	if got[0].ToState != requestDomain.StateManualReview || got[1].ToState != requestDomain.StateApproved {
		t.Fatalf("reviews not oldest first: %+v", got)
	}

	empty, err := repo.ListByRequestID(ctx, 3)
	if err != nil || len(empty) != 0 {
		t.Fatalf("want empty, got %+v, %v", empty, err)
	}
}
