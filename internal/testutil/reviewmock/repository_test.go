package reviewmock

import (
	"context"
	"errors"
	"testing"

	domain "loan-request-service/internal/domain/review"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	r := &domain.Review{ReviewID: "RV-1", RequestID: 123}

	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(_ context.Context, got *domain.Review) error {
			if got != r {
				t.Fatalf("arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, r); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}

	m = &Repo{}
	if err := m.Create(ctx, r); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_ListByRequestID(t *testing.T) {
	ctx := context.Background()
	m := &Repo{
		ListByRequestIDFn: func(_ context.Context, id uint64) ([]domain.Review, error) {
			return []domain.Review{{RequestID: id}}, nil
		},
	}
	got, err := m.ListByRequestID(ctx, 456)
	if err != nil || len(got) != 1 || got[0].RequestID != 456 {
		t.Fatalf("ListByRequestID: got %+v, %v", got, err)
	}

	m = &Repo{}
	if _, err := m.ListByRequestID(ctx, 456); err != context.Canceled {
		t.Fatalf("ListByRequestID default: want context.Canceled, got %v", err)
	}
}
