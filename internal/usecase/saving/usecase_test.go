package saving

import (
	"context"
	"errors"
	"testing"
	"time"

	"koperasi-backend/internal/domain/errs"
	domain "koperasi-backend/internal/domain/saving"
	"koperasi-backend/internal/testutil/savingmock"
)

func TestRecord_Success(t *testing.T) {
	var created *domain.SavingRecord
	uc := NewUsecase(&savingmock.Repo{
		CreateFn: func(ctx context.Context, s *domain.SavingRecord) error {
			created = s
			return nil
		},
	})

	dto, err := uc.Record(context.Background(), RecordInput{
		MemberID:   "4",
		MemberName: "Rina Wijaya",
		Category:   domain.CategoryVoluntary,
		Amount:     250_000,
		Date:       time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Record err: %v", err)
	}
	if len(dto.SavingID) != 32 {
		t.Fatalf("SavingID length = %d", len(dto.SavingID))
	}
	if created == nil || created.Amount != 250_000 {
		t.Fatal("record not persisted")
	}
}

func TestRecord_RejectsNonPositiveAmount(t *testing.T) {
	uc := NewUsecase(&savingmock.Repo{
		CreateFn: func(ctx context.Context, s *domain.SavingRecord) error {
			t.Fatal("Create must not be called")
			return nil
		},
	})
	for _, amt := range []int64{0, -500} {
		_, err := uc.Record(context.Background(), RecordInput{
			MemberName: "Rina Wijaya",
			Category:   domain.CategoryMandatory,
			Amount:     amt,
		})
		if !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("amount %d: err = %v, want ErrValidation", amt, err)
		}
	}
}

func TestRecord_RejectsUnknownCategory(t *testing.T) {
	uc := NewUsecase(&savingmock.Repo{})
	_, err := uc.Record(context.Background(), RecordInput{
		MemberName: "Rina Wijaya",
		Category:   "bonus",
		Amount:     100,
	})
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestTotalFor_ZeroRecordsIsZero(t *testing.T) {
	uc := NewUsecase(&savingmock.Repo{
		SumByMemberFn: func(ctx context.Context, memberName string, category domain.Category) (int64, error) {
			return 0, nil
		},
	})
	got, err := uc.TotalFor(context.Background(), "Andi Pratama", "")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestTotalFor_PassesCategoryThrough(t *testing.T) {
	uc := NewUsecase(&savingmock.Repo{
		SumByMemberFn: func(ctx context.Context, memberName string, category domain.Category) (int64, error) {
			if memberName != "Rina Wijaya" || category != domain.CategoryPrincipal {
				t.Fatalf("unexpected args %q %q", memberName, category)
			}
			return 100_000, nil
		},
	})
	got, err := uc.TotalFor(context.Background(), "Rina Wijaya", domain.CategoryPrincipal)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != 100_000 {
		t.Fatalf("got %d", got)
	}
}

func TestList_FiltersByCategory(t *testing.T) {
	uc := NewUsecase(&savingmock.Repo{
		ListFn: func(ctx context.Context) ([]domain.SavingRecord, error) {
			return []domain.SavingRecord{
				{SavingID: "s1", Category: domain.CategoryPrincipal, Amount: 100_000},
				{SavingID: "s2", Category: domain.CategoryMandatory, Amount: 50_000},
				{SavingID: "s3", Category: domain.CategoryPrincipal, Amount: 100_000},
			}, nil
		},
	})
	got, err := uc.List(context.Background(), domain.CategoryPrincipal)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}
