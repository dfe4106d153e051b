package installmentmock

import (
	"context"

	domain "koperasi-backend/internal/domain/installment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies installment.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, r *domain.InstallmentRecord) error
	ListFn         func(ctx context.Context) ([]domain.InstallmentRecord, error)
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]domain.InstallmentRecord, error)
	MaxSequenceFn  func(ctx context.Context, loanID string) (int, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.InstallmentRecord) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.InstallmentRecord, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.InstallmentRecord, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) MaxSequence(ctx context.Context, loanID string) (int, error) {
	if m.MaxSequenceFn != nil {
		return m.MaxSequenceFn(ctx, loanID)
	}
	return 0, nil
}
