package loanmock

import (
	"context"

	"gorm.io/gorm"

	domain "koperasi-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository. Only the
// methods a test fills in do anything useful.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListFn                 func(ctx context.Context) ([]domain.Loan, error)
	ListByMemberNameFn     func(ctx context.Context, memberName string) ([]domain.Loan, error)
	ListByStateFn          func(ctx context.Context, state domain.State) ([]domain.Loan, error)
	SumAmountByStateFn     func(ctx context.Context, state domain.State) (int64, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByMemberName(ctx context.Context, memberName string) ([]domain.Loan, error) {
	if m.ListByMemberNameFn != nil {
		return m.ListByMemberNameFn(ctx, memberName)
	}
	return nil, nil
}

func (m *Repo) ListByState(ctx context.Context, state domain.State) ([]domain.Loan, error) {
	if m.ListByStateFn != nil {
		return m.ListByStateFn(ctx, state)
	}
	return nil, nil
}

func (m *Repo) SumAmountByState(ctx context.Context, state domain.State) (int64, error) {
	if m.SumAmountByStateFn != nil {
		return m.SumAmountByStateFn(ctx, state)
	}
	return 0, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
