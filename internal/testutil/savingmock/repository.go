package savingmock

import (
	"context"

	domain "koperasi-backend/internal/domain/saving"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies saving.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, s *domain.SavingRecord) error
	ListFn          func(ctx context.Context) ([]domain.SavingRecord, error)
	SumByMemberFn   func(ctx context.Context, memberName string, category domain.Category) (int64, error)
	SumByCategoryFn func(ctx context.Context, category domain.Category) (int64, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.SavingRecord) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.SavingRecord, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SumByMember(ctx context.Context, memberName string, category domain.Category) (int64, error) {
	if m.SumByMemberFn != nil {
		return m.SumByMemberFn(ctx, memberName, category)
	}
	return 0, nil
}

func (m *Repo) SumByCategory(ctx context.Context, category domain.Category) (int64, error) {
	if m.SumByCategoryFn != nil {
		return m.SumByCategoryFn(ctx, category)
	}
	return 0, nil
}
