package membermock

import (
	"context"

	"gorm.io/gorm"

	domain "koperasi-backend/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies member.Repository. Fill in
// the fields a test needs; unfilled readers report record-not-found.
type Repo struct {
	CreateFn        func(ctx context.Context, m *domain.Member) error
	ListFn          func(ctx context.Context) ([]domain.Member, error)
	GetByNameFn     func(ctx context.Context, name string) (*domain.Member, error)
	GetByMemberIDFn func(ctx context.Context, memberID string) (*domain.Member, error)
	ListByRoleFn    func(ctx context.Context, role domain.Role) ([]domain.Member, error)
}

func (m *Repo) Create(ctx context.Context, mm *domain.Member) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mm)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Member, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Member, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.GetByMemberIDFn != nil {
		return m.GetByMemberIDFn(ctx, memberID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Member, error) {
	if m.ListByRoleFn != nil {
		return m.ListByRoleFn(ctx, role)
	}
	return nil, nil
}
