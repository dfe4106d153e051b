package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	List(ctx context.Context) ([]Member, error)
	GetByName(ctx context.Context, name string) (*Member, error)
	GetByMemberID(ctx context.Context, memberID string) (*Member, error)
	ListByRole(ctx context.Context, role Role) ([]Member, error)
}
