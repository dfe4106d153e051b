package saving

import "context"

type Repository interface {
	// Create appends a record. There is no update or delete by design.
	Create(ctx context.Context, s *SavingRecord) error
	List(ctx context.Context) ([]SavingRecord, error)
	// SumByMember sums amounts for one member; category == "" means all categories.
	SumByMember(ctx context.Context, memberName string, category Category) (int64, error)
	// SumByCategory sums amounts over all members for one category.
	SumByCategory(ctx context.Context, category Category) (int64, error)
}
