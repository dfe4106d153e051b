package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the scope of the enclosing
	// transaction so concurrent transitions on the same loan serialize.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	List(ctx context.Context) ([]Loan, error)
	ListByMemberName(ctx context.Context, memberName string) ([]Loan, error)
	ListByState(ctx context.Context, state State) ([]Loan, error)
	SumAmountByState(ctx context.Context, state State) (int64, error)
	Save(ctx context.Context, l *Loan) error
}
