package installment

import "context"

type Repository interface {
	// Create appends a record; installments are never updated or deleted.
	Create(ctx context.Context, r *InstallmentRecord) error
	List(ctx context.Context) ([]InstallmentRecord, error)
	ListByLoanID(ctx context.Context, loanID string) ([]InstallmentRecord, error)
	// MaxSequence returns the highest sequence number recorded for a loan,
	// 0 when the loan has no installments yet.
	MaxSequence(ctx context.Context, loanID string) (int, error)
}
