package uow

import (
	"context"

	"koperasi-backend/internal/domain/installment"
	"koperasi-backend/internal/domain/loan"
)

// Repos bundles the repositories that participate in a transaction.
type Repos struct {
	Loans        loan.Repository
	Installments installment.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside one transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. Concurrent
	// transitions on the same loan serialize here: one wins, the other
	// observes the post-transition state.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
