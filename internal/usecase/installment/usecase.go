package installment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"koperasi-backend/internal/domain/errs"
	"koperasi-backend/internal/domain/installment"
	"koperasi-backend/internal/domain/loan"
	"koperasi-backend/internal/domain/uow"
	"koperasi-backend/pkg/id"
)

type Usecase struct {
	repo installment.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r installment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type RecordPaymentInput struct {
	LoanID string
	Amount int64
	Date   time.Time
}

type InstallmentDTO struct {
	InstallmentID  string    `json:"installment_id"`
	LoanID         string    `json:"loan_id"`
	MemberName     string    `json:"member_name"`
	Amount         int64     `json:"amount"`
	PaymentDate    time.Time `json:"payment_date"`
	SequenceNumber int       `json:"sequence_number"`
	Status         string    `json:"status"`
}

func toDTO(r installment.InstallmentRecord) InstallmentDTO {
	return InstallmentDTO{
		InstallmentID:  r.InstallmentID,
		LoanID:         r.LoanID,
		MemberName:     r.MemberName,
		Amount:         r.Amount,
		PaymentDate:    r.PaymentDate,
		SequenceNumber: r.SequenceNumber,
		Status:         string(r.Status),
	}
}

// RecordPayment appends a payment against a loan, assigning the next 1-based
// sequence number under the loan row lock. When the sequence reaches the loan
// tenure and the loan is active, the loan settles in the same transaction.
// Payments never reduce the loan's outstanding amount.
func (u *Usecase) RecordPayment(ctx context.Context, in RecordPaymentInput) (*InstallmentDTO, error) {
	if in.Amount <= 0 {
		return nil, errs.NewValidation("amount")
	}
	if in.Date.IsZero() {
		in.Date = time.Now().UTC()
	}

	var dto *InstallmentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		maxSeq, err := r.Installments.MaxSequence(ctx, l.LoanID)
		if err != nil {
			return err
		}
		rec := &installment.InstallmentRecord{
			InstallmentID:  id.NewID32(),
			LoanID:         l.LoanID,
			MemberName:     l.MemberName,
			Amount:         in.Amount,
			PaymentDate:    in.Date,
			SequenceNumber: maxSeq + 1,
			Status:         installment.StatusPaid,
		}
		if err := r.Installments.Create(ctx, rec); err != nil {
			return err
		}

		// Full repayment: the final scheduled installment settles the loan.
		if l.State == loan.StateActive && rec.SequenceNumber >= l.TenureMonths {
			if err := l.Transition(loan.EventSettle); err != nil {
				return err
			}
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}

		d := toDTO(*rec)
		dto = &d
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context) ([]InstallmentDTO, error) {
	rs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]InstallmentDTO, error) {
	rs, err := u.repo.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

func toDTOs(rs []installment.InstallmentRecord) []InstallmentDTO {
	out := make([]InstallmentDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, toDTO(r))
	}
	return out
}
