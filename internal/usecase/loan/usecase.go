package loan

import (
	"context"
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"

	"koperasi-backend/internal/domain/errs"
	"koperasi-backend/internal/domain/loan"
	"koperasi-backend/internal/domain/uow"
	"koperasi-backend/pkg/id"
)

// DefaultRate is the flat periodic rate (percent) applied when an
// application does not specify one.
const DefaultRate = 1.5

var reKTP = regexp.MustCompile(`^[0-9]{16}$`)

type Usecase struct {
	repo loan.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r loan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

type SubmitInput struct {
	MemberID     string
	MemberName   string
	MemberEmail  string
	MemberPhone  string
	KTPNumber    string
	Amount       int64
	TenureMonths int
	InterestRate float64
	Notes        string
}

type LoanDTO struct {
	LoanID             string    `json:"loan_id"`
	MemberID           string    `json:"member_id"`
	MemberName         string    `json:"member_name"`
	MemberEmail        string    `json:"member_email,omitempty"`
	MemberPhone        string    `json:"member_phone"`
	KTPNumber          string    `json:"ktp_number"`
	Amount             int64     `json:"amount"`
	ProposedAmount     *int64    `json:"proposed_amount,omitempty"`
	InterestRate       float64   `json:"interest_rate"`
	TenureMonths       int       `json:"tenure_months"`
	MonthlyInstallment int64     `json:"monthly_installment"`
	State              string    `json:"state"`
	StartDate          time.Time `json:"start_date"`
	Notes              string    `json:"notes,omitempty"`
	CreditStatus       string    `json:"credit_status,omitempty"`
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:             l.LoanID,
		MemberID:           l.MemberID,
		MemberName:         l.MemberName,
		MemberEmail:        l.MemberEmail,
		MemberPhone:        l.MemberPhone,
		KTPNumber:          l.KTPNumber,
		Amount:             l.Amount,
		ProposedAmount:     l.ProposedAmount,
		InterestRate:       l.InterestRate,
		TenureMonths:       l.TenureMonths,
		MonthlyInstallment: l.MonthlyInstallment,
		State:              string(l.State),
		StartDate:          l.StartDate,
		Notes:              l.Notes,
	}
}

// Submit validates an application and opens it in pending_review with the
// initial installment computed. On validation failure no record is created.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*LoanDTO, error) {
	var bad []string
	if in.MemberName == "" {
		bad = append(bad, "member_name")
	}
	if !reKTP.MatchString(in.KTPNumber) {
		bad = append(bad, "ktp_number")
	}
	if in.MemberPhone == "" {
		bad = append(bad, "member_phone")
	}
	if in.Amount <= 0 {
		bad = append(bad, "amount")
	}
	if !loan.ValidTenure(in.TenureMonths) {
		bad = append(bad, "tenure_months")
	}
	if len(bad) > 0 {
		return nil, errs.NewValidation(bad...)
	}

	rate := in.InterestRate
	if rate == 0 {
		rate = DefaultRate
	}
	now := time.Now().UTC()
	l := &loan.Loan{
		LoanID:             id.NewID32(),
		MemberID:           in.MemberID,
		MemberName:         in.MemberName,
		MemberEmail:        in.MemberEmail,
		MemberPhone:        in.MemberPhone,
		KTPNumber:          in.KTPNumber,
		Amount:             in.Amount,
		InterestRate:       rate,
		TenureMonths:       in.TenureMonths,
		MonthlyInstallment: loan.Installment(in.Amount, in.TenureMonths, rate),
		State:              loan.StatePendingReview,
		StateUpdatedAt:     now,
		StartDate:          now,
		Notes:              in.Notes,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// transition runs one lifecycle event under the row lock so that concurrent
// approve/reject/negotiate calls on the same loan serialize: one wins, the
// other observes InvalidTransition.
func (u *Usecase) transition(ctx context.Context, loanID string, apply func(l *loan.Loan) error) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if err := apply(l); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
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

func (u *Usecase) Approve(ctx context.Context, loanID string) (*LoanDTO, error) {
	return u.transition(ctx, loanID, func(l *loan.Loan) error {
		return l.Transition(loan.EventApprove)
	})
}

func (u *Usecase) Reject(ctx context.Context, loanID string) (*LoanDTO, error) {
	return u.transition(ctx, loanID, func(l *loan.Loan) error {
		return l.Transition(loan.EventReject)
	})
}

func (u *Usecase) Negotiate(ctx context.Context, loanID string, newAmount int64) (*LoanDTO, error) {
	if newAmount <= 0 {
		return nil, errs.NewValidation("amount")
	}
	return u.transition(ctx, loanID, func(l *loan.Loan) error {
		return l.CounterOffer(newAmount)
	})
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) All(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (u *Usecase) ActiveLoans(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.repo.ListByState(ctx, loan.StateActive)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

// OutstandingPrincipal is the sum of amounts over active loans. Installment
// payments do not reduce it; reconciliation is a reporting concern.
func (u *Usecase) OutstandingPrincipal(ctx context.Context) (int64, error) {
	return u.repo.SumAmountByState(ctx, loan.StateActive)
}

func toDTOs(ls []loan.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out
}
