package dashboard

import (
	"context"

	"koperasi-backend/internal/domain/loan"
	"koperasi-backend/internal/domain/member"
	"koperasi-backend/internal/domain/saving"
)

// Summary is the aggregate view the landing screen renders. For member-role
// callers every figure is scoped to their own records; the registered-member
// count appears on the administrator view only.
type Summary struct {
	TotalSavings         int64 `json:"total_savings"`
	PrincipalSavings     int64 `json:"principal_savings"`
	MandatorySavings     int64 `json:"mandatory_savings"`
	VoluntarySavings     int64 `json:"voluntary_savings"`
	OutstandingPrincipal int64 `json:"outstanding_principal"`
	ActiveLoanCount      int   `json:"active_loan_count"`
	MemberCount          int   `json:"member_count,omitempty"`
}

type Usecase struct {
	members member.Repository
	savings saving.Repository
	loans   loan.Repository
}

func NewUsecase(members member.Repository, savings saving.Repository, loans loan.Repository) *Usecase {
	return &Usecase{members: members, savings: savings, loans: loans}
}

// Build computes the summary. memberName == "" means cooperative-wide
// (administrator view); otherwise savings and loan figures cover that member
// only and the member count is omitted.
func (u *Usecase) Build(ctx context.Context, memberName string) (*Summary, error) {
	s := &Summary{}

	sum := func(cat saving.Category) (int64, error) {
		if memberName == "" {
			return u.savings.SumByCategory(ctx, cat)
		}
		return u.savings.SumByMember(ctx, memberName, cat)
	}

	var err error
	if s.PrincipalSavings, err = sum(saving.CategoryPrincipal); err != nil {
		return nil, err
	}
	if s.MandatorySavings, err = sum(saving.CategoryMandatory); err != nil {
		return nil, err
	}
	if s.VoluntarySavings, err = sum(saving.CategoryVoluntary); err != nil {
		return nil, err
	}
	s.TotalSavings = s.PrincipalSavings + s.MandatorySavings + s.VoluntarySavings

	if memberName != "" {
		ls, err := u.loans.ListByMemberName(ctx, memberName)
		if err != nil {
			return nil, err
		}
		for _, l := range ls {
			if l.State == loan.StateActive {
				s.OutstandingPrincipal += l.Amount
				s.ActiveLoanCount++
			}
		}
		return s, nil
	}

	if s.OutstandingPrincipal, err = u.loans.SumAmountByState(ctx, loan.StateActive); err != nil {
		return nil, err
	}
	active, err := u.loans.ListByState(ctx, loan.StateActive)
	if err != nil {
		return nil, err
	}
	s.ActiveLoanCount = len(active)

	ms, err := u.members.ListByRole(ctx, member.RoleMember)
	if err != nil {
		return nil, err
	}
	s.MemberCount = len(ms)

	return s, nil
}
