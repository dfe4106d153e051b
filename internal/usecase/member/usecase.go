package member

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"koperasi-backend/internal/domain/errs"
	"koperasi-backend/internal/domain/member"
)

type Usecase struct{ repo member.Repository }

func NewUsecase(r member.Repository) *Usecase { return &Usecase{repo: r} }

type MemberDTO struct {
	MemberID     string    `json:"member_id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Position     string    `json:"position,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Avatar       string    `json:"avatar"`
	JoinDate     time.Time `json:"join_date"`
	CreditStatus string    `json:"credit_status,omitempty"`
}

func toDTO(m member.Member) MemberDTO {
	return MemberDTO{
		MemberID:     m.MemberID,
		Name:         m.Name,
		Role:         string(m.Role),
		Position:     m.Position,
		Email:        m.Email,
		Phone:        m.Phone,
		Avatar:       m.Avatar,
		JoinDate:     m.JoinDate,
		CreditStatus: string(m.CreditStatus),
	}
}

func (u *Usecase) List(ctx context.Context) ([]MemberDTO, error) {
	ms, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MemberDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDTO(m))
	}
	return out, nil
}

func (u *Usecase) FindByName(ctx context.Context, name string) (*MemberDTO, error) {
	m, err := u.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(*m)
	return &dto, nil
}

func (u *Usecase) FilterByRole(ctx context.Context, role member.Role) ([]MemberDTO, error) {
	if !member.ValidRole(role) {
		return nil, errs.NewValidation("role")
	}
	ms, err := u.repo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	out := make([]MemberDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDTO(m))
	}
	return out, nil
}

// CreditStatusFor resolves a member's credit status by name for loan views.
// A record whose member no longer resolves is reported with an empty status,
// never an error.
func (u *Usecase) CreditStatusFor(ctx context.Context, name string) string {
	m, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return ""
	}
	return string(m.CreditStatus)
}
