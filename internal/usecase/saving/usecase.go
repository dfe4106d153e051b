package saving

import (
	"context"
	"time"

	"koperasi-backend/internal/domain/errs"
	"koperasi-backend/internal/domain/saving"
	"koperasi-backend/pkg/id"
)

type Usecase struct{ repo saving.Repository }

func NewUsecase(r saving.Repository) *Usecase { return &Usecase{repo: r} }

type RecordInput struct {
	MemberID   string
	MemberName string
	Category   saving.Category
	Amount     int64
	Date       time.Time
}

type SavingDTO struct {
	SavingID   string    `json:"saving_id"`
	MemberID   string    `json:"member_id"`
	MemberName string    `json:"member_name"`
	Category   string    `json:"category"`
	Amount     int64     `json:"amount"`
	Date       time.Time `json:"date"`
}

func toDTO(s saving.SavingRecord) SavingDTO {
	return SavingDTO{
		SavingID:   s.SavingID,
		MemberID:   s.MemberID,
		MemberName: s.MemberName,
		Category:   string(s.Category),
		Amount:     s.Amount,
		Date:       s.Date,
	}
}

// Record appends a deposit. No mutation happens on any validation failure;
// corrections later are new reversal records, never edits.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*SavingDTO, error) {
	var bad []string
	if in.MemberName == "" {
		bad = append(bad, "member_name")
	}
	if !saving.ValidCategory(in.Category) {
		bad = append(bad, "category")
	}
	if in.Amount <= 0 {
		bad = append(bad, "amount")
	}
	if len(bad) > 0 {
		return nil, errs.NewValidation(bad...)
	}

	if in.Date.IsZero() {
		in.Date = time.Now().UTC()
	}
	s := &saving.SavingRecord{
		SavingID:   id.NewID32(),
		MemberID:   in.MemberID,
		MemberName: in.MemberName,
		Category:   in.Category,
		Amount:     in.Amount,
		Date:       in.Date,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	dto := toDTO(*s)
	return &dto, nil
}

// List returns all records, optionally restricted to one category.
func (u *Usecase) List(ctx context.Context, category saving.Category) ([]SavingDTO, error) {
	if category != "" && !saving.ValidCategory(category) {
		return nil, errs.NewValidation("category")
	}
	ss, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SavingDTO, 0, len(ss))
	for _, s := range ss {
		if category != "" && s.Category != category {
			continue
		}
		out = append(out, toDTO(s))
	}
	return out, nil
}

// TotalFor sums a member's deposits; category == "" means all categories.
// Zero records yield 0, not an error.
func (u *Usecase) TotalFor(ctx context.Context, memberName string, category saving.Category) (int64, error) {
	if category != "" && !saving.ValidCategory(category) {
		return 0, errs.NewValidation("category")
	}
	return u.repo.SumByMember(ctx, memberName, category)
}

// TotalByCategory sums one category over all members, for dashboards.
func (u *Usecase) TotalByCategory(ctx context.Context, category saving.Category) (int64, error) {
	if category != "" && !saving.ValidCategory(category) {
		return 0, errs.NewValidation("category")
	}
	return u.repo.SumByCategory(ctx, category)
}
