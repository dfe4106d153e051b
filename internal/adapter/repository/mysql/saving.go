package mysql

import (
	"context"

	"gorm.io/gorm"

	savingDomain "koperasi-backend/internal/domain/saving"
)

type SavingRepository struct{ db *gorm.DB }

func NewSavingRepository(db *gorm.DB) *SavingRepository { return &SavingRepository{db: db} }

func (r *SavingRepository) Create(ctx context.Context, s *savingDomain.SavingRecord) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SavingRepository) List(ctx context.Context) ([]savingDomain.SavingRecord, error) {
	var out []savingDomain.SavingRecord
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

// SumByMember sums at the database so the balance is always a live sum over
// records. COALESCE keeps the zero-records case at 0 rather than NULL.
func (r *SavingRepository) SumByMember(ctx context.Context, memberName string, category savingDomain.Category) (int64, error) {
	q := r.db.WithContext(ctx).Model(&savingDomain.SavingRecord{}).Where("member_name = ?", memberName)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var total int64
	res := q.Select("COALESCE(SUM(amount), 0)").Scan(&total)
	return total, res.Error
}

func (r *SavingRepository) SumByCategory(ctx context.Context, category savingDomain.Category) (int64, error) {
	q := r.db.WithContext(ctx).Model(&savingDomain.SavingRecord{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var total int64
	res := q.Select("COALESCE(SUM(amount), 0)").Scan(&total)
	return total, res.Error
}
