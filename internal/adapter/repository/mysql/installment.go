package mysql

import (
	"context"

	"gorm.io/gorm"

	installmentDomain "koperasi-backend/internal/domain/installment"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) Create(ctx context.Context, rec *installmentDomain.InstallmentRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *InstallmentRepository) List(ctx context.Context) ([]installmentDomain.InstallmentRecord, error) {
	var out []installmentDomain.InstallmentRecord
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) ListByLoanID(ctx context.Context, loanID string) ([]installmentDomain.InstallmentRecord, error) {
	var out []installmentDomain.InstallmentRecord
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("sequence_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) MaxSequence(ctx context.Context, loanID string) (int, error) {
	var max int
	res := r.db.WithContext(ctx).
		Model(&installmentDomain.InstallmentRecord{}).
		Where("loan_id = ?", loanID).
		Select("COALESCE(MAX(sequence_number), 0)").
		Scan(&max)
	return max, res.Error
}
