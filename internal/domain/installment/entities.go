package installment

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
)

// InstallmentRecord is created when a payment event is recorded and is
// immutable afterward. Sequence numbers are 1-based and monotonically
// increasing per loan.
type InstallmentRecord struct {
	ID             uint64         `gorm:"primaryKey;column:id" json:"-"`
	InstallmentID  string         `gorm:"size:32;uniqueIndex:ux_installments_installment_id_active" json:"installment_id"`
	LoanID         string         `gorm:"size:32;index:idx_installments_loan" json:"loan_id"`
	MemberName     string         `gorm:"size:128;index:idx_installments_member_name" json:"member_name"`
	Amount         int64          `gorm:"not null" json:"amount"`
	PaymentDate    time.Time      `gorm:"type:date" json:"payment_date"`
	SequenceNumber int            `gorm:"not null" json:"sequence_number"`
	Status         Status         `gorm:"size:16;default:'paid'" json:"status"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (InstallmentRecord) TableName() string { return "installments" }
