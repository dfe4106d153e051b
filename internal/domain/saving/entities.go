package saving

import (
	"time"

	"gorm.io/gorm"
)

type Category string

const (
	CategoryPrincipal Category = "principal"
	CategoryMandatory Category = "mandatory"
	CategoryVoluntary Category = "voluntary"
)

// SavingRecord is append-only: created on deposit, never updated or deleted.
// Corrections are modeled as a new (reversal) record, so balances stay a
// live sum over records rather than a stored running total.
type SavingRecord struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"-"`
	SavingID   string         `gorm:"size:32;uniqueIndex:ux_savings_saving_id_active" json:"saving_id"`
	MemberID   string         `gorm:"size:32;index" json:"member_id"`
	MemberName string         `gorm:"size:128;index:idx_savings_member_name" json:"member_name"`
	Category   Category       `gorm:"size:16;index" json:"category"`
	Amount     int64          `gorm:"not null" json:"amount"`
	Date       time.Time      `gorm:"type:date" json:"date"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SavingRecord) TableName() string { return "savings" }

func ValidCategory(c Category) bool {
	switch c {
	case CategoryPrincipal, CategoryMandatory, CategoryVoluntary:
		return true
	}
	return false
}
