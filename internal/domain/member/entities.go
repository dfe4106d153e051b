package member

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleMember        Role = "member"
)

type CreditStatus string

const (
	CreditOnTrack    CreditStatus = "on_track"
	CreditDelinquent CreditStatus = "delinquent"
	CreditDefault    CreditStatus = "default"
)

// Member is read-mostly reference data. Name is the join key used by the
// savings, loan and installment records, so it carries a unique index; a
// collision is a data-quality error, not a silent merge. Role is immutable
// after onboarding and credit status is owned by external credit review.
type Member struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	MemberID     string         `gorm:"size:32;uniqueIndex:ux_members_member_id_active" json:"member_id"`
	Name         string         `gorm:"size:128;uniqueIndex:ux_members_name_active" json:"name"`
	Role         Role           `gorm:"size:16;index" json:"role"`
	Position     string         `gorm:"size:64" json:"position,omitempty"`
	Email        string         `gorm:"size:128" json:"email"`
	Phone        string         `gorm:"size:32" json:"phone"`
	Avatar       string         `gorm:"type:text" json:"avatar"`
	JoinDate     time.Time      `gorm:"type:date" json:"join_date"`
	CreditStatus CreditStatus   `gorm:"size:16" json:"credit_status,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }

func ValidRole(r Role) bool {
	return r == RoleAdministrator || r == RoleMember
}
