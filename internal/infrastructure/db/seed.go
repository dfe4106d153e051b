package db

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	installmentDomain "koperasi-backend/internal/domain/installment"
	loanDomain "koperasi-backend/internal/domain/loan"
	memberDomain "koperasi-backend/internal/domain/member"
	savingDomain "koperasi-backend/internal/domain/saving"
)

// Migrate creates or updates the schema for every domain table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&memberDomain.Member{},
		&savingDomain.SavingRecord{},
		&loanDomain.Loan{},
		&installmentDomain.InstallmentRecord{},
	)
}

func newID() string { return strings.ReplaceAll(uuid.NewString(), "-", "") }

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// Seed loads the reference dataset once. It keys off the members table: a
// non-empty table means a previous boot already seeded, so restarts are
// harmless.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&memberDomain.Member{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	members := []memberDomain.Member{
		{MemberID: newID(), Name: "Budi Santoso", Role: memberDomain.RoleAdministrator, Position: "Ketua", Email: "budi@koperasi.com", Phone: "08123456789", Avatar: "https://picsum.photos/seed/budi/100", JoinDate: date("2020-01-15")},
		{MemberID: newID(), Name: "Siti Aminah", Role: memberDomain.RoleAdministrator, Position: "Sekretaris", Email: "siti@koperasi.com", Phone: "08123456788", Avatar: "https://picsum.photos/seed/siti/100", JoinDate: date("2020-02-10")},
		{MemberID: newID(), Name: "Ahmad Hidayat", Role: memberDomain.RoleAdministrator, Position: "Bendahara", Email: "ahmad@koperasi.com", Phone: "08123456787", Avatar: "https://picsum.photos/seed/ahmad/100", JoinDate: date("2020-03-05")},
		{MemberID: newID(), Name: "Rina Wijaya", Role: memberDomain.RoleMember, Email: "rina@mail.com", Phone: "08123456786", Avatar: "https://picsum.photos/seed/rina/100", JoinDate: date("2021-05-20"), CreditStatus: memberDomain.CreditOnTrack},
		{MemberID: newID(), Name: "Dedi Kurniawan", Role: memberDomain.RoleMember, Email: "dedi@mail.com", Phone: "08123456785", Avatar: "https://picsum.photos/seed/dedi/100", JoinDate: date("2021-08-12"), CreditStatus: memberDomain.CreditDelinquent},
		{MemberID: newID(), Name: "Andi Pratama", Role: memberDomain.RoleMember, Email: "andi@mail.com", Phone: "08123456784", Avatar: "https://picsum.photos/seed/andi/100", JoinDate: date("2022-01-10"), CreditStatus: memberDomain.CreditDefault},
	}

	byName := map[string]string{}
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range members {
			if err := tx.Create(&members[i]).Error; err != nil {
				return err
			}
			byName[members[i].Name] = members[i].MemberID
		}

		savings := []savingDomain.SavingRecord{
			{SavingID: newID(), MemberID: byName["Rina Wijaya"], MemberName: "Rina Wijaya", Category: savingDomain.CategoryPrincipal, Amount: 100_000, Date: date("2021-05-20")},
			{SavingID: newID(), MemberID: byName["Rina Wijaya"], MemberName: "Rina Wijaya", Category: savingDomain.CategoryMandatory, Amount: 50_000, Date: date("2023-10-01")},
			{SavingID: newID(), MemberID: byName["Dedi Kurniawan"], MemberName: "Dedi Kurniawan", Category: savingDomain.CategoryVoluntary, Amount: 2_000_000, Date: date("2023-11-15")},
			{SavingID: newID(), MemberID: byName["Dedi Kurniawan"], MemberName: "Dedi Kurniawan", Category: savingDomain.CategoryPrincipal, Amount: 100_000, Date: date("2021-08-12")},
			{SavingID: newID(), MemberID: byName["Andi Pratama"], MemberName: "Andi Pratama", Category: savingDomain.CategoryPrincipal, Amount: 100_000, Date: date("2022-01-10")},
			{SavingID: newID(), MemberID: byName["Rina Wijaya"], MemberName: "Rina Wijaya", Category: savingDomain.CategoryVoluntary, Amount: 250_000, Date: date("2023-12-20")},
		}
		for i := range savings {
			if err := tx.Create(&savings[i]).Error; err != nil {
				return err
			}
		}

		activeLoanID := newID()
		loans := []loanDomain.Loan{
			{LoanID: activeLoanID, MemberID: byName["Rina Wijaya"], MemberName: "Rina Wijaya", MemberPhone: "08123456786", KTPNumber: "3271012345678904", Amount: 5_000_000, InterestRate: 1.5, TenureMonths: 12, MonthlyInstallment: loanDomain.Installment(5_000_000, 12, 1.5), State: loanDomain.StateActive, StateUpdatedAt: date("2023-06-01"), StartDate: date("2023-06-01")},
			{LoanID: newID(), MemberID: byName["Dedi Kurniawan"], MemberName: "Dedi Kurniawan", MemberPhone: "08123456785", KTPNumber: "3271012345678905", Amount: 10_000_000, InterestRate: 1.5, TenureMonths: 24, MonthlyInstallment: loanDomain.Installment(10_000_000, 24, 1.5), State: loanDomain.StatePendingReview, StateUpdatedAt: date("2024-02-15"), StartDate: date("2024-02-15")},
			{LoanID: newID(), MemberID: byName["Andi Pratama"], MemberName: "Andi Pratama", MemberPhone: "08123456784", KTPNumber: "3271012345678906", Amount: 15_000_000, InterestRate: 1.5, TenureMonths: 12, MonthlyInstallment: loanDomain.Installment(15_000_000, 12, 1.5), State: loanDomain.StatePendingReview, StateUpdatedAt: date("2024-03-01"), StartDate: date("2024-03-01")},
		}
		for i := range loans {
			if err := tx.Create(&loans[i]).Error; err != nil {
				return err
			}
		}

		installment := loans[0].MonthlyInstallment
		payments := []installmentDomain.InstallmentRecord{
			{InstallmentID: newID(), LoanID: activeLoanID, MemberName: "Rina Wijaya", Amount: installment, PaymentDate: date("2023-07-01"), SequenceNumber: 1, Status: installmentDomain.StatusPaid},
			{InstallmentID: newID(), LoanID: activeLoanID, MemberName: "Rina Wijaya", Amount: installment, PaymentDate: date("2023-08-01"), SequenceNumber: 2, Status: installmentDomain.StatusPaid},
		}
		for i := range payments {
			if err := tx.Create(&payments[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
