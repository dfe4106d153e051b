package access

import (
	"testing"

	"koperasi-backend/internal/domain/loan"
	"koperasi-backend/internal/domain/member"
)

func pool() []loan.Loan {
	return []loan.Loan{
		{LoanID: "l1", MemberName: "Rina Wijaya"},
		{LoanID: "l2", MemberName: "Dedi Kurniawan"},
		{LoanID: "l3", MemberName: "Rina Wijaya"},
	}
}

func keyOf(l loan.Loan) string { return l.MemberName }

func TestScope_AdministratorSeesEverything(t *testing.T) {
	got := Scope(member.RoleAdministrator, "Budi Santoso", pool(), keyOf)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}

func TestScope_MemberSeesOnlyOwnRecords(t *testing.T) {
	got := Scope(member.RoleMember, "Rina Wijaya", pool(), keyOf)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Relative order preserved.
	if got[0].LoanID != "l1" || got[1].LoanID != "l3" {
		t.Fatalf("order = %s,%s", got[0].LoanID, got[1].LoanID)
	}
	for _, l := range got {
		if l.MemberName != "Rina Wijaya" {
			t.Fatalf("leaked record for %s", l.MemberName)
		}
	}
}

func TestScope_NameMatchIsExact(t *testing.T) {
	got := Scope(member.RoleMember, "rina wijaya", pool(), keyOf)
	if len(got) != 0 {
		t.Fatalf("case-insensitive match leaked %d records", len(got))
	}
}

func TestScope_EmptyInput(t *testing.T) {
	got := Scope(member.RoleMember, "Rina Wijaya", nil, keyOf)
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
