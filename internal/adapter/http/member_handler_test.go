package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	memberDomain "koperasi-backend/internal/domain/member"
	"koperasi-backend/internal/testutil/membermock"
	memberuc "koperasi-backend/internal/usecase/member"
)

func TestListMembers_RoleFilter(t *testing.T) {
	e := newEchoWithValidator()

	repo := &membermock.Repo{
		ListByRoleFn: func(ctx context.Context, role memberDomain.Role) ([]memberDomain.Member, error) {
			if role != memberDomain.RoleMember {
				t.Fatalf("role = %q, want member", role)
			}
			return []memberDomain.Member{{Name: "Rina Wijaya", Role: role}}, nil
		},
	}
	h := NewMemberHandler(memberuc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodGet, "/members?role=member", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListMembers(c); err != nil {
		t.Fatalf("ListMembers error: %v", err)
	}
	var got []memberuc.MemberDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 1 || got[0].Name != "Rina Wijaya" {
		t.Fatalf("unexpected members: %+v", got)
	}
}

func TestListMembers_UnknownRole(t *testing.T) {
	e := newEchoWithValidator()
	h := NewMemberHandler(memberuc.NewUsecase(&membermock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/members?role=auditor", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListMembers(c); err != nil {
		t.Fatalf("ListMembers error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestGetMember_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := NewMemberHandler(memberuc.NewUsecase(&membermock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/members/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("Tidak Ada")

	if err := h.GetMember(c); err != nil {
		t.Fatalf("GetMember error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
