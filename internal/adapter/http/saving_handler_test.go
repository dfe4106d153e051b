package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	memberDomain "koperasi-backend/internal/domain/member"
	savingDomain "koperasi-backend/internal/domain/saving"
	"koperasi-backend/internal/testutil/savingmock"
	savinguc "koperasi-backend/internal/usecase/saving"
)

func TestRecordSaving_Success(t *testing.T) {
	e := newEchoWithValidator()

	var created *savingDomain.SavingRecord
	repo := &savingmock.Repo{
		CreateFn: func(ctx context.Context, s *savingDomain.SavingRecord) error {
			created = s
			return nil
		},
	}
	h := NewSavingHandler(savinguc.NewUsecase(repo))

	reqBody := map[string]any{
		"member_name": "Rina Wijaya",
		"category":    "voluntary",
		"amount":      250_000,
		"date":        "2023-12-20",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/savings", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setIdentity(c, memberDomain.RoleAdministrator, "Budi Santoso")

	if err := h.RecordSaving(c); err != nil {
		t.Fatalf("RecordSaving error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}
	if created == nil || created.Category != savingDomain.CategoryVoluntary {
		t.Fatalf("record not created: %+v", created)
	}
	if created.Date.Format("2006-01-02") != "2023-12-20" {
		t.Fatalf("date = %v, want 2023-12-20", created.Date)
	}
}

func TestRecordSaving_InvalidCategory(t *testing.T) {
	e := newEchoWithValidator()
	h := NewSavingHandler(savinguc.NewUsecase(&savingmock.Repo{}))

	reqBody := map[string]any{
		"member_name": "Rina Wijaya",
		"category":    "deposito",
		"amount":      250_000,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/savings", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.RecordSaving(c); err != nil {
		t.Fatalf("RecordSaving error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "Category", "one of") {
		t.Fatalf("missing category detail: %+v", er.Details)
	}
}

func TestListSavings_ScopedAndFiltered(t *testing.T) {
	e := newEchoWithValidator()

	repo := &savingmock.Repo{
		ListFn: func(ctx context.Context) ([]savingDomain.SavingRecord, error) {
			return []savingDomain.SavingRecord{
				{SavingID: "s1", MemberName: "Rina Wijaya", Category: savingDomain.CategoryPrincipal, Amount: 100_000},
				{SavingID: "s2", MemberName: "Rina Wijaya", Category: savingDomain.CategoryVoluntary, Amount: 250_000},
				{SavingID: "s3", MemberName: "Dedi Kurniawan", Category: savingDomain.CategoryVoluntary, Amount: 2_000_000},
			}, nil
		},
	}
	h := NewSavingHandler(savinguc.NewUsecase(repo))

	req := httptest.NewRequest(stdhttp.MethodGet, "/savings?category=voluntary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.QueryParams() // force parse
	setIdentity(c, memberDomain.RoleMember, "Rina Wijaya")

	if err := h.ListSavings(c); err != nil {
		t.Fatalf("ListSavings error: %v", err)
	}
	var got []savinguc.SavingDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got) != 1 || got[0].SavingID != "s2" {
		t.Fatalf("expected only the caller's voluntary record, got %+v", got)
	}
}

func TestListSavings_BadCategory(t *testing.T) {
	e := newEchoWithValidator()
	h := NewSavingHandler(savinguc.NewUsecase(&savingmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/savings?category=deposito", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setIdentity(c, memberDomain.RoleAdministrator, "Budi Santoso")

	if err := h.ListSavings(c); err != nil {
		t.Fatalf("ListSavings error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
