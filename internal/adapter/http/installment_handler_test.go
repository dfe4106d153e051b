package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	installmentDomain "koperasi-backend/internal/domain/installment"
	loanDomain "koperasi-backend/internal/domain/loan"
	memberDomain "koperasi-backend/internal/domain/member"
	"koperasi-backend/internal/domain/uow"
	"koperasi-backend/internal/testutil/installmentmock"
	"koperasi-backend/internal/testutil/loanmock"
	"koperasi-backend/internal/testutil/uowmock"
	installmentuc "koperasi-backend/internal/usecase/installment"
)

func TestRecordPayment_Success(t *testing.T) {
	e := newEchoWithValidator()

	loanID := strings.Repeat("a", 32)
	l := &loanDomain.Loan{
		LoanID:       loanID,
		MemberName:   "Rina Wijaya",
		TenureMonths: 12,
		State:        loanDomain.StateActive,
	}
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(ctx context.Context, id string) (*loanDomain.Loan, error) {
			return l, nil
		},
	}
	installments := &installmentmock.Repo{
		MaxSequenceFn: func(ctx context.Context, id string) (int, error) { return 4, nil },
	}
	unit := uowmock.Passthrough(uow.Repos{Loans: loans, Installments: installments})
	h := NewInstallmentHandler(installmentuc.NewUsecase(installments, unit))

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/"+loanID+"/payments", mustJSON(map[string]any{"amount": 491_667}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("loan_id")
	c.SetParamValues(loanID)

	if err := h.RecordPayment(c); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}
	var got installmentuc.InstallmentDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.SequenceNumber != 5 {
		t.Fatalf("sequence_number = %d, want 5", got.SequenceNumber)
	}
	if got.MemberName != "Rina Wijaya" {
		t.Fatalf("member_name = %q", got.MemberName)
	}
}

func TestRecordPayment_NonPositiveAmount(t *testing.T) {
	e := newEchoWithValidator()
	unit := uowmock.New()
	h := NewInstallmentHandler(installmentuc.NewUsecase(&installmentmock.Repo{}, unit))

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/x/payments", mustJSON(map[string]any{"amount": 0}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("loan_id")
	c.SetParamValues(strings.Repeat("b", 32))

	if err := h.RecordPayment(c); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestListInstallments_Scoped(t *testing.T) {
	e := newEchoWithValidator()

	installments := &installmentmock.Repo{
		ListFn: func(ctx context.Context) ([]installmentDomain.InstallmentRecord, error) {
			return []installmentDomain.InstallmentRecord{
				{InstallmentID: "i1", MemberName: "Rina Wijaya", SequenceNumber: 1},
				{InstallmentID: "i2", MemberName: "Dedi Kurniawan", SequenceNumber: 1},
			}, nil
		},
	}
	h := NewInstallmentHandler(installmentuc.NewUsecase(installments, uowmock.New()))

	req := httptest.NewRequest(stdhttp.MethodGet, "/installments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setIdentity(c, memberDomain.RoleMember, "Rina Wijaya")

	if err := h.ListInstallments(c); err != nil {
		t.Fatalf("ListInstallments error: %v", err)
	}
	var got []installmentuc.InstallmentDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got) != 1 || got[0].InstallmentID != "i1" {
		t.Fatalf("scoping failed: %+v", got)
	}
}
