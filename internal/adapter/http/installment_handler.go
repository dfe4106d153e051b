package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"koperasi-backend/internal/domain/access"
	"koperasi-backend/internal/usecase/installment"
)

type InstallmentHandler struct{ uc *installment.Usecase }

func NewInstallmentHandler(uc *installment.Usecase) *InstallmentHandler {
	return &InstallmentHandler{uc: uc}
}

type recordPaymentReq struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Date   string `json:"date"   validate:"omitempty,datetime=2006-01-02"`
}

func (h *InstallmentHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	var date time.Time
	if req.Date != "" {
		date, _ = time.Parse("2006-01-02", req.Date)
	}
	dto, err := h.uc.RecordPayment(c.Request().Context(), installment.RecordPaymentInput{
		LoanID: c.Param("loan_id"),
		Amount: req.Amount,
		Date:   date,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InstallmentHandler) ListInstallments(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	id := identityFrom(c)
	scoped := access.Scope(id.Role, id.Name, dtos, func(r installment.InstallmentDTO) string { return r.MemberName })
	return c.JSON(http.StatusOK, scoped)
}

func (h *InstallmentHandler) ListLoanInstallments(c echo.Context) error {
	dtos, err := h.uc.ListByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	id := identityFrom(c)
	scoped := access.Scope(id.Role, id.Name, dtos, func(r installment.InstallmentDTO) string { return r.MemberName })
	return c.JSON(http.StatusOK, scoped)
}
