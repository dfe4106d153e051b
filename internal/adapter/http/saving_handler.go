package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"koperasi-backend/internal/domain/access"
	savingDomain "koperasi-backend/internal/domain/saving"
	"koperasi-backend/internal/usecase/saving"
)

type SavingHandler struct{ uc *saving.Usecase }

func NewSavingHandler(uc *saving.Usecase) *SavingHandler { return &SavingHandler{uc: uc} }

type recordSavingReq struct {
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name" validate:"required"`
	Category   string `json:"category"    validate:"required,oneof=principal mandatory voluntary"`
	Amount     int64  `json:"amount"      validate:"required,gt=0"`
	Date       string `json:"date"        validate:"omitempty,datetime=2006-01-02"`
}

func (h *SavingHandler) RecordSaving(c echo.Context) error {
	var req recordSavingReq
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
	dto, err := h.uc.Record(c.Request().Context(), saving.RecordInput{
		MemberID:   req.MemberID,
		MemberName: req.MemberName,
		Category:   savingDomain.Category(req.Category),
		Amount:     req.Amount,
		Date:       date,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// ListSavings returns records visible to the caller, optionally restricted
// to one category via the `category` query param.
func (h *SavingHandler) ListSavings(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context(), savingDomain.Category(c.QueryParam("category")))
	if err != nil {
		return writeDomainError(c, err)
	}
	id := identityFrom(c)
	scoped := access.Scope(id.Role, id.Name, dtos, func(s saving.SavingDTO) string { return s.MemberName })
	return c.JSON(http.StatusOK, scoped)
}
