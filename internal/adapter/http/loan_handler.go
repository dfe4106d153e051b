package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"koperasi-backend/internal/domain/access"
	"koperasi-backend/internal/usecase/loan"
	"koperasi-backend/internal/usecase/member"
)

type LoanHandler struct {
	uc      *loan.Usecase
	members *member.Usecase
}

func NewLoanHandler(uc *loan.Usecase, members *member.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc, members: members}
}

type submitLoanReq struct {
	MemberID     string  `json:"member_id"`
	MemberName   string  `json:"member_name"   validate:"required"`
	MemberEmail  string  `json:"member_email"  validate:"omitempty,email"`
	MemberPhone  string  `json:"member_phone"  validate:"required"`
	KTPNumber    string  `json:"ktp_number"    validate:"required,ktp16"`
	Amount       int64   `json:"amount"        validate:"required,gt=0"`
	TenureMonths int     `json:"tenure_months" validate:"required,tenure"`
	InterestRate float64 `json:"interest_rate" validate:"omitempty,gte=0"`
	Notes        string  `json:"notes"`
}

func (h *LoanHandler) SubmitLoan(c echo.Context) error {
	var req submitLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), loan.SubmitInput{
		MemberID:     req.MemberID,
		MemberName:   req.MemberName,
		MemberEmail:  req.MemberEmail,
		MemberPhone:  req.MemberPhone,
		KTPNumber:    req.KTPNumber,
		Amount:       req.Amount,
		TenureMonths: req.TenureMonths,
		InterestRate: req.InterestRate,
		Notes:        req.Notes,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	h.attachCreditStatus(c, dto)
	return c.JSON(http.StatusCreated, dto)
}

// ListLoans returns the loans visible to the caller with each member's
// credit status resolved through the registry.
func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.All(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	id := identityFrom(c)
	scoped := access.Scope(id.Role, id.Name, dtos, func(l loan.LoanDTO) string { return l.MemberName })
	for i := range scoped {
		h.attachCreditStatus(c, &scoped[i])
	}
	return c.JSON(http.StatusOK, scoped)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	id := identityFrom(c)
	if !id.Admin() && dto.MemberName != id.Name {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	h.attachCreditStatus(c, dto)
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ApproveLoan(c echo.Context) error {
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) RejectLoan(c echo.Context) error {
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type negotiateReq struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

func (h *LoanHandler) NegotiateLoan(c echo.Context) error {
	var req negotiateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Negotiate(c.Request().Context(), c.Param("loan_id"), req.Amount)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) attachCreditStatus(c echo.Context, dto *loan.LoanDTO) {
	if h.members != nil {
		dto.CreditStatus = h.members.CreditStatusFor(c.Request().Context(), dto.MemberName)
	}
}
