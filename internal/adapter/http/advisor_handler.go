package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"koperasi-backend/internal/usecase/advisor"
)

type AdvisorHandler struct{ uc *advisor.Usecase }

func NewAdvisorHandler(uc *advisor.Usecase) *AdvisorHandler { return &AdvisorHandler{uc: uc} }

type advisorReq struct {
	Prompt string `json:"prompt" validate:"required"`
}

func (h *AdvisorHandler) Ask(c echo.Context) error {
	var req advisorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	reply, err := h.uc.Ask(c.Request().Context(), req.Prompt)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"reply": reply})
}
