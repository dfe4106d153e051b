package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	memberDomain "koperasi-backend/internal/domain/member"
	"koperasi-backend/internal/usecase/member"
)

type MemberHandler struct{ uc *member.Usecase }

func NewMemberHandler(uc *member.Usecase) *MemberHandler { return &MemberHandler{uc: uc} }

// ListMembers returns the registry, optionally filtered by role via the
// `role` query param.
func (h *MemberHandler) ListMembers(c echo.Context) error {
	if role := c.QueryParam("role"); role != "" {
		dtos, err := h.uc.FilterByRole(c.Request().Context(), memberDomain.Role(role))
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, dtos)
	}
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *MemberHandler) GetMember(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing name path param"})
	}
	dto, err := h.uc.FindByName(c.Request().Context(), name)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
