package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"koperasi-backend/internal/usecase/dashboard"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary returns the aggregate figures. Administrators get the
// cooperative-wide view; member-role callers get savings scoped to their own
// records.
func (h *DashboardHandler) Summary(c echo.Context) error {
	id := identityFrom(c)
	memberName := ""
	if !id.Admin() {
		memberName = id.Name
	}
	s, err := h.uc.Build(c.Request().Context(), memberName)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}
