package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	memberDomain "koperasi-backend/internal/domain/member"
	"koperasi-backend/internal/usecase/auth"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=administrator member"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	out, err := h.uc.Login(auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Role:     memberDomain.Role(req.Role),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Me echoes the authenticated identity back to the caller.
func (h *AuthHandler) Me(c echo.Context) error {
	id := identityFrom(c)
	return c.JSON(http.StatusOK, map[string]string{
		"name": id.Name,
		"role": string(id.Role),
	})
}
