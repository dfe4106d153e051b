package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"koperasi-backend/internal/domain/access"
	"koperasi-backend/internal/domain/member"
	"koperasi-backend/internal/usecase/auth"
)

// Auth extracts the Bearer token, validates it and stores the caller's
// identity for the handlers and the visibility filter.
func Auth(uc *auth.Usecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "access token required"})
			}
			token := strings.TrimPrefix(header, "Bearer ")

			claims, err := uc.Validate(token)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "access token expired"})
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid access token"})
			}

			c.Set(access.CtxKey, access.Identity{
				Name: claims.Name,
				Role: member.Role(claims.Role),
			})
			return next(c)
		}
	}
}

// RequireRole gates a route group to the given roles. It assumes Auth ran
// earlier in the chain.
func RequireRole(roles ...member.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := c.Get(access.CtxKey).(access.Identity)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			for _, r := range roles {
				if id.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
		}
	}
}

// AdminOnly restricts a route to administrators.
func AdminOnly() echo.MiddlewareFunc {
	return RequireRole(member.RoleAdministrator)
}
