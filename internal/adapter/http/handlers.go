package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"koperasi-backend/internal/domain/access"
	"koperasi-backend/internal/domain/errs"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// identityFrom reads the caller set by the auth middleware. Routes behind the
// middleware always have one; the zero Identity only appears in tests that
// call handlers directly.
func identityFrom(c echo.Context) access.Identity {
	if id, ok := c.Get(access.CtxKey).(access.Identity); ok {
		return id
	}
	return access.Identity{}
}

// writeDomainError maps domain error kinds onto HTTP statuses. Unknown errors
// become a 500 with no internals leaked.
func writeDomainError(c echo.Context, err error) error {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		details := make([]FieldError, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			details = append(details, FieldError{Field: f, Message: "is invalid"})
		}
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: details})
	}
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, errs.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrDuplicate):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
