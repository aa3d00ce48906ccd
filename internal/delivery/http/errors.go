package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"task-service/internal/domain/errs"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain sentinels to a status plus a short reason string.
// Unrecognized errors become an opaque 500; the underlying cause is only
// ever logged, never returned.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_input"})
	case errors.Is(err, errs.ErrUsernameTaken):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "username_taken"})
	case errors.Is(err, errs.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid_credentials"})
	case errors.Is(err, errs.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "could_not_validate_credentials"})
	case errors.Is(err, errs.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, errs.ErrTaskNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "task_not_found"})
	case errors.Is(err, errs.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user_not_found"})
	case errors.Is(err, errs.ErrAssignmentNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "assignment_not_found"})
	case errors.Is(err, errs.ErrTooManyRequests):
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too_many_requests"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal_error"})
	}
}
