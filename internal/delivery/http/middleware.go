package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"task-service/internal/application/interfaces"
	"task-service/internal/domain/errs"
)

const (
	contextUserKey  = "user"
	contextRolesKey = "roles"
)

// RequireAuth resolves the bearer token to a persisted user. Absent header,
// invalid token and deleted subject all produce the same 401.
func RequireAuth(authService interfaces.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return writeError(c, errs.ErrInvalidToken)
			}
			token := strings.TrimPrefix(header, "Bearer ")

			user, roles, err := authService.Authenticate(c.Request().Context(), token)
			if err != nil {
				return writeError(c, err)
			}

			c.Set(contextUserKey, user)
			c.Set(contextRolesKey, roles)
			return next(c)
		}
	}
}

// RequireRole checks the role claims carried by the token, not the store:
// the claim set is a point-in-time snapshot from issuance.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(contextRolesKey).([]string)
			if !ok {
				return writeError(c, errs.ErrInvalidToken)
			}
			for _, held := range roles {
				if held == role {
					return next(c)
				}
			}
			return writeError(c, errs.ErrForbidden)
		}
	}
}
