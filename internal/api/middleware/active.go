package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/residenthub/society-api/internal/core/domain"
)

// RequireActive blocks non-ACTIVE accounts from protected routes. Runs
// after Auth, which stores the live user record in context.
func RequireActive() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := c.Get(ContextKeyUser).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			switch u.Status {
			case domain.AccountActive:
				return next(c)
			case domain.AccountSuspended:
				return echo.NewHTTPError(http.StatusForbidden, "account has been suspended")
			case domain.AccountPendingApproval:
				return echo.NewHTTPError(http.StatusForbidden, "account is pending approval")
			default:
				return echo.NewHTTPError(http.StatusForbidden, "account is not active")
			}
		}
	}
}
