package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/ports"
)

// Context keys set by Auth for downstream middleware and handlers.
const (
	ContextKeyActor = "actor"
	ContextKeyUser  = "user"
)

// Auth validates the JWT, re-fetches the live user record, and injects the
// acting principal into context. The token only proves identity; role,
// society, unit, and account status always come from storage so that a
// suspension or approval takes effect on the next request, not on token
// expiry.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["sub"].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			u, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}

			c.Set(ContextKeyUser, u)
			c.Set(ContextKeyActor, access.Actor{
				UserID:    u.ID,
				Role:      u.Role,
				SocietyID: u.SocietyID,
				UnitID:    u.UnitID,
			})

			return next(c)
		}
	}
}
