package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/residenthub/society-api/internal/api/middleware"
	"github.com/residenthub/society-api/internal/core/access"
)

// ctxActor extracts the acting principal injected by the Auth middleware
// and performs a fast-fail check before any service call: a missing or
// empty actor means the middleware did not run on this route.
func ctxActor(c echo.Context) (access.Actor, error) {
	actor, ok := c.Get(middleware.ContextKeyActor).(access.Actor)
	if !ok || actor.UserID == "" {
		return access.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}
