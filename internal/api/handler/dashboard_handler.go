package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

// DashboardHandler handles HTTP requests for role rollups.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get returns the rollup for the actor's role.
//
// @Summary      Get the role dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ResidentDashboard
// @Failure      403  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	switch actor.Role {
	case domain.RoleResident:
		dash, err := h.service.Resident(ctx, actor)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dash)
	case domain.RoleSocietyAdmin:
		dash, err := h.service.SocietyAdmin(ctx, actor)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dash)
	case domain.RolePlatformOwner:
		dash, err := h.service.PlatformOwner(ctx)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dash)
	default:
		return echo.NewHTTPError(http.StatusForbidden, "unknown role")
	}
}
