package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

// UnitHandler handles HTTP requests for unit operations.
type UnitHandler struct {
	service ports.UnitService
}

func NewUnitHandler(service ports.UnitService) *UnitHandler {
	return &UnitHandler{service: service}
}

// --- Request / Response types ---

type createUnitRequest struct {
	BuildingName string  `json:"building_name" validate:"required"`
	UnitNumber   string  `json:"unit_number" validate:"required"`
	FloorNumber  int     `json:"floor_number" validate:"gte=0"`
	UnitType     string  `json:"unit_type" validate:"required,oneof=ONE_BHK TWO_BHK THREE_BHK FOUR_BHK STUDIO PENTHOUSE"`
	AreaSqFt     float64 `json:"area_sq_ft" validate:"gt=0"`
}

type updateUnitRequest struct {
	BuildingName *string  `json:"building_name,omitempty"`
	UnitNumber   *string  `json:"unit_number,omitempty"`
	FloorNumber  *int     `json:"floor_number,omitempty" validate:"omitempty,gte=0"`
	UnitType     *string  `json:"unit_type,omitempty" validate:"omitempty,oneof=ONE_BHK TWO_BHK THREE_BHK FOUR_BHK STUDIO PENTHOUSE"`
	AreaSqFt     *float64 `json:"area_sq_ft,omitempty" validate:"omitempty,gt=0"`
}

// Create registers a unit in the acting admin's society.
//
// @Summary      Create a unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUnitRequest  true  "Unit details"
// @Success      201   {object}  domain.Unit
// @Failure      409   {object}  map[string]string
// @Router       /v1/units [post]
func (h *UnitHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	unit, err := h.service.Create(c.Request().Context(), actor, ports.CreateUnitInput{
		BuildingName: req.BuildingName,
		UnitNumber:   req.UnitNumber,
		FloorNumber:  req.FloorNumber,
		UnitType:     domain.UnitType(req.UnitType),
		AreaSqFt:     req.AreaSqFt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, unit)
}

// List returns the units visible to the actor.
//
// @Summary      List units
// @Tags         units
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Unit
// @Router       /v1/units [get]
func (h *UnitHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	units, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, units)
}

// ListBySociety returns the units of one society.
//
// @Summary      List units of a society
// @Tags         units
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Society ID"
// @Success      200  {array}  domain.Unit
// @Failure      403  {object} map[string]string
// @Router       /v1/societies/{id}/units [get]
func (h *UnitHandler) ListBySociety(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	units, err := h.service.ListBySociety(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, units)
}

// ListAvailable returns vacant units for the join-request flow.
//
// @Summary      List available units of a society (public)
// @Tags         units
// @Produce      json
// @Param        id   path     string  true  "Society ID"
// @Success      200  {array}  domain.Unit
// @Failure      404  {object} map[string]string
// @Router       /v1/public/societies/{id}/units [get]
func (h *UnitHandler) ListAvailable(c echo.Context) error {
	units, err := h.service.ListAvailable(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, units)
}

// Get returns a single unit.
//
// @Summary      Get a unit
// @Tags         units
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Unit ID"
// @Success      200  {object}  domain.Unit
// @Failure      404  {object}  map[string]string
// @Router       /v1/units/{id} [get]
func (h *UnitHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	unit, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// Update applies partial changes to a unit.
//
// @Summary      Update a unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Unit ID"
// @Param        body  body      updateUnitRequest  true  "Fields to change"
// @Success      200   {object}  domain.Unit
// @Failure      409   {object}  map[string]string
// @Router       /v1/units/{id} [patch]
func (h *UnitHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateUnitInput{
		BuildingName: req.BuildingName,
		UnitNumber:   req.UnitNumber,
		FloorNumber:  req.FloorNumber,
		AreaSqFt:     req.AreaSqFt,
	}
	if req.UnitType != nil {
		t := domain.UnitType(*req.UnitType)
		in.UnitType = &t
	}

	unit, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// Delete removes a unit.
//
// @Summary      Delete a unit
// @Tags         units
// @Security     BearerAuth
// @Param        id  path  string  true  "Unit ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /v1/units/{id} [delete]
func (h *UnitHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
