package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

// SocietyHandler handles HTTP requests for society operations.
type SocietyHandler struct {
	service ports.SocietyService
}

func NewSocietyHandler(service ports.SocietyService) *SocietyHandler {
	return &SocietyHandler{service: service}
}

// --- Request / Response types ---

type createSocietyRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=200"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Pincode      string `json:"pincode" validate:"required,min=4,max=10"`
	SocietyType  string `json:"society_type" validate:"required,oneof=APARTMENT VILLA ROW_HOUSE GATED_COMMUNITY"`
}

type updateSocietyRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	AddressLine1 *string `json:"address_line1,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Pincode      *string `json:"pincode,omitempty" validate:"omitempty,min=4,max=10"`
	SocietyType  *string `json:"society_type,omitempty" validate:"omitempty,oneof=APARTMENT VILLA ROW_HOUSE GATED_COMMUNITY"`
}

// publicSocietyResponse hides internal fields from the unauthenticated
// signup flow.
type publicSocietyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	City        string `json:"city"`
	State       string `json:"state"`
	SocietyType string `json:"society_type"`
}

// Create registers a society for the acting admin.
//
// @Summary      Create a society
// @Tags         societies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSocietyRequest  true  "Society details"
// @Success      201   {object}  domain.Society
// @Failure      409   {object}  map[string]string
// @Router       /v1/societies [post]
func (h *SocietyHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createSocietyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	society, err := h.service.Create(c.Request().Context(), actor, ports.CreateSocietyInput{
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		SocietyType:  domain.SocietyType(req.SocietyType),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, society)
}

// ListPublic returns active societies for the resident signup flow.
//
// @Summary      List active societies (public)
// @Tags         societies
// @Produce      json
// @Success      200  {array}  publicSocietyResponse
// @Router       /v1/public/societies [get]
func (h *SocietyHandler) ListPublic(c echo.Context) error {
	societies, err := h.service.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]publicSocietyResponse, 0, len(societies))
	for _, s := range societies {
		resp = append(resp, publicSocietyResponse{
			ID:          s.ID,
			Name:        s.Name,
			Code:        s.Code,
			City:        s.City,
			State:       s.State,
			SocietyType: string(s.SocietyType),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// List returns the societies visible to the actor.
//
// @Summary      List societies
// @Tags         societies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Society
// @Router       /v1/societies [get]
func (h *SocietyHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	societies, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, societies)
}

// Get returns a single society.
//
// @Summary      Get a society
// @Tags         societies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Society ID"
// @Success      200  {object}  domain.Society
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/societies/{id} [get]
func (h *SocietyHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	society, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, society)
}

// Update applies partial changes to a society.
//
// @Summary      Update a society
// @Tags         societies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Society ID"
// @Param        body  body      updateSocietyRequest  true  "Fields to change"
// @Success      200   {object}  domain.Society
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/societies/{id} [patch]
func (h *SocietyHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateSocietyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateSocietyInput{
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
	}
	if req.SocietyType != nil {
		t := domain.SocietyType(*req.SocietyType)
		in.SocietyType = &t
	}

	society, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, society)
}

// Deactivate soft-deletes a society.
//
// @Summary      Deactivate a society
// @Tags         societies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Society ID"
// @Success      200  {object}  domain.Society
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/societies/{id} [delete]
func (h *SocietyHandler) Deactivate(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	society, err := h.service.Deactivate(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, society)
}
