package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/residenthub/society-api/internal/api/metrics"
	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

// ResidentHandler handles HTTP requests for join requests and resident
// records.
type ResidentHandler struct {
	service ports.ResidentService
}

func NewResidentHandler(service ports.ResidentService) *ResidentHandler {
	return &ResidentHandler{service: service}
}

// --- Request / Response types ---

type joinRequestRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	SocietyID string `json:"society_id" validate:"required"`
	UnitID    string `json:"unit_id" validate:"required"`
}

type rejectJoinRequestRequest struct {
	Reason string `json:"reason"`
}

type createResidentRequest struct {
	UserID          string `json:"user_id" validate:"required"`
	UnitID          string `json:"unit_id" validate:"required"`
	ResidentType    string `json:"resident_type" validate:"required,oneof=OWNER TENANT"`
	OwnerResidentID string `json:"owner_resident_id,omitempty"`
}

// SubmitJoinRequest registers a prospective resident and their application.
//
// @Summary      Submit a join request (public)
// @Tags         join-requests
// @Accept       json
// @Produce      json
// @Param        body  body      joinRequestRequest  true  "Applicant and target unit"
// @Success      201   {object}  ports.JoinRequestResult
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/public/join-requests [post]
func (h *ResidentHandler) SubmitJoinRequest(c echo.Context) error {
	var req joinRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.SubmitJoinRequest(c.Request().Context(), ports.JoinRequestInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		SocietyID: req.SocietyID,
		UnitID:    req.UnitID,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues("resident").Inc()
	return c.JSON(http.StatusCreated, result)
}

// MyJoinRequest returns the acting user's own application.
//
// @Summary      Get own join request
// @Tags         join-requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ResidentJoinRequest
// @Failure      404  {object}  map[string]string
// @Router       /v1/join-requests/mine [get]
func (h *ResidentHandler) MyJoinRequest(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	jr, err := h.service.MyJoinRequest(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jr)
}

// ListJoinRequests returns the applications visible to the actor.
//
// @Summary      List join requests
// @Tags         join-requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ResidentJoinRequest
// @Router       /v1/join-requests [get]
func (h *ResidentHandler) ListJoinRequests(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	requests, err := h.service.ListJoinRequests(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// GetJoinRequest returns a single application.
//
// @Summary      Get a join request
// @Tags         join-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Join request ID"
// @Success      200  {object}  domain.ResidentJoinRequest
// @Failure      404  {object}  map[string]string
// @Router       /v1/join-requests/{id} [get]
func (h *ResidentHandler) GetJoinRequest(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	jr, err := h.service.GetJoinRequest(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jr)
}

// Approve accepts an application and activates the applicant.
//
// @Summary      Approve a join request
// @Tags         join-requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Join request ID"
// @Success      200  {object}  domain.ResidentJoinRequest
// @Failure      409  {object}  map[string]string
// @Router       /v1/join-requests/{id}/approve [post]
func (h *ResidentHandler) Approve(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	jr, err := h.service.Approve(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.JoinRequestsDecidedTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, jr)
}

// Reject declines an application; the applicant stays pending.
//
// @Summary      Reject a join request
// @Tags         join-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true   "Join request ID"
// @Param        body  body      rejectJoinRequestRequest  false  "Rejection reason"
// @Success      200   {object}  domain.ResidentJoinRequest
// @Failure      409   {object}  map[string]string
// @Router       /v1/join-requests/{id}/reject [post]
func (h *ResidentHandler) Reject(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req rejectJoinRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	jr, err := h.service.Reject(c.Request().Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		return err
	}

	metrics.JoinRequestsDecidedTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, jr)
}

// CreateResident registers an approved user on a unit.
//
// @Summary      Create a resident record
// @Tags         residents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createResidentRequest  true  "Resident details"
// @Success      201   {object}  domain.Resident
// @Failure      409   {object}  map[string]string
// @Router       /v1/residents [post]
func (h *ResidentHandler) CreateResident(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createResidentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resident, err := h.service.CreateResident(c.Request().Context(), actor, ports.CreateResidentInput{
		UserID:          req.UserID,
		UnitID:          req.UnitID,
		ResidentType:    domain.ResidentType(req.ResidentType),
		OwnerResidentID: req.OwnerResidentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resident)
}

// ListResidents returns the resident records visible to the actor.
//
// @Summary      List residents
// @Tags         residents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Resident
// @Router       /v1/residents [get]
func (h *ResidentHandler) ListResidents(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	residents, err := h.service.ListResidents(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, residents)
}

// GetResident returns a single resident record.
//
// @Summary      Get a resident
// @Tags         residents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resident ID"
// @Success      200  {object}  domain.Resident
// @Failure      404  {object}  map[string]string
// @Router       /v1/residents/{id} [get]
func (h *ResidentHandler) GetResident(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	resident, err := h.service.GetResident(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resident)
}

// DeactivateResident suspends a resident record and frees the unit slot.
//
// @Summary      Deactivate a resident
// @Tags         residents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resident ID"
// @Success      200  {object}  domain.Resident
// @Failure      404  {object}  map[string]string
// @Router       /v1/residents/{id} [delete]
func (h *ResidentHandler) DeactivateResident(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	resident, err := h.service.DeactivateResident(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resident)
}
