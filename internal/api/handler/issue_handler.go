package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/residenthub/society-api/internal/api/metrics"
	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

// IssueHandler handles HTTP requests for issue tickets.
type IssueHandler struct {
	service ports.IssueService
}

func NewIssueHandler(service ports.IssueService) *IssueHandler {
	return &IssueHandler{service: service}
}

// --- Request / Response types ---

type createIssueRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	UnitID      string `json:"unit_id,omitempty"`
}

type updateIssueRequest struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description     *string `json:"description,omitempty"`
	Priority        *string `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	ResolutionNotes *string `json:"resolution_notes,omitempty"`
}

// Create raises a ticket.
//
// @Summary      Create an issue
// @Tags         issues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIssueRequest  true  "Issue details"
// @Success      201   {object}  domain.Issue
// @Failure      400   {object}  map[string]string
// @Router       /v1/issues [post]
func (h *IssueHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createIssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	issue, err := h.service.Create(c.Request().Context(), actor, ports.CreateIssueInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.IssuePriority(req.Priority),
		UnitID:      req.UnitID,
	})
	if err != nil {
		return err
	}

	metrics.IssuesCreatedTotal.WithLabelValues(string(issue.Priority)).Inc()
	return c.JSON(http.StatusCreated, issue)
}

// List returns the tickets visible to the actor, optionally filtered by
// status via the "status" query parameter.
//
// @Summary      List issues
// @Tags         issues
// @Produce      json
// @Security     BearerAuth
// @Param        status  query    string  false  "Filter by status"  Enums(OPEN, IN_PROGRESS, RESOLVED, CLOSED)
// @Success      200     {array}  domain.Issue
// @Router       /v1/issues [get]
func (h *IssueHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if status := c.QueryParam("status"); status != "" {
		s := domain.IssueStatus(status)
		if !s.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
		issues, err := h.service.ListByStatus(c.Request().Context(), actor, s)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, issues)
	}

	issues, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, issues)
}

// Get returns a single ticket.
//
// @Summary      Get an issue
// @Tags         issues
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Issue ID"
// @Success      200  {object}  domain.Issue
// @Failure      404  {object}  map[string]string
// @Router       /v1/issues/{id} [get]
func (h *IssueHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	issue, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, issue)
}

// Update applies partial changes, including status transitions for staff.
//
// @Summary      Update an issue
// @Tags         issues
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Issue ID"
// @Param        body  body      updateIssueRequest  true  "Fields to change"
// @Success      200   {object}  domain.Issue
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/issues/{id} [patch]
func (h *IssueHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateIssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateIssueInput{
		Title:           req.Title,
		Description:     req.Description,
		ResolutionNotes: req.ResolutionNotes,
	}
	if req.Priority != nil {
		p := domain.IssuePriority(*req.Priority)
		in.Priority = &p
	}
	if req.Status != nil {
		s := domain.IssueStatus(*req.Status)
		in.Status = &s
	}

	issue, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, issue)
}
