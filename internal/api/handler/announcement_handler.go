package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/residenthub/society-api/internal/core/ports"
)

// AnnouncementHandler handles HTTP requests for society notices.
type AnnouncementHandler struct {
	service ports.AnnouncementService
}

func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// --- Request / Response types ---

type createAnnouncementRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=200"`
	Content     string     `json:"content" validate:"required"`
	IsImportant bool       `json:"is_important"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

type updateAnnouncementRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Content     *string    `json:"content,omitempty"`
	IsImportant *bool      `json:"is_important,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// Create publishes a notice in the acting admin's society.
//
// @Summary      Create an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAnnouncementRequest  true  "Notice details"
// @Success      201   {object}  domain.Announcement
// @Failure      400   {object}  map[string]string
// @Router       /v1/announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, err := h.service.Create(c.Request().Context(), actor, ports.CreateAnnouncementInput{
		Title:       req.Title,
		Content:     req.Content,
		IsImportant: req.IsImportant,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

// List returns current notices visible to the actor.
//
// @Summary      List announcements
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Announcement
// @Router       /v1/announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	announcements, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcements)
}

// Get returns a single notice.
//
// @Summary      Get an announcement
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Announcement ID"
// @Success      200  {object}  domain.Announcement
// @Failure      404  {object}  map[string]string
// @Router       /v1/announcements/{id} [get]
func (h *AnnouncementHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	a, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Update applies partial changes to a notice.
//
// @Summary      Update an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Announcement ID"
// @Param        body  body      updateAnnouncementRequest  true  "Fields to change"
// @Success      200   {object}  domain.Announcement
// @Failure      403   {object}  map[string]string
// @Router       /v1/announcements/{id} [patch]
func (h *AnnouncementHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateAnnouncementInput{
		Title:       req.Title,
		Content:     req.Content,
		IsImportant: req.IsImportant,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// Delete removes a notice.
//
// @Summary      Delete an announcement
// @Tags         announcements
// @Security     BearerAuth
// @Param        id  path  string  true  "Announcement ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /v1/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
