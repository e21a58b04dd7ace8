package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/residenthub/society-api/internal/api/metrics"
	"github.com/residenthub/society-api/internal/core/ports"
)

// MaintenanceHandler handles HTTP requests for maintenance billing.
type MaintenanceHandler struct {
	service ports.MaintenanceService
}

func NewMaintenanceHandler(service ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// --- Request / Response types ---

type createMaintenanceRequest struct {
	UnitID  string    `json:"unit_id" validate:"required"`
	Month   int       `json:"month" validate:"required,min=1,max=12"`
	Year    int       `json:"year" validate:"required,min=2000,max=2100"`
	Amount  float64   `json:"amount" validate:"gt=0"`
	DueDate time.Time `json:"due_date" validate:"required"`
	Notes   string    `json:"notes,omitempty"`
}

type updateMaintenanceRequest struct {
	Amount  *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	DueDate *time.Time `json:"due_date,omitempty"`
	Notes   *string    `json:"notes,omitempty"`
}

type markPaidRequest struct {
	Notes string `json:"notes,omitempty"`
}

type overdueSweepResponse struct {
	Updated int64 `json:"updated"`
}

// Create raises a monthly charge for a unit.
//
// @Summary      Create a maintenance charge
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMaintenanceRequest  true  "Charge details"
// @Success      201   {object}  domain.Maintenance
// @Failure      409   {object}  map[string]string
// @Router       /v1/maintenance [post]
func (h *MaintenanceHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	charge, err := h.service.Create(c.Request().Context(), actor, ports.CreateMaintenanceInput{
		UnitID:  req.UnitID,
		Month:   req.Month,
		Year:    req.Year,
		Amount:  req.Amount,
		DueDate: req.DueDate,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, charge)
}

// List returns the charges visible to the actor.
//
// @Summary      List maintenance charges
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Maintenance
// @Router       /v1/maintenance [get]
func (h *MaintenanceHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	charges, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, charges)
}

// Get returns a single charge.
//
// @Summary      Get a maintenance charge
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Charge ID"
// @Success      200  {object}  domain.Maintenance
// @Failure      404  {object}  map[string]string
// @Router       /v1/maintenance/{id} [get]
func (h *MaintenanceHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	charge, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, charge)
}

// Update applies partial changes to an unpaid charge.
//
// @Summary      Update a maintenance charge
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Charge ID"
// @Param        body  body      updateMaintenanceRequest  true  "Fields to change"
// @Success      200   {object}  domain.Maintenance
// @Failure      409   {object}  map[string]string
// @Router       /v1/maintenance/{id} [patch]
func (h *MaintenanceHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	charge, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateMaintenanceInput{
		Amount:  req.Amount,
		DueDate: req.DueDate,
		Notes:   req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, charge)
}

// MarkPaid records a payment against a charge.
//
// @Summary      Mark a charge as paid
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true   "Charge ID"
// @Param        body  body      markPaidRequest  false  "Payment notes"
// @Success      200   {object}  domain.Maintenance
// @Failure      409   {object}  map[string]string
// @Router       /v1/maintenance/{id}/pay [post]
func (h *MaintenanceHandler) MarkPaid(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req markPaidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	charge, err := h.service.MarkPaid(c.Request().Context(), actor, c.Param("id"), req.Notes)
	if err != nil {
		return err
	}

	metrics.MaintenancePaymentsTotal.Inc()
	return c.JSON(http.StatusOK, charge)
}

// MyDues returns the acting resident's outstanding charges.
//
// @Summary      List own outstanding charges
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Maintenance
// @Router       /v1/maintenance/mine/dues [get]
func (h *MaintenanceHandler) MyDues(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	charges, err := h.service.MyDues(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, charges)
}

// MyHistory returns the acting resident's full charge history.
//
// @Summary      List own charge history
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Maintenance
// @Router       /v1/maintenance/mine/history [get]
func (h *MaintenanceHandler) MyHistory(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	charges, err := h.service.MyHistory(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, charges)
}

// RunOverdueSweep flips DUE charges past their due date to OVERDUE.
//
// @Summary      Run the overdue sweep
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  overdueSweepResponse
// @Router       /v1/maintenance/overdue-sweep [post]
func (h *MaintenanceHandler) RunOverdueSweep(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	updated, err := h.service.UpdateOverdueStatuses(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	metrics.MaintenanceOverdueMarked.Add(float64(updated))
	return c.JSON(http.StatusOK, overdueSweepResponse{Updated: updated})
}
