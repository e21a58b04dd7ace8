package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/residenthub/society-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case isNotFound(err):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrStatusChangeForbidden):
		return http.StatusForbidden, err.Error()
	case isConflict(err):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case isBadRequest(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidResetToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrAccountSuspended),
		errors.Is(err, domain.ErrAccountPending):
		return http.StatusForbidden, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func isNotFound(err error) bool {
	for _, target := range []error{
		domain.ErrUserNotFound,
		domain.ErrSocietyNotFound,
		domain.ErrUnitNotFound,
		domain.ErrResidentNotFound,
		domain.ErrJoinRequestNotFound,
		domain.ErrMaintenanceNotFound,
		domain.ErrIssueNotFound,
		domain.ErrAnnouncementNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isConflict(err error) bool {
	for _, target := range []error{
		domain.ErrUserExists,
		domain.ErrSocietyExists,
		domain.ErrSocietyCodeTaken,
		domain.ErrUnitExists,
		domain.ErrUnitOccupied,
		domain.ErrOwnerSlotTaken,
		domain.ErrTenantSlotTaken,
		domain.ErrJoinRequestExists,
		domain.ErrJoinRequestProcessed,
		domain.ErrMaintenanceExists,
		domain.ErrAlreadyPaid,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isBadRequest(err error) bool {
	for _, target := range []error{
		domain.ErrNoFieldsToUpdate,
		domain.ErrResolutionNotesRequired,
		domain.ErrUnitRequired,
		domain.ErrOwnerRequired,
		domain.ErrNotInSociety,
		domain.ErrUnitNotInSociety,
		domain.ErrSocietyHasUnits,
		domain.ErrUnitHasResidents,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
