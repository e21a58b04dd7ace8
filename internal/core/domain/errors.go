package domain

import "errors"

// Sentinel errors for the whole core. Services return these (optionally
// wrapped); the API layer maps them to HTTP status codes in one place.

// Not found.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrSocietyNotFound      = errors.New("society not found")
	ErrUnitNotFound         = errors.New("unit not found")
	ErrResidentNotFound     = errors.New("resident not found")
	ErrJoinRequestNotFound  = errors.New("join request not found")
	ErrMaintenanceNotFound  = errors.New("maintenance record not found")
	ErrIssueNotFound        = errors.New("issue not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// Forbidden.
var (
	ErrForbidden             = errors.New("access forbidden")
	ErrStatusChangeForbidden = errors.New("residents cannot change issue status")
)

// Conflict.
var (
	ErrUserExists           = errors.New("user with this email already exists")
	ErrSocietyExists        = errors.New("admin already manages a society")
	ErrSocietyCodeTaken     = errors.New("society code already taken")
	ErrUnitExists           = errors.New("unit already exists in this society")
	ErrUnitOccupied         = errors.New("unit already has an active resident")
	ErrOwnerSlotTaken       = errors.New("unit already has an active owner")
	ErrTenantSlotTaken      = errors.New("unit already has an active tenant")
	ErrJoinRequestExists    = errors.New("join request already exists for this user")
	ErrJoinRequestProcessed = errors.New("join request has already been processed")
	ErrMaintenanceExists    = errors.New("maintenance for this period already exists for the unit")
	ErrAlreadyPaid          = errors.New("maintenance is already marked as paid")
)

// Bad request.
var (
	ErrNoFieldsToUpdate        = errors.New("no fields provided to update")
	ErrResolutionNotesRequired = errors.New("resolution notes are required when resolving an issue")
	ErrUnitRequired            = errors.New("unit is required for residents")
	ErrOwnerRequired           = errors.New("tenant requires an active owner resident")
	ErrNotInSociety            = errors.New("user does not belong to a society")
	ErrUnitNotInSociety        = errors.New("unit does not belong to the specified society")
	ErrSocietyHasUnits         = errors.New("society still has units")
	ErrUnitHasResidents        = errors.New("unit still has residents")
	ErrInvalidTransition       = errors.New("invalid status transition")
)

// Unauthorized.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account has been suspended")
	ErrAccountPending     = errors.New("account is pending approval")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)
