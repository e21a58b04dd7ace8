package ports

import (
	"context"
	"time"

	"github.com/residenthub/society-api/internal/core/domain"
)

// ResidentRepository defines persistence operations for resident records.
type ResidentRepository interface {
	Create(ctx context.Context, r *domain.Resident) (*domain.Resident, error)
	FindByID(ctx context.Context, id string) (*domain.Resident, error)
	// FindActiveByUnitAndType returns the ACTIVE resident of the given type
	// on the unit, or domain.ErrResidentNotFound when the slot is free.
	FindActiveByUnitAndType(ctx context.Context, unitID string, t domain.ResidentType) (*domain.Resident, error)

	FindAll(ctx context.Context) ([]*domain.Resident, error)
	FindBySociety(ctx context.Context, societyID string) ([]*domain.Resident, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.Resident, error)

	SetStatus(ctx context.Context, id string, status domain.ResidentStatus, at time.Time) error
}
