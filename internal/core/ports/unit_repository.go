package ports

import (
	"context"

	"github.com/residenthub/society-api/internal/core/domain"
)

// UnitRepository defines persistence operations for units.
type UnitRepository interface {
	// Create inserts a unit. A duplicate (society, building, number) slot
	// yields domain.ErrUnitExists.
	Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	FindByID(ctx context.Context, id string) (*domain.Unit, error)
	// SlotTaken reports whether a different unit already occupies the slot.
	SlotTaken(ctx context.Context, societyID, buildingName, unitNumber, excludeID string) (bool, error)

	FindAll(ctx context.Context) ([]*domain.Unit, error)
	FindBySociety(ctx context.Context, societyID string) ([]*domain.Unit, error)

	Update(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
	CountBySociety(ctx context.Context, societyID string) (int64, error)
}
