package ports

import (
	"context"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
)

// CreateUnitInput carries the data needed to register a unit in the acting
// admin's society.
type CreateUnitInput struct {
	BuildingName string
	UnitNumber   string
	FloorNumber  int
	UnitType     domain.UnitType
	AreaSqFt     float64
}

// UpdateUnitInput applies partial changes; nil means unchanged.
type UpdateUnitInput struct {
	BuildingName *string
	UnitNumber   *string
	FloorNumber  *int
	UnitType     *domain.UnitType
	AreaSqFt     *float64
}

// UnitService defines dwelling operations.
type UnitService interface {
	Create(ctx context.Context, actor access.Actor, in CreateUnitInput) (*domain.Unit, error)
	List(ctx context.Context, actor access.Actor) ([]*domain.Unit, error)
	ListBySociety(ctx context.Context, actor access.Actor, societyID string) ([]*domain.Unit, error)
	// ListAvailable is public: units in the society with no active resident,
	// for the join-request flow.
	ListAvailable(ctx context.Context, societyID string) ([]*domain.Unit, error)
	Get(ctx context.Context, actor access.Actor, id string) (*domain.Unit, error)
	Update(ctx context.Context, actor access.Actor, id string, in UpdateUnitInput) (*domain.Unit, error)
	// Delete removes a unit; blocked while residents exist.
	Delete(ctx context.Context, actor access.Actor, id string) error
}
