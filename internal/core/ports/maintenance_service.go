package ports

import (
	"context"
	"time"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
)

// CreateMaintenanceInput carries a monthly charge for a unit.
type CreateMaintenanceInput struct {
	UnitID  string
	Month   int
	Year    int
	Amount  float64
	DueDate time.Time
	Notes   string
}

// UpdateMaintenanceInput applies partial changes; nil means unchanged.
type UpdateMaintenanceInput struct {
	Amount  *float64
	DueDate *time.Time
	Notes   *string
}

// MaintenanceService defines billing operations.
type MaintenanceService interface {
	Create(ctx context.Context, actor access.Actor, in CreateMaintenanceInput) (*domain.Maintenance, error)
	List(ctx context.Context, actor access.Actor) ([]*domain.Maintenance, error)
	Get(ctx context.Context, actor access.Actor, id string) (*domain.Maintenance, error)
	Update(ctx context.Context, actor access.Actor, id string, in UpdateMaintenanceInput) (*domain.Maintenance, error)
	// MarkPaid stamps payer and timestamp. Restricted to the society's
	// admin and the platform owner; an already-PAID charge yields
	// domain.ErrAlreadyPaid.
	MarkPaid(ctx context.Context, actor access.Actor, id, notes string) (*domain.Maintenance, error)
	// MyDues lists the acting resident's outstanding charges; a resident
	// without a unit gets an empty result, not an error.
	MyDues(ctx context.Context, actor access.Actor) ([]*domain.Maintenance, error)
	MyHistory(ctx context.Context, actor access.Actor) ([]*domain.Maintenance, error)
	// UpdateOverdueStatuses is the idempotent DUE→OVERDUE batch, triggered
	// externally (cron or manual). Returns the number of rows flipped.
	UpdateOverdueStatuses(ctx context.Context, actor access.Actor) (int64, error)
}
