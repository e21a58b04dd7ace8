package ports

import (
	"context"
	"time"

	"github.com/residenthub/society-api/internal/core/domain"
)

// MaintenanceRepository defines persistence operations for maintenance
// charges.
type MaintenanceRepository interface {
	// Create inserts a charge. A duplicate (unit, month, year) yields
	// domain.ErrMaintenanceExists.
	Create(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error)
	FindByID(ctx context.Context, id string) (*domain.Maintenance, error)

	FindAll(ctx context.Context) ([]*domain.Maintenance, error)
	FindBySociety(ctx context.Context, societyID string) ([]*domain.Maintenance, error)
	FindByUnit(ctx context.Context, unitID string) ([]*domain.Maintenance, error)
	// FindOutstandingByUnit returns UPCOMING/DUE/OVERDUE charges ordered by
	// due date ascending.
	FindOutstandingByUnit(ctx context.Context, unitID string) ([]*domain.Maintenance, error)
	// FindPaidByUnit returns PAID charges, most recently paid first.
	FindPaidByUnit(ctx context.Context, unitID string, limit int) ([]*domain.Maintenance, error)
	// FindDueBySociety returns DUE/OVERDUE charges for the society.
	FindDueBySociety(ctx context.Context, societyID string) ([]*domain.Maintenance, error)

	Update(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error)

	// MarkOverdue flips every DUE charge with dueDate < now to OVERDUE and
	// returns the number of rows changed. Idempotent.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}
