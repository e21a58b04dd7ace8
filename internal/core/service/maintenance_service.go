package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

// MaintenanceService implements monthly billing.
type MaintenanceService struct {
	maintenance ports.MaintenanceRepository
	units       ports.UnitRepository
	logger      zerolog.Logger
}

func NewMaintenanceService(maintenance ports.MaintenanceRepository, units ports.UnitRepository, logger zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{maintenance: maintenance, units: units, logger: logger}
}

// Create raises a monthly charge against a unit. The initial status is DUE
// when the due date is already past, UPCOMING otherwise. One charge per
// (unit, month, year).
func (s *MaintenanceService) Create(ctx context.Context, actor access.Actor, in ports.CreateMaintenanceInput) (*domain.Maintenance, error) {
	unit, err := s.units.FindByID(ctx, in.UnitID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	charge := &domain.Maintenance{
		SocietyID: unit.SocietyID,
		UnitID:    unit.ID,
		Month:     in.Month,
		Year:      in.Year,
		Amount:    in.Amount,
		DueDate:   in.DueDate,
		Status:    domain.InitialMaintenanceStatus(in.DueDate, now),
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !access.CanManageMaintenance(actor, charge) {
		return nil, domain.ErrForbidden
	}

	created, err := s.maintenance.Create(ctx, charge)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("maintenance_id", created.ID).Str("unit_id", unit.ID).Int("month", in.Month).Int("year", in.Year).Msg("maintenance charge created")
	return created, nil
}

// List scopes to the actor: the platform owner sees every charge, admins
// their society's, residents their own unit's.
func (s *MaintenanceService) List(ctx context.Context, actor access.Actor) ([]*domain.Maintenance, error) {
	switch actor.Role {
	case domain.RolePlatformOwner:
		return s.maintenance.FindAll(ctx)
	case domain.RoleSocietyAdmin:
		if actor.SocietyID == "" {
			return []*domain.Maintenance{}, nil
		}
		return s.maintenance.FindBySociety(ctx, actor.SocietyID)
	default:
		if actor.UnitID == "" {
			return []*domain.Maintenance{}, nil
		}
		return s.maintenance.FindByUnit(ctx, actor.UnitID)
	}
}

func (s *MaintenanceService) Get(ctx context.Context, actor access.Actor, id string) (*domain.Maintenance, error) {
	charge, err := s.maintenance.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanViewMaintenance(actor, charge) {
		return nil, domain.ErrForbidden
	}
	return charge, nil
}

// Update applies partial changes to an unpaid charge. Changing the due date
// recomputes UPCOMING/DUE; a paid charge is immutable.
func (s *MaintenanceService) Update(ctx context.Context, actor access.Actor, id string, in ports.UpdateMaintenanceInput) (*domain.Maintenance, error) {
	charge, err := s.maintenance.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanManageMaintenance(actor, charge) {
		return nil, domain.ErrForbidden
	}
	if charge.Status == domain.MaintenancePaid {
		return nil, domain.ErrAlreadyPaid
	}

	changed := false
	if in.Amount != nil {
		charge.Amount = *in.Amount
		changed = true
	}
	if in.DueDate != nil {
		charge.DueDate = *in.DueDate
		changed = true
	}
	if in.Notes != nil {
		charge.Notes = *in.Notes
		changed = true
	}
	if !changed {
		return nil, domain.ErrNoFieldsToUpdate
	}

	now := time.Now().UTC()
	if in.DueDate != nil {
		charge.Status = domain.InitialMaintenanceStatus(charge.DueDate, now)
	}
	charge.UpdatedAt = now
	return s.maintenance.Update(ctx, charge)
}

// MarkPaid records payment. Only the society's admin (or the platform
// owner) settles charges; residents see their dues but cannot clear them.
// PAID is terminal, a second attempt yields domain.ErrAlreadyPaid.
func (s *MaintenanceService) MarkPaid(ctx context.Context, actor access.Actor, id, notes string) (*domain.Maintenance, error) {
	charge, err := s.maintenance.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanManageMaintenance(actor, charge) {
		return nil, domain.ErrForbidden
	}
	if charge.Status == domain.MaintenancePaid {
		return nil, domain.ErrAlreadyPaid
	}

	now := time.Now().UTC()
	charge.Status = domain.MaintenancePaid
	charge.PaidAt = &now
	charge.PaidBy = actor.UserID
	if notes != "" {
		charge.Notes = notes
	}
	charge.UpdatedAt = now

	updated, err := s.maintenance.Update(ctx, charge)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("maintenance_id", id).Str("paid_by", actor.UserID).Msg("maintenance charge paid")
	return updated, nil
}

// MyDues lists the acting resident's outstanding charges, earliest due
// first. A resident without a unit gets an empty list.
func (s *MaintenanceService) MyDues(ctx context.Context, actor access.Actor) ([]*domain.Maintenance, error) {
	if actor.UnitID == "" {
		return []*domain.Maintenance{}, nil
	}
	return s.maintenance.FindOutstandingByUnit(ctx, actor.UnitID)
}

// MyHistory lists the acting resident's settled charges, latest payment
// first.
func (s *MaintenanceService) MyHistory(ctx context.Context, actor access.Actor) ([]*domain.Maintenance, error) {
	if actor.UnitID == "" {
		return []*domain.Maintenance{}, nil
	}
	return s.maintenance.FindPaidByUnit(ctx, actor.UnitID, 0)
}

// UpdateOverdueStatuses flips every DUE charge past its due date to
// OVERDUE. Idempotent: a second run with no newly lapsed charges reports
// zero.
func (s *MaintenanceService) UpdateOverdueStatuses(ctx context.Context, actor access.Actor) (int64, error) {
	count, err := s.maintenance.MarkOverdue(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int64("count", count).Str("by", actor.UserID).Msg("overdue sweep completed")
	return count, nil
}
