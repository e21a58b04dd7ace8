package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

// UnitService implements dwelling operations.
type UnitService struct {
	units     ports.UnitRepository
	societies ports.SocietyRepository
	users     ports.UserRepository
	logger    zerolog.Logger
}

func NewUnitService(units ports.UnitRepository, societies ports.SocietyRepository, users ports.UserRepository, logger zerolog.Logger) *UnitService {
	return &UnitService{units: units, societies: societies, users: users, logger: logger}
}

// Create registers a unit in the acting admin's society. The
// (building, number) slot must be free within the society.
func (s *UnitService) Create(ctx context.Context, actor access.Actor, in ports.CreateUnitInput) (*domain.Unit, error) {
	if actor.SocietyID == "" {
		return nil, domain.ErrNotInSociety
	}
	society, err := s.societies.FindByID(ctx, actor.SocietyID)
	if err != nil {
		return nil, err
	}
	if !access.CanManageSociety(actor, society) {
		return nil, domain.ErrForbidden
	}

	taken, err := s.units.SlotTaken(ctx, society.ID, in.BuildingName, in.UnitNumber, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUnitExists
	}

	now := time.Now().UTC()
	unit := &domain.Unit{
		SocietyID:    society.ID,
		BuildingName: in.BuildingName,
		UnitNumber:   in.UnitNumber,
		FloorNumber:  in.FloorNumber,
		UnitType:     in.UnitType,
		AreaSqFt:     in.AreaSqFt,
		Status:       domain.UnitVacant,
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.units.Create(ctx, unit)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("unit_id", created.ID).Str("society_id", society.ID).Str("slot", created.Slot()).Msg("unit created")
	return created, nil
}

// List scopes to the actor: the platform owner sees every unit, members see
// their society's.
func (s *UnitService) List(ctx context.Context, actor access.Actor) ([]*domain.Unit, error) {
	if actor.Role == domain.RolePlatformOwner {
		return s.units.FindAll(ctx)
	}
	if actor.SocietyID == "" {
		return []*domain.Unit{}, nil
	}
	return s.units.FindBySociety(ctx, actor.SocietyID)
}

func (s *UnitService) ListBySociety(ctx context.Context, actor access.Actor, societyID string) ([]*domain.Unit, error) {
	if actor.Role != domain.RolePlatformOwner && actor.SocietyID != societyID {
		return nil, domain.ErrForbidden
	}
	if _, err := s.societies.FindByID(ctx, societyID); err != nil {
		return nil, err
	}
	return s.units.FindBySociety(ctx, societyID)
}

// ListAvailable is the public listing for the join-request flow: units in
// the society not currently held by an active resident.
func (s *UnitService) ListAvailable(ctx context.Context, societyID string) ([]*domain.Unit, error) {
	if _, err := s.societies.FindByID(ctx, societyID); err != nil {
		return nil, err
	}
	units, err := s.units.FindBySociety(ctx, societyID)
	if err != nil {
		return nil, err
	}
	occupiedIDs, err := s.users.ActiveResidentUnitIDs(ctx, societyID)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]struct{}, len(occupiedIDs))
	for _, id := range occupiedIDs {
		occupied[id] = struct{}{}
	}

	available := make([]*domain.Unit, 0, len(units))
	for _, u := range units {
		if _, ok := occupied[u.ID]; !ok {
			available = append(available, u)
		}
	}
	return available, nil
}

func (s *UnitService) Get(ctx context.Context, actor access.Actor, id string) (*domain.Unit, error) {
	unit, err := s.units.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanViewUnit(actor, unit) {
		return nil, domain.ErrForbidden
	}
	return unit, nil
}

func (s *UnitService) Update(ctx context.Context, actor access.Actor, id string, in ports.UpdateUnitInput) (*domain.Unit, error) {
	unit, err := s.units.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	society, err := s.societies.FindByID(ctx, unit.SocietyID)
	if err != nil {
		return nil, err
	}
	if !access.CanManageUnit(actor, unit, society) {
		return nil, domain.ErrForbidden
	}

	changed := false
	if in.BuildingName != nil {
		unit.BuildingName = *in.BuildingName
		changed = true
	}
	if in.UnitNumber != nil {
		unit.UnitNumber = *in.UnitNumber
		changed = true
	}
	if in.FloorNumber != nil {
		unit.FloorNumber = *in.FloorNumber
		changed = true
	}
	if in.UnitType != nil {
		unit.UnitType = *in.UnitType
		changed = true
	}
	if in.AreaSqFt != nil {
		unit.AreaSqFt = *in.AreaSqFt
		changed = true
	}
	if !changed {
		return nil, domain.ErrNoFieldsToUpdate
	}

	if in.BuildingName != nil || in.UnitNumber != nil {
		taken, err := s.units.SlotTaken(ctx, unit.SocietyID, unit.BuildingName, unit.UnitNumber, unit.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrUnitExists
		}
	}

	unit.UpdatedAt = time.Now().UTC()
	return s.units.Update(ctx, unit)
}

// Delete removes a unit. Blocked while the unit still has resident records
// or an active resident user attached to it.
func (s *UnitService) Delete(ctx context.Context, actor access.Actor, id string) error {
	unit, err := s.units.FindByID(ctx, id)
	if err != nil {
		return err
	}
	society, err := s.societies.FindByID(ctx, unit.SocietyID)
	if err != nil {
		return err
	}
	if !access.CanManageUnit(actor, unit, society) {
		return domain.ErrForbidden
	}

	if unit.OwnerResidentID != "" || unit.TenantResidentID != "" {
		return domain.ErrUnitHasResidents
	}
	if _, err := s.users.FindActiveResidentByUnit(ctx, id); err == nil {
		return domain.ErrUnitHasResidents
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if err := s.units.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("unit_id", id).Str("by", actor.UserID).Msg("unit deleted")
	return nil
}
