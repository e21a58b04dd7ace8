package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

const codeAttempts = 100

// SocietyService implements tenant-root operations.
type SocietyService struct {
	societies ports.SocietyRepository
	units     ports.UnitRepository
	users     ports.UserRepository
	uow       ports.UnitOfWork
	logger    zerolog.Logger
}

func NewSocietyService(societies ports.SocietyRepository, units ports.UnitRepository, users ports.UserRepository, uow ports.UnitOfWork, logger zerolog.Logger) *SocietyService {
	return &SocietyService{societies: societies, units: units, users: users, uow: uow, logger: logger}
}

// Create registers a society for the acting admin and links the admin to it
// in the same transaction. One admin owns at most one society.
func (s *SocietyService) Create(ctx context.Context, actor access.Actor, in ports.CreateSocietyInput) (*domain.Society, error) {
	_, err := s.societies.FindByCreator(ctx, actor.UserID)
	if err == nil {
		return nil, domain.ErrSocietyExists
	}
	if !errors.Is(err, domain.ErrSocietyNotFound) {
		return nil, err
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	society := &domain.Society{
		Name:         in.Name,
		Code:         code,
		AddressLine1: in.AddressLine1,
		City:         in.City,
		State:        in.State,
		Pincode:      in.Pincode,
		SocietyType:  in.SocietyType,
		Status:       domain.SocietyActive,
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var created *domain.Society
	err = s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.societies.Create(txCtx, society)
		if err != nil {
			return err
		}
		return s.users.SetSociety(txCtx, actor.UserID, created.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("society_id", created.ID).Str("code", created.Code).Str("created_by", actor.UserID).Msg("society created")
	return created, nil
}

// ListPublic returns ACTIVE societies for the resident application flow. No
// authentication required.
func (s *SocietyService) ListPublic(ctx context.Context) ([]*domain.Society, error) {
	return s.societies.FindActive(ctx)
}

// List scopes to the actor: the platform owner sees every society, everyone
// else only their own.
func (s *SocietyService) List(ctx context.Context, actor access.Actor) ([]*domain.Society, error) {
	if actor.Role == domain.RolePlatformOwner {
		return s.societies.FindAll(ctx)
	}
	if actor.SocietyID == "" {
		return []*domain.Society{}, nil
	}
	society, err := s.societies.FindByID(ctx, actor.SocietyID)
	if err != nil {
		return nil, err
	}
	return []*domain.Society{society}, nil
}

func (s *SocietyService) Get(ctx context.Context, actor access.Actor, id string) (*domain.Society, error) {
	society, err := s.societies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanViewSociety(actor, society) {
		return nil, domain.ErrForbidden
	}
	return society, nil
}

func (s *SocietyService) Update(ctx context.Context, actor access.Actor, id string, in ports.UpdateSocietyInput) (*domain.Society, error) {
	society, err := s.societies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanManageSociety(actor, society) {
		return nil, domain.ErrForbidden
	}

	changed := false
	if in.Name != nil {
		society.Name = *in.Name
		changed = true
	}
	if in.AddressLine1 != nil {
		society.AddressLine1 = *in.AddressLine1
		changed = true
	}
	if in.City != nil {
		society.City = *in.City
		changed = true
	}
	if in.State != nil {
		society.State = *in.State
		changed = true
	}
	if in.Pincode != nil {
		society.Pincode = *in.Pincode
		changed = true
	}
	if in.SocietyType != nil {
		society.SocietyType = *in.SocietyType
		changed = true
	}
	if !changed {
		return nil, domain.ErrNoFieldsToUpdate
	}

	society.UpdatedAt = time.Now().UTC()
	return s.societies.Update(ctx, society)
}

// Deactivate soft-deletes the society to INACTIVE. Blocked while any unit
// still exists so no orphaned records are stranded under a dead tenant.
func (s *SocietyService) Deactivate(ctx context.Context, actor access.Actor, id string) (*domain.Society, error) {
	society, err := s.societies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanManageSociety(actor, society) {
		return nil, domain.ErrForbidden
	}

	unitCount, err := s.units.CountBySociety(ctx, id)
	if err != nil {
		return nil, err
	}
	if unitCount > 0 {
		return nil, domain.ErrSocietyHasUnits
	}

	if err := s.societies.SetStatus(ctx, id, domain.SocietyInactive); err != nil {
		return nil, err
	}
	s.logger.Info().Str("society_id", id).Str("by", actor.UserID).Msg("society deactivated")

	society.Status = domain.SocietyInactive
	society.UpdatedAt = time.Now().UTC()
	return society, nil
}

// generateCode picks an unused RH-XXXX code. After codeAttempts collisions
// it falls back to a timestamp-derived suffix, which cannot collide with a
// concurrently generated random one that survived the same check.
func (s *SocietyService) generateCode(ctx context.Context) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := fmt.Sprintf("RH-%04d", 1000+randUint32()%9000)
		taken, err := s.societies.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return fmt.Sprintf("RH-%04d", 1000+time.Now().UnixNano()%9000), nil
}

func randUint32() uint32 {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return uint32(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint32(b)
}
