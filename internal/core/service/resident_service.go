package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

// ResidentService implements the join-request onboarding flow and resident
// record management.
type ResidentService struct {
	joinRequests ports.JoinRequestRepository
	residents    ports.ResidentRepository
	units        ports.UnitRepository
	users        ports.UserRepository
	societies    ports.SocietyRepository
	uow          ports.UnitOfWork
	logger       zerolog.Logger
}

func NewResidentService(
	joinRequests ports.JoinRequestRepository,
	residents ports.ResidentRepository,
	units ports.UnitRepository,
	users ports.UserRepository,
	societies ports.SocietyRepository,
	uow ports.UnitOfWork,
	logger zerolog.Logger,
) *ResidentService {
	return &ResidentService{
		joinRequests: joinRequests,
		residents:    residents,
		units:        units,
		users:        users,
		societies:    societies,
		uow:          uow,
		logger:       logger,
	}
}

// SubmitJoinRequest is the public resident application. It creates the
// PENDING_APPROVAL user and the PENDING join request atomically, so a
// failed submission never leaves a stranded login.
func (s *ResidentService) SubmitJoinRequest(ctx context.Context, in ports.JoinRequestInput) (*ports.JoinRequestResult, error) {
	society, err := s.societies.FindByID(ctx, in.SocietyID)
	if err != nil {
		return nil, err
	}
	if society.Status != domain.SocietyActive {
		return nil, domain.ErrSocietyNotFound
	}

	unit, err := s.units.FindByID(ctx, in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit.SocietyID != society.ID {
		return nil, domain.ErrUnitNotInSociety
	}

	if _, err := s.users.FindActiveResidentByUnit(ctx, unit.ID); err == nil {
		return nil, domain.ErrUnitOccupied
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var request *domain.ResidentJoinRequest
	err = s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, &domain.User{
			Name:         in.Name,
			Email:        in.Email,
			PasswordHash: string(hash),
			Role:         domain.RoleResident,
			Status:       domain.AccountPendingApproval,
			SocietyID:    society.ID,
			UnitID:       unit.ID,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return err
		}

		request, err = s.joinRequests.Create(txCtx, &domain.ResidentJoinRequest{
			UserID:    user.ID,
			SocietyID: society.ID,
			UnitID:    unit.ID,
			Status:    domain.JoinRequestPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("request_id", request.ID).Str("society_id", society.ID).Str("unit_id", unit.ID).Msg("join request submitted")
	return &ports.JoinRequestResult{ID: request.ID, UserID: request.UserID, Status: request.Status}, nil
}

// MyJoinRequest lets a pending applicant poll their own application.
func (s *ResidentService) MyJoinRequest(ctx context.Context, userID string) (*domain.ResidentJoinRequest, error) {
	return s.joinRequests.FindByUser(ctx, userID)
}

// ListJoinRequests returns pending applications for the actor's society, or
// every application for the platform owner.
func (s *ResidentService) ListJoinRequests(ctx context.Context, actor access.Actor) ([]*domain.ResidentJoinRequest, error) {
	if actor.Role == domain.RolePlatformOwner {
		return s.joinRequests.FindAll(ctx)
	}
	if actor.SocietyID == "" {
		return []*domain.ResidentJoinRequest{}, nil
	}
	return s.joinRequests.FindPendingBySociety(ctx, actor.SocietyID)
}

func (s *ResidentService) GetJoinRequest(ctx context.Context, actor access.Actor, id string) (*domain.ResidentJoinRequest, error) {
	request, err := s.joinRequests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanReviewJoinRequest(actor, request) {
		return nil, domain.ErrForbidden
	}
	return request, nil
}

// Approve flips the request to APPROVED and activates the applicant's
// account in the same transaction. A request already decided yields
// domain.ErrJoinRequestProcessed regardless of the prior outcome.
func (s *ResidentService) Approve(ctx context.Context, actor access.Actor, id string) (*domain.ResidentJoinRequest, error) {
	return s.decide(ctx, actor, id, domain.JoinRequestApproved, "")
}

// Reject records the reason and leaves the applicant PENDING_APPROVAL, so
// the account stays blocked from protected routes.
func (s *ResidentService) Reject(ctx context.Context, actor access.Actor, id, reason string) (*domain.ResidentJoinRequest, error) {
	return s.decide(ctx, actor, id, domain.JoinRequestRejected, reason)
}

func (s *ResidentService) decide(ctx context.Context, actor access.Actor, id string, outcome domain.JoinRequestStatus, reason string) (*domain.ResidentJoinRequest, error) {
	request, err := s.joinRequests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanReviewJoinRequest(actor, request) {
		return nil, domain.ErrForbidden
	}
	if request.Status != domain.JoinRequestPending {
		return nil, domain.ErrJoinRequestProcessed
	}

	now := time.Now().UTC()
	err = s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.joinRequests.Decide(txCtx, id, outcome, actor.UserID, now, reason); err != nil {
			return err
		}
		if outcome == domain.JoinRequestApproved {
			return s.users.SetStatus(txCtx, request.UserID, domain.AccountActive)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("request_id", id).Str("outcome", string(outcome)).Str("reviewed_by", actor.UserID).Msg("join request decided")

	request.Status = outcome
	request.ReviewedBy = actor.UserID
	request.ReviewedAt = &now
	request.RejectionReason = reason
	request.UpdatedAt = now
	return request, nil
}

// CreateResident registers an owner or tenant record on a unit and updates
// the unit's back-references in the same transaction. A unit holds at most
// one active record per type; tenants must point at an active owner.
func (s *ResidentService) CreateResident(ctx context.Context, actor access.Actor, in ports.CreateResidentInput) (*domain.Resident, error) {
	unit, err := s.units.FindByID(ctx, in.UnitID)
	if err != nil {
		return nil, err
	}

	record := &domain.Resident{
		UserID:       in.UserID,
		SocietyID:    unit.SocietyID,
		UnitID:       unit.ID,
		ResidentType: in.ResidentType,
		Status:       domain.ResidentActive,
	}
	if !access.CanManageResident(actor, record) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user.SocietyID != unit.SocietyID {
		return nil, domain.ErrNotInSociety
	}

	switch in.ResidentType {
	case domain.ResidentOwner:
		if _, err := s.residents.FindActiveByUnitAndType(ctx, unit.ID, domain.ResidentOwner); err == nil {
			return nil, domain.ErrOwnerSlotTaken
		} else if !errors.Is(err, domain.ErrResidentNotFound) {
			return nil, err
		}
	case domain.ResidentTenant:
		if _, err := s.residents.FindActiveByUnitAndType(ctx, unit.ID, domain.ResidentTenant); err == nil {
			return nil, domain.ErrTenantSlotTaken
		} else if !errors.Is(err, domain.ErrResidentNotFound) {
			return nil, err
		}
		owner, err := s.ownerFor(ctx, in.OwnerResidentID, unit.SocietyID)
		if err != nil {
			return nil, err
		}
		record.OwnerResidentID = owner.ID
	}

	now := time.Now().UTC()
	record.CreatedBy = actor.UserID
	record.CreatedAt = now
	record.UpdatedAt = now

	var created *domain.Resident
	err = s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.residents.Create(txCtx, record)
		if err != nil {
			return err
		}
		if in.ResidentType == domain.ResidentOwner {
			unit.OwnerResidentID = created.ID
		} else {
			unit.TenantResidentID = created.ID
		}
		unit.Status = domain.UnitOccupied
		unit.UpdatedAt = now
		_, err = s.units.Update(txCtx, unit)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("resident_id", created.ID).Str("unit_id", unit.ID).Str("type", string(in.ResidentType)).Msg("resident created")
	return created, nil
}

func (s *ResidentService) ownerFor(ctx context.Context, ownerResidentID, societyID string) (*domain.Resident, error) {
	if ownerResidentID == "" {
		return nil, domain.ErrOwnerRequired
	}
	owner, err := s.residents.FindByID(ctx, ownerResidentID)
	if err != nil {
		if errors.Is(err, domain.ErrResidentNotFound) {
			return nil, domain.ErrOwnerRequired
		}
		return nil, err
	}
	if owner.ResidentType != domain.ResidentOwner || owner.Status != domain.ResidentActive || owner.SocietyID != societyID {
		return nil, domain.ErrOwnerRequired
	}
	return owner, nil
}

// ListResidents scopes to the actor: platform owner sees everything, admins
// their society, residents only their own records.
func (s *ResidentService) ListResidents(ctx context.Context, actor access.Actor) ([]*domain.Resident, error) {
	switch actor.Role {
	case domain.RolePlatformOwner:
		return s.residents.FindAll(ctx)
	case domain.RoleSocietyAdmin:
		if actor.SocietyID == "" {
			return []*domain.Resident{}, nil
		}
		return s.residents.FindBySociety(ctx, actor.SocietyID)
	default:
		return s.residents.FindByUser(ctx, actor.UserID)
	}
}

func (s *ResidentService) GetResident(ctx context.Context, actor access.Actor, id string) (*domain.Resident, error) {
	record, err := s.residents.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanViewResident(actor, record) {
		return nil, domain.ErrForbidden
	}
	return record, nil
}

// DeactivateResident suspends the record and clears the unit back-reference
// in the same transaction. The unit goes VACANT once no active record
// remains.
func (s *ResidentService) DeactivateResident(ctx context.Context, actor access.Actor, id string) (*domain.Resident, error) {
	record, err := s.residents.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanManageResident(actor, record) {
		return nil, domain.ErrForbidden
	}

	unit, err := s.units.FindByID(ctx, record.UnitID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.residents.SetStatus(txCtx, id, domain.ResidentSuspended, now); err != nil {
			return err
		}
		if unit.OwnerResidentID == id {
			unit.OwnerResidentID = ""
		}
		if unit.TenantResidentID == id {
			unit.TenantResidentID = ""
		}
		if unit.OwnerResidentID == "" && unit.TenantResidentID == "" {
			unit.Status = domain.UnitVacant
		}
		unit.UpdatedAt = now
		_, err := s.units.Update(txCtx, unit)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("resident_id", id).Str("by", actor.UserID).Msg("resident deactivated")

	record.Status = domain.ResidentSuspended
	record.UpdatedAt = now
	return record, nil
}
