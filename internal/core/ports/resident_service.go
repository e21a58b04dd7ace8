package ports

import (
	"context"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
)

// JoinRequestInput is the public resident application payload.
type JoinRequestInput struct {
	Name      string
	Email     string
	Password  string
	SocietyID string
	UnitID    string
}

// JoinRequestResult acknowledges a submitted application.
type JoinRequestResult struct {
	ID     string                   `json:"id"`
	UserID string                   `json:"user_id"`
	Status domain.JoinRequestStatus `json:"status"`
}

// CreateResidentInput registers an approved user as an owner or tenant on a
// unit.
type CreateResidentInput struct {
	UserID       string
	UnitID       string
	ResidentType domain.ResidentType
	// OwnerResidentID is required for TENANT records and must reference an
	// ACTIVE OWNER in the same society.
	OwnerResidentID string
}

// ResidentService covers onboarding (join requests) and resident records.
type ResidentService interface {
	// SubmitJoinRequest atomically creates a PENDING_APPROVAL user and a
	// PENDING join request.
	SubmitJoinRequest(ctx context.Context, in JoinRequestInput) (*JoinRequestResult, error)
	MyJoinRequest(ctx context.Context, userID string) (*domain.ResidentJoinRequest, error)
	ListJoinRequests(ctx context.Context, actor access.Actor) ([]*domain.ResidentJoinRequest, error)
	GetJoinRequest(ctx context.Context, actor access.Actor, id string) (*domain.ResidentJoinRequest, error)
	// Approve atomically flips the request to APPROVED and the linked user
	// to ACTIVE. A decided request yields domain.ErrJoinRequestProcessed.
	Approve(ctx context.Context, actor access.Actor, id string) (*domain.ResidentJoinRequest, error)
	Reject(ctx context.Context, actor access.Actor, id, reason string) (*domain.ResidentJoinRequest, error)

	CreateResident(ctx context.Context, actor access.Actor, in CreateResidentInput) (*domain.Resident, error)
	ListResidents(ctx context.Context, actor access.Actor) ([]*domain.Resident, error)
	GetResident(ctx context.Context, actor access.Actor, id string) (*domain.Resident, error)
	// DeactivateResident suspends the record and clears the unit
	// back-reference in the same transaction.
	DeactivateResident(ctx context.Context, actor access.Actor, id string) (*domain.Resident, error)
}
