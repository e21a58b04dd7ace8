package ports

import (
	"context"
	"time"

	"github.com/residenthub/society-api/internal/core/domain"
)

// JoinRequestRepository defines persistence operations for resident join
// requests.
type JoinRequestRepository interface {
	// Create inserts a join request. A second request for the same user
	// yields domain.ErrJoinRequestExists.
	Create(ctx context.Context, jr *domain.ResidentJoinRequest) (*domain.ResidentJoinRequest, error)
	FindByID(ctx context.Context, id string) (*domain.ResidentJoinRequest, error)
	FindByUser(ctx context.Context, userID string) (*domain.ResidentJoinRequest, error)

	FindAll(ctx context.Context) ([]*domain.ResidentJoinRequest, error)
	FindPendingBySociety(ctx context.Context, societyID string) ([]*domain.ResidentJoinRequest, error)

	// Decide records the review outcome. It only applies to a request still
	// PENDING; deciding an already-decided request yields
	// domain.ErrJoinRequestProcessed.
	Decide(ctx context.Context, id string, status domain.JoinRequestStatus, reviewedBy string, reviewedAt time.Time, reason string) error

	CountPendingBySociety(ctx context.Context, societyID string) (int64, error)
}
