package ports

import (
	"context"
	"time"

	"github.com/residenthub/society-api/internal/core/domain"
)

// UserRepository defines persistence operations for login identities.
type UserRepository interface {
	// Create inserts a user. A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindActiveResidentByUnit returns the ACTIVE resident user occupying the
	// unit, or domain.ErrUserNotFound when the unit is free.
	FindActiveResidentByUnit(ctx context.Context, unitID string) (*domain.User, error)
	// ActiveResidentUnitIDs lists unit IDs in the society that are held by an
	// ACTIVE resident user.
	ActiveResidentUnitIDs(ctx context.Context, societyID string) ([]string, error)

	// UpdateProfile applies the non-nil fields and returns the updated user.
	UpdateProfile(ctx context.Context, id string, name, passwordHash *string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetSociety(ctx context.Context, id, societyID string) error
	SetStatus(ctx context.Context, id string, status domain.AccountStatus) error
	SetLastLogin(ctx context.Context, id string, at time.Time) error

	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
	CountActiveResidents(ctx context.Context, societyID string) (int64, error)
}
