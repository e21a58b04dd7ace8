package ports

import (
	"context"

	"github.com/residenthub/society-api/internal/core/domain"
)

// SocietyRepository defines persistence operations for societies.
type SocietyRepository interface {
	// Create inserts a society. A duplicate code yields
	// domain.ErrSocietyCodeTaken.
	Create(ctx context.Context, s *domain.Society) (*domain.Society, error)
	FindByID(ctx context.Context, id string) (*domain.Society, error)
	// FindByCreator returns the society created by the given admin, or
	// domain.ErrSocietyNotFound.
	FindByCreator(ctx context.Context, userID string) (*domain.Society, error)
	CodeExists(ctx context.Context, code string) (bool, error)

	FindAll(ctx context.Context) ([]*domain.Society, error)
	FindActive(ctx context.Context) ([]*domain.Society, error)
	FindRecent(ctx context.Context, limit int) ([]*domain.Society, error)

	Update(ctx context.Context, s *domain.Society) (*domain.Society, error)
	SetStatus(ctx context.Context, id string, status domain.SocietyStatus) error

	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}
