package ports

import (
	"context"

	"github.com/residenthub/society-api/internal/core/domain"
)

// IssueRepository defines persistence operations for issue tickets.
type IssueRepository interface {
	Create(ctx context.Context, i *domain.Issue) (*domain.Issue, error)
	FindByID(ctx context.Context, id string) (*domain.Issue, error)

	FindAll(ctx context.Context) ([]*domain.Issue, error)
	FindBySociety(ctx context.Context, societyID string) ([]*domain.Issue, error)
	FindByRaiser(ctx context.Context, userID string) ([]*domain.Issue, error)
	// FindByStatus filters by status; an empty societyID means all tenants.
	FindByStatus(ctx context.Context, status domain.IssueStatus, societyID string) ([]*domain.Issue, error)

	Update(ctx context.Context, i *domain.Issue) (*domain.Issue, error)

	// CountActiveByRaiser counts OPEN and IN_PROGRESS issues raised by the
	// user.
	CountActiveByRaiser(ctx context.Context, userID string) (int64, error)
	CountOpenBySociety(ctx context.Context, societyID string) (int64, error)
}
