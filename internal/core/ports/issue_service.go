package ports

import (
	"context"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
)

// CreateIssueInput carries a new ticket. UnitID is optional for admins and
// defaults to the resident's own unit.
type CreateIssueInput struct {
	Title       string
	Description string
	Priority    domain.IssuePriority
	UnitID      string
}

// UpdateIssueInput applies partial changes; nil means unchanged. Status is
// rejected outright for residents before any other processing.
type UpdateIssueInput struct {
	Title           *string
	Description     *string
	Priority        *domain.IssuePriority
	Status          *domain.IssueStatus
	ResolutionNotes *string
}

// IssueService defines ticket operations.
type IssueService interface {
	Create(ctx context.Context, actor access.Actor, in CreateIssueInput) (*domain.Issue, error)
	List(ctx context.Context, actor access.Actor) ([]*domain.Issue, error)
	Get(ctx context.Context, actor access.Actor, id string) (*domain.Issue, error)
	Update(ctx context.Context, actor access.Actor, id string, in UpdateIssueInput) (*domain.Issue, error)
	ListByStatus(ctx context.Context, actor access.Actor, status domain.IssueStatus) ([]*domain.Issue, error)
}
