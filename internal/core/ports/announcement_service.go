package ports

import (
	"context"
	"time"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
)

// CreateAnnouncementInput carries a new society notice.
type CreateAnnouncementInput struct {
	Title       string
	Content     string
	IsImportant bool
	ExpiresAt   *time.Time
}

// UpdateAnnouncementInput applies partial changes; nil means unchanged.
type UpdateAnnouncementInput struct {
	Title       *string
	Content     *string
	IsImportant *bool
	ExpiresAt   *time.Time
}

// AnnouncementService defines notice operations.
type AnnouncementService interface {
	Create(ctx context.Context, actor access.Actor, in CreateAnnouncementInput) (*domain.Announcement, error)
	List(ctx context.Context, actor access.Actor) ([]*domain.Announcement, error)
	// Get masks expired announcements as not-found for residents.
	Get(ctx context.Context, actor access.Actor, id string) (*domain.Announcement, error)
	Update(ctx context.Context, actor access.Actor, id string, in UpdateAnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, actor access.Actor, id string) error
}
