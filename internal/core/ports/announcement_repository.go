package ports

import (
	"context"
	"time"

	"github.com/residenthub/society-api/internal/core/domain"
)

// AnnouncementRepository defines persistence operations for announcements.
// "Current" queries exclude announcements whose expiry is in the past and
// order important-first, newest-first.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	FindByID(ctx context.Context, id string) (*domain.Announcement, error)

	// FindCurrent lists unexpired announcements across all societies.
	// limit <= 0 means no limit.
	FindCurrent(ctx context.Context, now time.Time, limit int) ([]*domain.Announcement, error)
	FindCurrentBySociety(ctx context.Context, societyID string, now time.Time, limit int) ([]*domain.Announcement, error)

	Update(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}
