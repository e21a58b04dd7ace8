package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

// AnnouncementService implements society notices.
type AnnouncementService struct {
	announcements ports.AnnouncementRepository
	logger        zerolog.Logger
}

func NewAnnouncementService(announcements ports.AnnouncementRepository, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{announcements: announcements, logger: logger}
}

func (s *AnnouncementService) Create(ctx context.Context, actor access.Actor, in ports.CreateAnnouncementInput) (*domain.Announcement, error) {
	if actor.SocietyID == "" {
		return nil, domain.ErrNotInSociety
	}

	now := time.Now().UTC()
	announcement := &domain.Announcement{
		SocietyID:   actor.SocietyID,
		CreatedBy:   actor.UserID,
		Title:       in.Title,
		Content:     in.Content,
		IsImportant: in.IsImportant,
		ExpiresAt:   in.ExpiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !access.CanManageAnnouncement(actor, announcement) {
		return nil, domain.ErrForbidden
	}

	created, err := s.announcements.Create(ctx, announcement)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("announcement_id", created.ID).Str("society_id", created.SocietyID).Bool("important", created.IsImportant).Msg("announcement published")
	return created, nil
}

// List returns unexpired notices, important-first then newest-first.
// Expired notices are hidden in list views for every role.
func (s *AnnouncementService) List(ctx context.Context, actor access.Actor) ([]*domain.Announcement, error) {
	now := time.Now().UTC()
	if actor.Role == domain.RolePlatformOwner {
		return s.announcements.FindCurrent(ctx, now, 0)
	}
	if actor.SocietyID == "" {
		return []*domain.Announcement{}, nil
	}
	return s.announcements.FindCurrentBySociety(ctx, actor.SocietyID, now, 0)
}

// Get fetches a single notice. An expired notice reads as not-found for
// residents but stays retrievable by staff.
func (s *AnnouncementService) Get(ctx context.Context, actor access.Actor, id string) (*domain.Announcement, error) {
	announcement, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch access.AnnouncementVisibility(actor, announcement, time.Now().UTC()) {
	case access.Forbid:
		return nil, domain.ErrForbidden
	case access.Hide:
		return nil, domain.ErrAnnouncementNotFound
	}
	return announcement, nil
}

func (s *AnnouncementService) Update(ctx context.Context, actor access.Actor, id string, in ports.UpdateAnnouncementInput) (*domain.Announcement, error) {
	announcement, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanManageAnnouncement(actor, announcement) {
		return nil, domain.ErrForbidden
	}

	changed := false
	if in.Title != nil {
		announcement.Title = *in.Title
		changed = true
	}
	if in.Content != nil {
		announcement.Content = *in.Content
		changed = true
	}
	if in.IsImportant != nil {
		announcement.IsImportant = *in.IsImportant
		changed = true
	}
	if in.ExpiresAt != nil {
		announcement.ExpiresAt = in.ExpiresAt
		changed = true
	}
	if !changed {
		return nil, domain.ErrNoFieldsToUpdate
	}

	announcement.UpdatedAt = time.Now().UTC()
	return s.announcements.Update(ctx, announcement)
}

func (s *AnnouncementService) Delete(ctx context.Context, actor access.Actor, id string) error {
	announcement, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanManageAnnouncement(actor, announcement) {
		return domain.ErrForbidden
	}

	if err := s.announcements.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("announcement_id", id).Str("by", actor.UserID).Msg("announcement deleted")
	return nil
}
