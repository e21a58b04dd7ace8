package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

// IssueService implements the ticket lifecycle.
type IssueService struct {
	issues ports.IssueRepository
	units  ports.UnitRepository
	logger zerolog.Logger
}

func NewIssueService(issues ports.IssueRepository, units ports.UnitRepository, logger zerolog.Logger) *IssueService {
	return &IssueService{issues: issues, units: units, logger: logger}
}

// Create opens a ticket in the actor's society. Residents default to their
// own unit; an explicit unit must belong to the same society.
func (s *IssueService) Create(ctx context.Context, actor access.Actor, in ports.CreateIssueInput) (*domain.Issue, error) {
	if actor.SocietyID == "" {
		return nil, domain.ErrNotInSociety
	}

	unitID := in.UnitID
	if unitID == "" && actor.Role == domain.RoleResident {
		unitID = actor.UnitID
	}
	if unitID != "" {
		unit, err := s.units.FindByID(ctx, unitID)
		if err != nil {
			return nil, err
		}
		if unit.SocietyID != actor.SocietyID {
			return nil, domain.ErrUnitNotInSociety
		}
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC()
	issue := &domain.Issue{
		SocietyID:   actor.SocietyID,
		UnitID:      unitID,
		RaisedBy:    actor.UserID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Status:      domain.IssueOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.issues.Create(ctx, issue)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("issue_id", created.ID).Str("society_id", created.SocietyID).Str("priority", string(priority)).Msg("issue raised")
	return created, nil
}

// List scopes to the actor: the platform owner sees every ticket, admins
// their society's, residents only what they raised.
func (s *IssueService) List(ctx context.Context, actor access.Actor) ([]*domain.Issue, error) {
	switch actor.Role {
	case domain.RolePlatformOwner:
		return s.issues.FindAll(ctx)
	case domain.RoleSocietyAdmin:
		if actor.SocietyID == "" {
			return []*domain.Issue{}, nil
		}
		return s.issues.FindBySociety(ctx, actor.SocietyID)
	default:
		return s.issues.FindByRaiser(ctx, actor.UserID)
	}
}

func (s *IssueService) Get(ctx context.Context, actor access.Actor, id string) (*domain.Issue, error) {
	issue, err := s.issues.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanViewIssue(actor, issue) {
		return nil, domain.ErrForbidden
	}
	return issue, nil
}

// Update applies partial changes. A status change from a resident is
// rejected before anything else is processed; staff status changes follow
// the ticket state machine, with RESOLVED requiring resolution notes and
// CLOSED backfilling resolution metadata when skipped.
func (s *IssueService) Update(ctx context.Context, actor access.Actor, id string, in ports.UpdateIssueInput) (*domain.Issue, error) {
	if in.Status != nil && !access.CanSetIssueStatus(actor) {
		return nil, domain.ErrStatusChangeForbidden
	}

	issue, err := s.issues.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanUpdateIssue(actor, issue) {
		return nil, domain.ErrForbidden
	}

	changed := false
	if in.Title != nil {
		issue.Title = *in.Title
		changed = true
	}
	if in.Description != nil {
		issue.Description = *in.Description
		changed = true
	}
	if in.Priority != nil {
		issue.Priority = *in.Priority
		changed = true
	}
	if in.ResolutionNotes != nil {
		issue.ResolutionNotes = *in.ResolutionNotes
		changed = true
	}

	now := time.Now().UTC()
	if in.Status != nil {
		if err := s.applyStatus(issue, *in.Status, actor.UserID, now); err != nil {
			return nil, err
		}
		changed = true
	}
	if !changed {
		return nil, domain.ErrNoFieldsToUpdate
	}

	issue.UpdatedAt = now
	updated, err := s.issues.Update(ctx, issue)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("issue_id", id).Str("status", string(updated.Status)).Str("by", actor.UserID).Msg("issue updated")
	return updated, nil
}

func (s *IssueService) applyStatus(issue *domain.Issue, next domain.IssueStatus, userID string, now time.Time) error {
	if next == issue.Status {
		return nil
	}
	if !issue.Status.CanTransitionTo(next) {
		return domain.ErrInvalidTransition
	}

	switch next {
	case domain.IssueResolved:
		if issue.ResolutionNotes == "" {
			return domain.ErrResolutionNotesRequired
		}
		issue.ResolvedAt = &now
		issue.ResolvedBy = userID
	case domain.IssueClosed:
		// Closing an unresolved ticket implicitly resolves it.
		if issue.ResolvedAt == nil {
			issue.ResolvedAt = &now
			issue.ResolvedBy = userID
		}
		issue.ClosedAt = &now
	}
	issue.Status = next
	return nil
}

// ListByStatus filters tickets by lifecycle state within the actor's scope.
func (s *IssueService) ListByStatus(ctx context.Context, actor access.Actor, status domain.IssueStatus) ([]*domain.Issue, error) {
	switch actor.Role {
	case domain.RolePlatformOwner:
		return s.issues.FindByStatus(ctx, status, "")
	case domain.RoleSocietyAdmin:
		if actor.SocietyID == "" {
			return []*domain.Issue{}, nil
		}
		return s.issues.FindByStatus(ctx, status, actor.SocietyID)
	default:
		raised, err := s.issues.FindByRaiser(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		filtered := make([]*domain.Issue, 0, len(raised))
		for _, i := range raised {
			if i.Status == status {
				filtered = append(filtered, i)
			}
		}
		return filtered, nil
	}
}
