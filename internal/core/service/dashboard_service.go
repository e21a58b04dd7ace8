package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

const dashboardRecentLimit = 5

// DashboardService composes per-role rollups. Every request recomputes from
// the repositories; there is no caching layer.
type DashboardService struct {
	societies     ports.SocietyRepository
	units         ports.UnitRepository
	users         ports.UserRepository
	joinRequests  ports.JoinRequestRepository
	maintenance   ports.MaintenanceRepository
	issues        ports.IssueRepository
	announcements ports.AnnouncementRepository
	logger        zerolog.Logger
}

func NewDashboardService(
	societies ports.SocietyRepository,
	units ports.UnitRepository,
	users ports.UserRepository,
	joinRequests ports.JoinRequestRepository,
	maintenance ports.MaintenanceRepository,
	issues ports.IssueRepository,
	announcements ports.AnnouncementRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		societies:     societies,
		units:         units,
		users:         users,
		joinRequests:  joinRequests,
		maintenance:   maintenance,
		issues:        issues,
		announcements: announcements,
		logger:        logger,
	}
}

// Resident aggregates the acting resident's balance, open tickets, current
// notices, and payment history. A resident without a unit gets zeroed
// billing figures rather than an error.
func (s *DashboardService) Resident(ctx context.Context, actor access.Actor) (*ports.ResidentDashboard, error) {
	dash := &ports.ResidentDashboard{
		LatestAnnouncements: []*domain.Announcement{},
		PendingDues:         []*domain.Maintenance{},
		RecentPayments:      []*domain.Maintenance{},
	}

	if actor.UnitID != "" {
		dues, err := s.maintenance.FindOutstandingByUnit(ctx, actor.UnitID)
		if err != nil {
			return nil, err
		}
		for _, d := range dues {
			dash.OutstandingBalance += d.Amount
		}
		// Balance covers everything outstanding; the list shows only the
		// five soonest-due charges.
		if len(dues) > dashboardRecentLimit {
			dues = dues[:dashboardRecentLimit]
		}
		dash.PendingDues = dues

		payments, err := s.maintenance.FindPaidByUnit(ctx, actor.UnitID, dashboardRecentLimit)
		if err != nil {
			return nil, err
		}
		dash.RecentPayments = payments
	}

	activeIssues, err := s.issues.CountActiveByRaiser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	dash.ActiveIssuesCount = activeIssues

	if actor.SocietyID != "" {
		announcements, err := s.announcements.FindCurrentBySociety(ctx, actor.SocietyID, time.Now().UTC(), dashboardRecentLimit)
		if err != nil {
			return nil, err
		}
		dash.LatestAnnouncements = announcements
	}
	return dash, nil
}

// SocietyAdmin aggregates society-wide operational numbers.
func (s *DashboardService) SocietyAdmin(ctx context.Context, actor access.Actor) (*ports.SocietyAdminDashboard, error) {
	if actor.SocietyID == "" {
		return nil, domain.ErrNotInSociety
	}

	dueCharges, err := s.maintenance.FindDueBySociety(ctx, actor.SocietyID)
	if err != nil {
		return nil, err
	}
	var pendingDues float64
	for _, c := range dueCharges {
		pendingDues += c.Amount
	}

	pendingRequests, err := s.joinRequests.CountPendingBySociety(ctx, actor.SocietyID)
	if err != nil {
		return nil, err
	}
	openIssues, err := s.issues.CountOpenBySociety(ctx, actor.SocietyID)
	if err != nil {
		return nil, err
	}
	announcements, err := s.announcements.FindCurrentBySociety(ctx, actor.SocietyID, time.Now().UTC(), dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	totalUnits, err := s.units.CountBySociety(ctx, actor.SocietyID)
	if err != nil {
		return nil, err
	}
	totalResidents, err := s.users.CountActiveResidents(ctx, actor.SocietyID)
	if err != nil {
		return nil, err
	}

	return &ports.SocietyAdminDashboard{
		PendingMaintenanceDues:   pendingDues,
		PendingJoinRequestsCount: pendingRequests,
		OpenIssuesCount:          openIssues,
		RecentAnnouncements:      announcements,
		TotalUnits:               totalUnits,
		TotalResidents:           totalResidents,
	}, nil
}

// PlatformOwner aggregates cross-tenant counts.
func (s *DashboardService) PlatformOwner(ctx context.Context) (*ports.PlatformOwnerDashboard, error) {
	totalSocieties, err := s.societies.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeSocieties, err := s.societies.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalAdmins, err := s.users.CountByRole(ctx, domain.RoleSocietyAdmin)
	if err != nil {
		return nil, err
	}
	totalResidents, err := s.users.CountByRole(ctx, domain.RoleResident)
	if err != nil {
		return nil, err
	}
	totalUnits, err := s.units.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.societies.FindRecent(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	return &ports.PlatformOwnerDashboard{
		TotalSocieties:    totalSocieties,
		ActiveSocieties:   activeSocieties,
		InactiveSocieties: totalSocieties - activeSocieties,
		TotalUsers:        totalUsers,
		TotalAdmins:       totalAdmins,
		TotalResidents:    totalResidents,
		TotalUnits:        totalUnits,
		RecentSocieties:   recent,
	}, nil
}
