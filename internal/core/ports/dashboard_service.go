package ports

import (
	"context"

	"github.com/residenthub/society-api/internal/core/access"
	"github.com/residenthub/society-api/internal/core/domain"
)

// ResidentDashboard aggregates a resident's own view: balance, tickets,
// notices, and payment history.
type ResidentDashboard struct {
	OutstandingBalance  float64                `json:"outstanding_balance"`
	ActiveIssuesCount   int64                  `json:"active_issues_count"`
	LatestAnnouncements []*domain.Announcement `json:"latest_announcements"`
	PendingDues         []*domain.Maintenance  `json:"pending_dues"`
	RecentPayments      []*domain.Maintenance  `json:"recent_payments"`
}

// SocietyAdminDashboard aggregates society-wide operational numbers.
type SocietyAdminDashboard struct {
	PendingMaintenanceDues   float64                `json:"pending_maintenance_dues"`
	PendingJoinRequestsCount int64                  `json:"pending_join_requests_count"`
	OpenIssuesCount          int64                  `json:"open_issues_count"`
	RecentAnnouncements      []*domain.Announcement `json:"recent_announcements"`
	TotalUnits               int64                  `json:"total_units"`
	TotalResidents           int64                  `json:"total_residents"`
}

// PlatformOwnerDashboard aggregates cross-tenant counts.
type PlatformOwnerDashboard struct {
	TotalSocieties    int64             `json:"total_societies"`
	ActiveSocieties   int64             `json:"active_societies"`
	InactiveSocieties int64             `json:"inactive_societies"`
	TotalUsers        int64             `json:"total_users"`
	TotalAdmins       int64             `json:"total_admins"`
	TotalResidents    int64             `json:"total_residents"`
	TotalUnits        int64             `json:"total_units"`
	RecentSocieties   []*domain.Society `json:"recent_societies"`
}

// DashboardService composes read-only rollups per role. Computed fresh on
// every request; no caching.
type DashboardService interface {
	Resident(ctx context.Context, actor access.Actor) (*ResidentDashboard, error)
	SocietyAdmin(ctx context.Context, actor access.Actor) (*SocietyAdminDashboard, error)
	PlatformOwner(ctx context.Context) (*PlatformOwnerDashboard, error)
}
