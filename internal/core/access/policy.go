// Package access is the authorization policy for every resource family.
// It is a pure decision layer: functions take the acting principal and the
// entity as fetched from storage, and return whether the operation is
// allowed. Callers must evaluate the policy against stored entity scope,
// never against client-supplied IDs.
package access

import (
	"time"

	"github.com/residenthub/society-api/internal/core/domain"
)

// Actor is the authenticated principal, populated by the auth middleware
// from the live user record (not from token claims alone).
type Actor struct {
	UserID    string
	Role      domain.Role
	SocietyID string
	UnitID    string
}

// Decision is the outcome of a visibility check where "deny" has two
// flavours: Forbid reports the entity exists but is out of scope, Hide
// masks it as not-found so unauthorized principals learn nothing.
type Decision int

const (
	Allow Decision = iota
	Forbid
	Hide
)

func (a Actor) isOwner() bool {
	return a.Role == domain.RolePlatformOwner
}

func (a Actor) inSociety(societyID string) bool {
	return a.SocietyID != "" && a.SocietyID == societyID
}

// ── Society ───────────────────────────────────────────────────────────────

// CanViewSociety allows the platform owner everywhere and members within
// their own society.
func CanViewSociety(a Actor, s *domain.Society) bool {
	return a.isOwner() || a.inSociety(s.ID)
}

// CanManageSociety restricts mutation to the creator: same-tenant admins who
// did not create the society cannot modify it.
func CanManageSociety(a Actor, s *domain.Society) bool {
	return a.isOwner() || (a.Role == domain.RoleSocietyAdmin && s.CreatedBy == a.UserID)
}

// ── Unit ──────────────────────────────────────────────────────────────────

func CanViewUnit(a Actor, u *domain.Unit) bool {
	return a.isOwner() || a.inSociety(u.SocietyID)
}

// CanManageUnit requires the acting admin to have created the unit's
// society, mirroring the society mutation rule.
func CanManageUnit(a Actor, u *domain.Unit, s *domain.Society) bool {
	if a.isOwner() {
		return true
	}
	if a.Role != domain.RoleSocietyAdmin || !a.inSociety(u.SocietyID) {
		return false
	}
	return s != nil && s.CreatedBy == a.UserID
}

// ── Resident ──────────────────────────────────────────────────────────────

func CanViewResident(a Actor, r *domain.Resident) bool {
	if a.isOwner() {
		return true
	}
	if a.Role == domain.RoleSocietyAdmin {
		return a.inSociety(r.SocietyID)
	}
	return r.UserID == a.UserID
}

func CanManageResident(a Actor, r *domain.Resident) bool {
	return a.isOwner() || (a.Role == domain.RoleSocietyAdmin && a.inSociety(r.SocietyID))
}

// ── Join request ──────────────────────────────────────────────────────────

func CanReviewJoinRequest(a Actor, jr *domain.ResidentJoinRequest) bool {
	return a.isOwner() || (a.Role == domain.RoleSocietyAdmin && a.inSociety(jr.SocietyID))
}

// ── Maintenance ───────────────────────────────────────────────────────────

// CanViewMaintenance scopes residents to their own unit, admins to their
// society.
func CanViewMaintenance(a Actor, m *domain.Maintenance) bool {
	if a.isOwner() {
		return true
	}
	if a.Role == domain.RoleSocietyAdmin {
		return a.inSociety(m.SocietyID)
	}
	return a.UnitID != "" && a.UnitID == m.UnitID
}

func CanManageMaintenance(a Actor, m *domain.Maintenance) bool {
	return a.isOwner() || (a.Role == domain.RoleSocietyAdmin && a.inSociety(m.SocietyID))
}

// ── Issue ─────────────────────────────────────────────────────────────────

// CanViewIssue scopes residents to issues they raised.
func CanViewIssue(a Actor, i *domain.Issue) bool {
	if a.isOwner() {
		return true
	}
	if a.Role == domain.RoleSocietyAdmin {
		return a.inSociety(i.SocietyID)
	}
	return i.RaisedBy == a.UserID
}

// CanUpdateIssue allows raisers to touch their own issues and admins any
// issue in their society. Whether the status field may change is a separate
// check (CanSetIssueStatus).
func CanUpdateIssue(a Actor, i *domain.Issue) bool {
	if a.isOwner() {
		return true
	}
	if a.Role == domain.RoleSocietyAdmin {
		return a.inSociety(i.SocietyID)
	}
	return i.RaisedBy == a.UserID
}

// CanSetIssueStatus blocks residents from ever changing status, including
// on their own issues.
func CanSetIssueStatus(a Actor) bool {
	return a.Role != domain.RoleResident
}

// ── Announcement ──────────────────────────────────────────────────────────

// AnnouncementVisibility implements the masking rule: residents see expired
// announcements as not-found rather than forbidden, so "gone" and
// "inaccessible" are indistinguishable.
func AnnouncementVisibility(a Actor, an *domain.Announcement, now time.Time) Decision {
	if a.isOwner() {
		return Allow
	}
	if !a.inSociety(an.SocietyID) {
		return Forbid
	}
	if a.Role == domain.RoleResident && an.Expired(now) {
		return Hide
	}
	return Allow
}

func CanManageAnnouncement(a Actor, an *domain.Announcement) bool {
	return a.isOwner() || (a.Role == domain.RoleSocietyAdmin && a.inSociety(an.SocietyID))
}
