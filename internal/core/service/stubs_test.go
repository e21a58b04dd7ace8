package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/residenthub/society-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories. Each mirrors the filtering the real Mongo
// repository performs so service tests exercise the same visibility rules.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	seq       int
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *u
	clone.ID = fmt.Sprintf("user-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindActiveResidentByUnit(_ context.Context, unitID string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Role == domain.RoleResident && u.Status == domain.AccountActive && u.UnitID == unitID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ActiveResidentUnitIDs(_ context.Context, societyID string) ([]string, error) {
	var ids []string
	for _, u := range r.byID {
		if u.Role == domain.RoleResident && u.Status == domain.AccountActive && u.SocietyID == societyID && u.UnitID != "" {
			ids = append(ids, u.UnitID)
		}
	}
	return ids, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, name, passwordHash *string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	u.UpdatedAt = time.Now().UTC()
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) SetSociety(_ context.Context, id, societyID string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.SocietyID = societyID
	return nil
}

func (r *stubUserRepo) SetStatus(_ context.Context, id string, status domain.AccountStatus) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *stubUserRepo) SetLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLoginAt = &at
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.byID {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) CountActiveResidents(_ context.Context, societyID string) (int64, error) {
	var n int64
	for _, u := range r.byID {
		if u.Role == domain.RoleResident && u.Status == domain.AccountActive && u.SocietyID == societyID {
			n++
		}
	}
	return n, nil
}

// seed inserts a user bypassing Create-side checks.
func (r *stubUserRepo) seed(u *domain.User) *domain.User {
	if u.ID == "" {
		r.seq++
		u.ID = fmt.Sprintf("user-%d", r.seq)
	}
	clone := *u
	r.byID[clone.ID] = &clone
	return u
}

type stubSocietyRepo struct {
	byID      map[string]*domain.Society
	order     []string
	seq       int
	createErr error
}

func newStubSocietyRepo() *stubSocietyRepo {
	return &stubSocietyRepo{byID: make(map[string]*domain.Society)}
}

func (r *stubSocietyRepo) Create(_ context.Context, s *domain.Society) (*domain.Society, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.byID {
		if existing.Code == s.Code {
			return nil, domain.ErrSocietyCodeTaken
		}
	}
	r.seq++
	clone := *s
	clone.ID = fmt.Sprintf("soc-%d", r.seq)
	r.byID[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubSocietyRepo) FindByID(_ context.Context, id string) (*domain.Society, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrSocietyNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSocietyRepo) FindByCreator(_ context.Context, userID string) (*domain.Society, error) {
	for _, s := range r.byID {
		if s.CreatedBy == userID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrSocietyNotFound
}

func (r *stubSocietyRepo) CodeExists(_ context.Context, code string) (bool, error) {
	for _, s := range r.byID {
		if s.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubSocietyRepo) FindAll(_ context.Context) ([]*domain.Society, error) {
	return r.list(func(*domain.Society) bool { return true }), nil
}

func (r *stubSocietyRepo) FindActive(_ context.Context) ([]*domain.Society, error) {
	return r.list(func(s *domain.Society) bool { return s.Status == domain.SocietyActive }), nil
}

func (r *stubSocietyRepo) FindRecent(_ context.Context, limit int) ([]*domain.Society, error) {
	all := r.list(func(*domain.Society) bool { return true })
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *stubSocietyRepo) Update(_ context.Context, s *domain.Society) (*domain.Society, error) {
	if _, ok := r.byID[s.ID]; !ok {
		return nil, domain.ErrSocietyNotFound
	}
	clone := *s
	r.byID[s.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubSocietyRepo) SetStatus(_ context.Context, id string, status domain.SocietyStatus) error {
	s, ok := r.byID[id]
	if !ok {
		return domain.ErrSocietyNotFound
	}
	s.Status = status
	return nil
}

func (r *stubSocietyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubSocietyRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, s := range r.byID {
		if s.Status == domain.SocietyActive {
			n++
		}
	}
	return n, nil
}

func (r *stubSocietyRepo) list(keep func(*domain.Society) bool) []*domain.Society {
	out := make([]*domain.Society, 0, len(r.order))
	for _, id := range r.order {
		s := r.byID[id]
		if keep(s) {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out
}

func (r *stubSocietyRepo) seed(s *domain.Society) *domain.Society {
	if s.ID == "" {
		r.seq++
		s.ID = fmt.Sprintf("soc-%d", r.seq)
	}
	clone := *s
	r.byID[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	return s
}

type stubUnitRepo struct {
	byID      map[string]*domain.Unit
	order     []string
	seq       int
	deleteErr error
}

func newStubUnitRepo() *stubUnitRepo {
	return &stubUnitRepo{byID: make(map[string]*domain.Unit)}
}

func (r *stubUnitRepo) Create(_ context.Context, u *domain.Unit) (*domain.Unit, error) {
	for _, existing := range r.byID {
		if existing.SocietyID == u.SocietyID && existing.BuildingName == u.BuildingName && existing.UnitNumber == u.UnitNumber {
			return nil, domain.ErrUnitExists
		}
	}
	r.seq++
	clone := *u
	clone.ID = fmt.Sprintf("unit-%d", r.seq)
	r.byID[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubUnitRepo) FindByID(_ context.Context, id string) (*domain.Unit, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUnitNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUnitRepo) SlotTaken(_ context.Context, societyID, buildingName, unitNumber, excludeID string) (bool, error) {
	for _, u := range r.byID {
		if u.ID == excludeID {
			continue
		}
		if u.SocietyID == societyID && u.BuildingName == buildingName && u.UnitNumber == unitNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUnitRepo) FindAll(_ context.Context) ([]*domain.Unit, error) {
	return r.list(func(*domain.Unit) bool { return true }), nil
}

func (r *stubUnitRepo) FindBySociety(_ context.Context, societyID string) ([]*domain.Unit, error) {
	return r.list(func(u *domain.Unit) bool { return u.SocietyID == societyID }), nil
}

func (r *stubUnitRepo) Update(_ context.Context, u *domain.Unit) (*domain.Unit, error) {
	if _, ok := r.byID[u.ID]; !ok {
		return nil, domain.ErrUnitNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUnitRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUnitNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubUnitRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubUnitRepo) CountBySociety(_ context.Context, societyID string) (int64, error) {
	var n int64
	for _, u := range r.byID {
		if u.SocietyID == societyID {
			n++
		}
	}
	return n, nil
}

func (r *stubUnitRepo) list(keep func(*domain.Unit) bool) []*domain.Unit {
	out := make([]*domain.Unit, 0, len(r.order))
	for _, id := range r.order {
		u := r.byID[id]
		if keep(u) {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out
}

func (r *stubUnitRepo) seed(u *domain.Unit) *domain.Unit {
	if u.ID == "" {
		r.seq++
		u.ID = fmt.Sprintf("unit-%d", r.seq)
	}
	clone := *u
	r.byID[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	return u
}

type stubResidentRepo struct {
	byID map[string]*domain.Resident
	seq  int
}

func newStubResidentRepo() *stubResidentRepo {
	return &stubResidentRepo{byID: make(map[string]*domain.Resident)}
}

func (r *stubResidentRepo) Create(_ context.Context, res *domain.Resident) (*domain.Resident, error) {
	r.seq++
	clone := *res
	clone.ID = fmt.Sprintf("res-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubResidentRepo) FindByID(_ context.Context, id string) (*domain.Resident, error) {
	res, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrResidentNotFound
	}
	clone := *res
	return &clone, nil
}

func (r *stubResidentRepo) FindActiveByUnitAndType(_ context.Context, unitID string, t domain.ResidentType) (*domain.Resident, error) {
	for _, res := range r.byID {
		if res.UnitID == unitID && res.ResidentType == t && res.Status == domain.ResidentActive {
			clone := *res
			return &clone, nil
		}
	}
	return nil, domain.ErrResidentNotFound
}

func (r *stubResidentRepo) FindAll(_ context.Context) ([]*domain.Resident, error) {
	return r.list(func(*domain.Resident) bool { return true }), nil
}

func (r *stubResidentRepo) FindBySociety(_ context.Context, societyID string) ([]*domain.Resident, error) {
	return r.list(func(res *domain.Resident) bool { return res.SocietyID == societyID }), nil
}

func (r *stubResidentRepo) FindByUser(_ context.Context, userID string) ([]*domain.Resident, error) {
	return r.list(func(res *domain.Resident) bool { return res.UserID == userID }), nil
}

func (r *stubResidentRepo) SetStatus(_ context.Context, id string, status domain.ResidentStatus, at time.Time) error {
	res, ok := r.byID[id]
	if !ok {
		return domain.ErrResidentNotFound
	}
	res.Status = status
	res.UpdatedAt = at
	return nil
}

func (r *stubResidentRepo) list(keep func(*domain.Resident) bool) []*domain.Resident {
	var out []*domain.Resident
	for _, res := range r.byID {
		if keep(res) {
			clone := *res
			out = append(out, &clone)
		}
	}
	return out
}

func (r *stubResidentRepo) seed(res *domain.Resident) *domain.Resident {
	if res.ID == "" {
		r.seq++
		res.ID = fmt.Sprintf("res-%d", r.seq)
	}
	clone := *res
	r.byID[clone.ID] = &clone
	return res
}

type stubJoinRequestRepo struct {
	byID map[string]*domain.ResidentJoinRequest
	seq  int
}

func newStubJoinRequestRepo() *stubJoinRequestRepo {
	return &stubJoinRequestRepo{byID: make(map[string]*domain.ResidentJoinRequest)}
}

func (r *stubJoinRequestRepo) Create(_ context.Context, jr *domain.ResidentJoinRequest) (*domain.ResidentJoinRequest, error) {
	for _, existing := range r.byID {
		if existing.UserID == jr.UserID {
			return nil, domain.ErrJoinRequestExists
		}
	}
	r.seq++
	clone := *jr
	clone.ID = fmt.Sprintf("jr-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubJoinRequestRepo) FindByID(_ context.Context, id string) (*domain.ResidentJoinRequest, error) {
	jr, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrJoinRequestNotFound
	}
	clone := *jr
	return &clone, nil
}

func (r *stubJoinRequestRepo) FindByUser(_ context.Context, userID string) (*domain.ResidentJoinRequest, error) {
	for _, jr := range r.byID {
		if jr.UserID == userID {
			clone := *jr
			return &clone, nil
		}
	}
	return nil, domain.ErrJoinRequestNotFound
}

func (r *stubJoinRequestRepo) FindAll(_ context.Context) ([]*domain.ResidentJoinRequest, error) {
	var out []*domain.ResidentJoinRequest
	for _, jr := range r.byID {
		clone := *jr
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubJoinRequestRepo) FindPendingBySociety(_ context.Context, societyID string) ([]*domain.ResidentJoinRequest, error) {
	var out []*domain.ResidentJoinRequest
	for _, jr := range r.byID {
		if jr.SocietyID == societyID && jr.Status == domain.JoinRequestPending {
			clone := *jr
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubJoinRequestRepo) Decide(_ context.Context, id string, status domain.JoinRequestStatus, reviewedBy string, reviewedAt time.Time, reason string) error {
	jr, ok := r.byID[id]
	if !ok {
		return domain.ErrJoinRequestNotFound
	}
	if jr.Status != domain.JoinRequestPending {
		return domain.ErrJoinRequestProcessed
	}
	jr.Status = status
	jr.ReviewedBy = reviewedBy
	jr.ReviewedAt = &reviewedAt
	jr.RejectionReason = reason
	jr.UpdatedAt = reviewedAt
	return nil
}

func (r *stubJoinRequestRepo) CountPendingBySociety(_ context.Context, societyID string) (int64, error) {
	var n int64
	for _, jr := range r.byID {
		if jr.SocietyID == societyID && jr.Status == domain.JoinRequestPending {
			n++
		}
	}
	return n, nil
}

func (r *stubJoinRequestRepo) seed(jr *domain.ResidentJoinRequest) *domain.ResidentJoinRequest {
	if jr.ID == "" {
		r.seq++
		jr.ID = fmt.Sprintf("jr-%d", r.seq)
	}
	clone := *jr
	r.byID[clone.ID] = &clone
	return jr
}

type stubMaintenanceRepo struct {
	byID map[string]*domain.Maintenance
	seq  int
}

func newStubMaintenanceRepo() *stubMaintenanceRepo {
	return &stubMaintenanceRepo{byID: make(map[string]*domain.Maintenance)}
}

func (r *stubMaintenanceRepo) Create(_ context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
	for _, existing := range r.byID {
		if existing.UnitID == m.UnitID && existing.Month == m.Month && existing.Year == m.Year {
			return nil, domain.ErrMaintenanceExists
		}
	}
	r.seq++
	clone := *m
	clone.ID = fmt.Sprintf("mnt-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubMaintenanceRepo) FindByID(_ context.Context, id string) (*domain.Maintenance, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMaintenanceNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMaintenanceRepo) FindAll(_ context.Context) ([]*domain.Maintenance, error) {
	return r.list(func(*domain.Maintenance) bool { return true }), nil
}

func (r *stubMaintenanceRepo) FindBySociety(_ context.Context, societyID string) ([]*domain.Maintenance, error) {
	return r.list(func(m *domain.Maintenance) bool { return m.SocietyID == societyID }), nil
}

func (r *stubMaintenanceRepo) FindByUnit(_ context.Context, unitID string) ([]*domain.Maintenance, error) {
	return r.list(func(m *domain.Maintenance) bool { return m.UnitID == unitID }), nil
}

func (r *stubMaintenanceRepo) FindOutstandingByUnit(_ context.Context, unitID string) ([]*domain.Maintenance, error) {
	out := r.list(func(m *domain.Maintenance) bool { return m.UnitID == unitID && m.Status.Outstanding() })
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (r *stubMaintenanceRepo) FindPaidByUnit(_ context.Context, unitID string, limit int) ([]*domain.Maintenance, error) {
	out := r.list(func(m *domain.Maintenance) bool { return m.UnitID == unitID && m.Status == domain.MaintenancePaid })
	sort.Slice(out, func(i, j int) bool {
		if out[i].PaidAt == nil || out[j].PaidAt == nil {
			return out[j].PaidAt == nil
		}
		return out[i].PaidAt.After(*out[j].PaidAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubMaintenanceRepo) FindDueBySociety(_ context.Context, societyID string) ([]*domain.Maintenance, error) {
	return r.list(func(m *domain.Maintenance) bool {
		return m.SocietyID == societyID && (m.Status == domain.MaintenanceDue || m.Status == domain.MaintenanceOverdue)
	}), nil
}

func (r *stubMaintenanceRepo) Update(_ context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
	if _, ok := r.byID[m.ID]; !ok {
		return nil, domain.ErrMaintenanceNotFound
	}
	clone := *m
	r.byID[m.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubMaintenanceRepo) MarkOverdue(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for _, m := range r.byID {
		if m.Status == domain.MaintenanceDue && m.DueDate.Before(now) {
			m.Status = domain.MaintenanceOverdue
			m.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

func (r *stubMaintenanceRepo) list(keep func(*domain.Maintenance) bool) []*domain.Maintenance {
	var out []*domain.Maintenance
	for _, m := range r.byID {
		if keep(m) {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out
}

func (r *stubMaintenanceRepo) seed(m *domain.Maintenance) *domain.Maintenance {
	if m.ID == "" {
		r.seq++
		m.ID = fmt.Sprintf("mnt-%d", r.seq)
	}
	clone := *m
	r.byID[clone.ID] = &clone
	return m
}

type stubIssueRepo struct {
	byID map[string]*domain.Issue
	seq  int
}

func newStubIssueRepo() *stubIssueRepo {
	return &stubIssueRepo{byID: make(map[string]*domain.Issue)}
}

func (r *stubIssueRepo) Create(_ context.Context, i *domain.Issue) (*domain.Issue, error) {
	r.seq++
	clone := *i
	clone.ID = fmt.Sprintf("iss-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubIssueRepo) FindByID(_ context.Context, id string) (*domain.Issue, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrIssueNotFound
	}
	clone := *i
	return &clone, nil
}

func (r *stubIssueRepo) FindAll(_ context.Context) ([]*domain.Issue, error) {
	return r.list(func(*domain.Issue) bool { return true }), nil
}

func (r *stubIssueRepo) FindBySociety(_ context.Context, societyID string) ([]*domain.Issue, error) {
	return r.list(func(i *domain.Issue) bool { return i.SocietyID == societyID }), nil
}

func (r *stubIssueRepo) FindByRaiser(_ context.Context, userID string) ([]*domain.Issue, error) {
	return r.list(func(i *domain.Issue) bool { return i.RaisedBy == userID }), nil
}

func (r *stubIssueRepo) FindByStatus(_ context.Context, status domain.IssueStatus, societyID string) ([]*domain.Issue, error) {
	return r.list(func(i *domain.Issue) bool {
		if i.Status != status {
			return false
		}
		return societyID == "" || i.SocietyID == societyID
	}), nil
}

func (r *stubIssueRepo) Update(_ context.Context, i *domain.Issue) (*domain.Issue, error) {
	if _, ok := r.byID[i.ID]; !ok {
		return nil, domain.ErrIssueNotFound
	}
	clone := *i
	r.byID[i.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubIssueRepo) CountActiveByRaiser(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, i := range r.byID {
		if i.RaisedBy == userID && (i.Status == domain.IssueOpen || i.Status == domain.IssueInProgress) {
			n++
		}
	}
	return n, nil
}

func (r *stubIssueRepo) CountOpenBySociety(_ context.Context, societyID string) (int64, error) {
	var n int64
	for _, i := range r.byID {
		if i.SocietyID == societyID && (i.Status == domain.IssueOpen || i.Status == domain.IssueInProgress) {
			n++
		}
	}
	return n, nil
}

func (r *stubIssueRepo) list(keep func(*domain.Issue) bool) []*domain.Issue {
	var out []*domain.Issue
	for _, i := range r.byID {
		if keep(i) {
			clone := *i
			out = append(out, &clone)
		}
	}
	return out
}

func (r *stubIssueRepo) seed(i *domain.Issue) *domain.Issue {
	if i.ID == "" {
		r.seq++
		i.ID = fmt.Sprintf("iss-%d", r.seq)
	}
	clone := *i
	r.byID[clone.ID] = &clone
	return i
}

type stubAnnouncementRepo struct {
	byID map[string]*domain.Announcement
	seq  int
}

func newStubAnnouncementRepo() *stubAnnouncementRepo {
	return &stubAnnouncementRepo{byID: make(map[string]*domain.Announcement)}
}

func (r *stubAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	r.seq++
	clone := *a
	clone.ID = fmt.Sprintf("ann-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAnnouncementRepo) FindByID(_ context.Context, id string) (*domain.Announcement, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAnnouncementNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAnnouncementRepo) FindCurrent(_ context.Context, now time.Time, limit int) ([]*domain.Announcement, error) {
	return r.current(now, limit, func(*domain.Announcement) bool { return true }), nil
}

func (r *stubAnnouncementRepo) FindCurrentBySociety(_ context.Context, societyID string, now time.Time, limit int) ([]*domain.Announcement, error) {
	return r.current(now, limit, func(a *domain.Announcement) bool { return a.SocietyID == societyID }), nil
}

func (r *stubAnnouncementRepo) Update(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	if _, ok := r.byID[a.ID]; !ok {
		return nil, domain.ErrAnnouncementNotFound
	}
	clone := *a
	r.byID[a.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAnnouncementRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrAnnouncementNotFound
	}
	delete(r.byID, id)
	return nil
}

// current applies the same ordering the Mongo repo uses: important first,
// then newest first.
func (r *stubAnnouncementRepo) current(now time.Time, limit int, keep func(*domain.Announcement) bool) []*domain.Announcement {
	var out []*domain.Announcement
	for _, a := range r.byID {
		if !keep(a) || a.Expired(now) {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsImportant != out[j].IsImportant {
			return out[i].IsImportant
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *stubAnnouncementRepo) seed(a *domain.Announcement) *domain.Announcement {
	if a.ID == "" {
		r.seq++
		a.ID = fmt.Sprintf("ann-%d", r.seq)
	}
	clone := *a
	r.byID[clone.ID] = &clone
	return a
}

// ---------------------------------------------------------------------------
// Transaction, token store, and notifier stubs
// ---------------------------------------------------------------------------

type stubUnitOfWork struct {
	calls int
	err   error
}

func (u *stubUnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	u.calls++
	if u.err != nil {
		return u.err
	}
	return fn(ctx)
}

type stubTokenStore struct {
	byToken map[string]string
	byUser  map[string]string
	saveErr error
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{byToken: make(map[string]string), byUser: make(map[string]string)}
}

func (s *stubTokenStore) Save(_ context.Context, userID, token string, _ time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if old, ok := s.byUser[userID]; ok {
		delete(s.byToken, old)
	}
	s.byToken[token] = userID
	s.byUser[userID] = token
	return nil
}

func (s *stubTokenStore) Lookup(_ context.Context, token string) (string, error) {
	userID, ok := s.byToken[token]
	if !ok {
		return "", domain.ErrInvalidResetToken
	}
	return userID, nil
}

func (s *stubTokenStore) Delete(_ context.Context, userID, token string) error {
	delete(s.byToken, token)
	delete(s.byUser, userID)
	return nil
}

type stubNotifier struct {
	sent    []string // "email:token" pairs in send order
	sendErr error
}

func (n *stubNotifier) SendPasswordReset(_ context.Context, email, token string) error {
	if n.sendErr != nil {
		return n.sendErr
	}
	n.sent = append(n.sent, email+":"+token)
	return nil
}
