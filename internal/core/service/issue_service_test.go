package service

import (
	"context"
	"errors"
	"testing"

	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

func newIssueFixture() (*IssueService, *stubIssueRepo, *stubUnitRepo) {
	issues := newStubIssueRepo()
	units := newStubUnitRepo()
	svc := NewIssueService(issues, units, discardLogger)
	return svc, issues, units
}

func issueInput(title string) ports.CreateIssueInput {
	return ports.CreateIssueInput{Title: title, Description: "leaking pipe in the kitchen"}
}

func strPtr(s string) *string { return &s }

func statusPtr(s domain.IssueStatus) *domain.IssueStatus { return &s }

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestIssueService_Create_DefaultsToResidentUnit(t *testing.T) {
	svc, _, units := newIssueFixture()
	unit := units.seed(&domain.Unit{SocietyID: "soc-1", BuildingName: "A", UnitNumber: "101"})

	created, err := svc.Create(context.Background(), residentActor("user-1", "soc-1", unit.ID), issueInput("Leak"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != domain.IssueOpen {
		t.Errorf("new issue must start %q, got %q", domain.IssueOpen, created.Status)
	}
	if created.Priority != domain.PriorityMedium {
		t.Errorf("expected default priority %q, got %q", domain.PriorityMedium, created.Priority)
	}
	if created.UnitID != unit.ID {
		t.Errorf("issue must default to the resident's unit, got %q", created.UnitID)
	}
	if created.RaisedBy != "user-1" {
		t.Errorf("expected raiser %q, got %q", "user-1", created.RaisedBy)
	}
}

func TestIssueService_Create_ForeignUnitRejected(t *testing.T) {
	svc, _, units := newIssueFixture()
	foreign := units.seed(&domain.Unit{SocietyID: "soc-2", BuildingName: "B", UnitNumber: "301"})

	in := issueInput("Leak")
	in.UnitID = foreign.ID
	_, err := svc.Create(context.Background(), adminActor("admin-1", "soc-1"), in)
	if !errors.Is(err, domain.ErrUnitNotInSociety) {
		t.Fatalf("expected ErrUnitNotInSociety, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Visibility
// ---------------------------------------------------------------------------

func TestIssueService_List_ResidentSeesOnlyOwn(t *testing.T) {
	svc, issues, _ := newIssueFixture()
	issues.seed(&domain.Issue{SocietyID: "soc-1", RaisedBy: "user-1", Status: domain.IssueOpen})
	issues.seed(&domain.Issue{SocietyID: "soc-1", RaisedBy: "user-2", Status: domain.IssueOpen})

	listed, err := svc.List(context.Background(), residentActor("user-1", "soc-1", "unit-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 || listed[0].RaisedBy != "user-1" {
		t.Fatalf("resident must only see their own issues, got %d entries", len(listed))
	}
}

func TestIssueService_Get_OtherRaiserForbidden(t *testing.T) {
	svc, issues, _ := newIssueFixture()
	issue := issues.seed(&domain.Issue{SocietyID: "soc-1", RaisedBy: "user-2", Status: domain.IssueOpen})

	_, err := svc.Get(context.Background(), residentActor("user-1", "soc-1", "unit-1"), issue.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Status transitions
// ---------------------------------------------------------------------------

// A resident may edit the text of their own issue but never its status,
// even on a ticket they raised.
func TestIssueService_Update_ResidentStatusRejected(t *testing.T) {
	svc, issues, _ := newIssueFixture()
	issue := issues.seed(&domain.Issue{SocietyID: "soc-1", RaisedBy: "user-1", Status: domain.IssueOpen})

	_, err := svc.Update(context.Background(), residentActor("user-1", "soc-1", "unit-1"), issue.ID, ports.UpdateIssueInput{
		Status: statusPtr(domain.IssueResolved),
	})
	if !errors.Is(err, domain.ErrStatusChangeForbidden) {
		t.Fatalf("expected ErrStatusChangeForbidden, got %v", err)
	}
	if issues.byID[issue.ID].Status != domain.IssueOpen {
		t.Error("status must be untouched")
	}
}

func TestIssueService_Update_ResidentEditsOwnText(t *testing.T) {
	svc, issues, _ := newIssueFixture()
	issue := issues.seed(&domain.Issue{SocietyID: "soc-1", RaisedBy: "user-1", Status: domain.IssueOpen, Title: "Leak"})

	updated, err := svc.Update(context.Background(), residentActor("user-1", "soc-1", "unit-1"), issue.ID, ports.UpdateIssueInput{
		Title: strPtr("Leak in kitchen"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Leak in kitchen" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
}

func TestIssueService_Update_ResolveRequiresNotes(t *testing.T) {
	svc, issues, _ := newIssueFixture()
	issue := issues.seed(&domain.Issue{SocietyID: "soc-1", RaisedBy: "user-1", Status: domain.IssueInProgress})

	_, err := svc.Update(context.Background(), adminActor("admin-1", "soc-1"), issue.ID, ports.UpdateIssueInput{
		Status: statusPtr(domain.IssueResolved),
	})
	if !errors.Is(err, domain.ErrResolutionNotesRequired) {
		t.Fatalf("expected ErrResolutionNotesRequired, got %v", err)
	}
}

func TestIssueService_Update_ResolveWithNotes(t *testing.T) {
	svc, issues, _ := newIssueFixture()
	issue := issues.seed(&domain.Issue{SocietyID: "soc-1", RaisedBy: "user-1", Status: domain.IssueInProgress})

	updated, err := svc.Update(context.Background(), adminActor("admin-1", "soc-1"), issue.ID, ports.UpdateIssueInput{
		Status:          statusPtr(domain.IssueResolved),
		ResolutionNotes: strPtr("replaced the washer"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.IssueResolved {
		t.Errorf("expected status %q, got %q", domain.IssueResolved, updated.Status)
	}
	if updated.ResolvedAt == nil || updated.ResolvedBy != "admin-1" {
		t.Error("resolution metadata must be stamped")
	}
}

// Closing an open ticket skips RESOLVED; resolution metadata is backfilled
// so closed tickets always carry it.
func TestIssueService_Update_CloseBackfillsResolution(t *testing.T) {
	svc, issues, _ := newIssueFixture()
	issue := issues.seed(&domain.Issue{SocietyID: "soc-1", RaisedBy: "user-1", Status: domain.IssueOpen})

	updated, err := svc.Update(context.Background(), adminActor("admin-1", "soc-1"), issue.ID, ports.UpdateIssueInput{
		Status: statusPtr(domain.IssueClosed),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.IssueClosed {
		t.Errorf("expected status %q, got %q", domain.IssueClosed, updated.Status)
	}
	if updated.ClosedAt == nil {
		t.Error("closed_at must be stamped")
	}
	if updated.ResolvedAt == nil || updated.ResolvedBy != "admin-1" {
		t.Error("closing an unresolved ticket must backfill resolution metadata")
	}
}

func TestIssueService_Update_ReopenRejected(t *testing.T) {
	svc, issues, _ := newIssueFixture()
	issue := issues.seed(&domain.Issue{SocietyID: "soc-1", RaisedBy: "user-1", Status: domain.IssueClosed})

	_, err := svc.Update(context.Background(), adminActor("admin-1", "soc-1"), issue.ID, ports.UpdateIssueInput{
		Status: statusPtr(domain.IssueOpen),
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Filtering
// ---------------------------------------------------------------------------

func TestIssueService_ListByStatus_AdminScoped(t *testing.T) {
	svc, issues, _ := newIssueFixture()
	issues.seed(&domain.Issue{SocietyID: "soc-1", RaisedBy: "user-1", Status: domain.IssueOpen})
	issues.seed(&domain.Issue{SocietyID: "soc-1", RaisedBy: "user-2", Status: domain.IssueClosed})
	issues.seed(&domain.Issue{SocietyID: "soc-2", RaisedBy: "user-3", Status: domain.IssueOpen})

	listed, err := svc.ListByStatus(context.Background(), adminActor("admin-1", "soc-1"), domain.IssueOpen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 || listed[0].SocietyID != "soc-1" {
		t.Fatalf("expected 1 open issue in the admin's society, got %d", len(listed))
	}
}
