package service

import (
	"context"
	"errors"
	"testing"

	"github.com/residenthub/society-api/internal/core/domain"
	"github.com/residenthub/society-api/internal/core/ports"
)

func newUnitFixture() (*UnitService, *stubUnitRepo, *stubSocietyRepo, *stubUserRepo) {
	units := newStubUnitRepo()
	societies := newStubSocietyRepo()
	users := newStubUserRepo()
	svc := NewUnitService(units, societies, users, discardLogger)
	return svc, units, societies, users
}

func unitInput(building, number string) ports.CreateUnitInput {
	return ports.CreateUnitInput{
		BuildingName: building,
		UnitNumber:   number,
		FloorNumber:  2,
		UnitType:     domain.UnitTwoBHK,
		AreaSqFt:     950,
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestUnitService_Create_Success(t *testing.T) {
	svc, _, societies, _ := newUnitFixture()
	society := societies.seed(&domain.Society{Name: "GM", Status: domain.SocietyActive, CreatedBy: "admin-1"})

	created, err := svc.Create(context.Background(), adminActor("admin-1", society.ID), unitInput("Block A", "203"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != domain.UnitVacant {
		t.Errorf("new unit must start %q, got %q", domain.UnitVacant, created.Status)
	}
	if created.SocietyID != society.ID {
		t.Errorf("unit must land in the admin's society, got %q", created.SocietyID)
	}
	if created.Slot() != "Block A-203" {
		t.Errorf("unexpected slot: %q", created.Slot())
	}
}

func TestUnitService_Create_DuplicateSlot(t *testing.T) {
	svc, _, societies, _ := newUnitFixture()
	society := societies.seed(&domain.Society{Name: "GM", Status: domain.SocietyActive, CreatedBy: "admin-1"})
	actor := adminActor("admin-1", society.ID)

	if _, err := svc.Create(context.Background(), actor, unitInput("Block A", "203")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(context.Background(), actor, unitInput("Block A", "203"))
	if !errors.Is(err, domain.ErrUnitExists) {
		t.Fatalf("expected ErrUnitExists, got %v", err)
	}
}

// The same (building, number) pair is legal across societies; uniqueness is
// per tenant.
func TestUnitService_Create_SameSlotOtherSociety(t *testing.T) {
	svc, _, societies, _ := newUnitFixture()
	first := societies.seed(&domain.Society{Name: "One", Status: domain.SocietyActive, CreatedBy: "admin-1"})
	second := societies.seed(&domain.Society{Name: "Two", Status: domain.SocietyActive, CreatedBy: "admin-2"})

	if _, err := svc.Create(context.Background(), adminActor("admin-1", first.ID), unitInput("Block A", "203")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), adminActor("admin-2", second.ID), unitInput("Block A", "203")); err != nil {
		t.Fatalf("same slot in another society must be allowed: %v", err)
	}
}

func TestUnitService_Create_NonCreatorForbidden(t *testing.T) {
	svc, _, societies, _ := newUnitFixture()
	society := societies.seed(&domain.Society{Name: "GM", Status: domain.SocietyActive, CreatedBy: "admin-1"})

	_, err := svc.Create(context.Background(), adminActor("admin-2", society.ID), unitInput("Block A", "203"))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUnitService_Create_WithoutSociety(t *testing.T) {
	svc, _, _, _ := newUnitFixture()

	_, err := svc.Create(context.Background(), adminActor("admin-1", ""), unitInput("Block A", "203"))
	if !errors.Is(err, domain.ErrNotInSociety) {
		t.Fatalf("expected ErrNotInSociety, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Availability
// ---------------------------------------------------------------------------

func TestUnitService_ListAvailable_FiltersOccupied(t *testing.T) {
	svc, units, societies, users := newUnitFixture()
	society := societies.seed(&domain.Society{Name: "GM", Status: domain.SocietyActive})
	free := units.seed(&domain.Unit{SocietyID: society.ID, BuildingName: "A", UnitNumber: "101"})
	taken := units.seed(&domain.Unit{SocietyID: society.ID, BuildingName: "A", UnitNumber: "102"})
	users.seed(&domain.User{
		Email:     "occupant@example.com",
		Role:      domain.RoleResident,
		Status:    domain.AccountActive,
		SocietyID: society.ID,
		UnitID:    taken.ID,
	})

	available, err := svc.ListAvailable(context.Background(), society.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 || available[0].ID != free.ID {
		t.Fatalf("expected only the free unit, got %d entries", len(available))
	}
}

// A pending applicant does not occupy the unit yet; only ACTIVE residents
// block availability.
func TestUnitService_ListAvailable_PendingDoesNotBlock(t *testing.T) {
	svc, units, societies, users := newUnitFixture()
	society := societies.seed(&domain.Society{Name: "GM", Status: domain.SocietyActive})
	unit := units.seed(&domain.Unit{SocietyID: society.ID, BuildingName: "A", UnitNumber: "101"})
	users.seed(&domain.User{
		Email:     "applicant@example.com",
		Role:      domain.RoleResident,
		Status:    domain.AccountPendingApproval,
		SocietyID: society.ID,
		UnitID:    unit.ID,
	})

	available, err := svc.ListAvailable(context.Background(), society.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 {
		t.Fatalf("pending applicant must not hide the unit, got %d entries", len(available))
	}
}

// ---------------------------------------------------------------------------
// Update and delete
// ---------------------------------------------------------------------------

func TestUnitService_Update_SlotCollision(t *testing.T) {
	svc, units, societies, _ := newUnitFixture()
	society := societies.seed(&domain.Society{Name: "GM", Status: domain.SocietyActive, CreatedBy: "admin-1"})
	units.seed(&domain.Unit{SocietyID: society.ID, BuildingName: "A", UnitNumber: "101"})
	moving := units.seed(&domain.Unit{SocietyID: society.ID, BuildingName: "A", UnitNumber: "102"})

	number := "101"
	_, err := svc.Update(context.Background(), adminActor("admin-1", society.ID), moving.ID, ports.UpdateUnitInput{UnitNumber: &number})
	if !errors.Is(err, domain.ErrUnitExists) {
		t.Fatalf("expected ErrUnitExists, got %v", err)
	}
}

func TestUnitService_Update_SameSlotAllowed(t *testing.T) {
	svc, units, societies, _ := newUnitFixture()
	society := societies.seed(&domain.Society{Name: "GM", Status: domain.SocietyActive, CreatedBy: "admin-1"})
	unit := units.seed(&domain.Unit{SocietyID: society.ID, BuildingName: "A", UnitNumber: "101", FloorNumber: 1})

	// Re-submitting the unit's own number alongside another change is not a
	// collision with itself.
	number := "101"
	floor := 3
	updated, err := svc.Update(context.Background(), adminActor("admin-1", society.ID), unit.ID, ports.UpdateUnitInput{UnitNumber: &number, FloorNumber: &floor})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.FloorNumber != 3 {
		t.Errorf("expected floor 3, got %d", updated.FloorNumber)
	}
}

func TestUnitService_Delete_BlockedWithResidentRecord(t *testing.T) {
	svc, units, societies, _ := newUnitFixture()
	society := societies.seed(&domain.Society{Name: "GM", Status: domain.SocietyActive, CreatedBy: "admin-1"})
	unit := units.seed(&domain.Unit{SocietyID: society.ID, BuildingName: "A", UnitNumber: "101", OwnerResidentID: "res-1"})

	err := svc.Delete(context.Background(), adminActor("admin-1", society.ID), unit.ID)
	if !errors.Is(err, domain.ErrUnitHasResidents) {
		t.Fatalf("expected ErrUnitHasResidents, got %v", err)
	}
}

func TestUnitService_Delete_BlockedWithActiveOccupant(t *testing.T) {
	svc, units, societies, users := newUnitFixture()
	society := societies.seed(&domain.Society{Name: "GM", Status: domain.SocietyActive, CreatedBy: "admin-1"})
	unit := units.seed(&domain.Unit{SocietyID: society.ID, BuildingName: "A", UnitNumber: "101"})
	users.seed(&domain.User{
		Email:     "occupant@example.com",
		Role:      domain.RoleResident,
		Status:    domain.AccountActive,
		SocietyID: society.ID,
		UnitID:    unit.ID,
	})

	err := svc.Delete(context.Background(), adminActor("admin-1", society.ID), unit.ID)
	if !errors.Is(err, domain.ErrUnitHasResidents) {
		t.Fatalf("expected ErrUnitHasResidents, got %v", err)
	}
}

func TestUnitService_Delete_Success(t *testing.T) {
	svc, units, societies, _ := newUnitFixture()
	society := societies.seed(&domain.Society{Name: "GM", Status: domain.SocietyActive, CreatedBy: "admin-1"})
	unit := units.seed(&domain.Unit{SocietyID: society.ID, BuildingName: "A", UnitNumber: "101"})

	if err := svc.Delete(context.Background(), adminActor("admin-1", society.ID), unit.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := units.byID[unit.ID]; ok {
		t.Error("unit must be removed")
	}
}
