package services

import (
	"testing"

	"github.com/koncoweb/surat-mandiri-desa/models"

	"gorm.io/gorm"
)

func TestCapabilitiesForUnknownRoleFailsClosed(t *testing.T) {
	if caps := CapabilitiesFor(models.Role("")); len(caps) != 0 {
		t.Fatalf("empty role should have no capabilities, got %v", caps)
	}
	if caps := CapabilitiesFor(models.Role("superuser")); len(caps) != 0 {
		t.Fatalf("unknown role should have no capabilities, got %v", caps)
	}
}

func TestOnlyAdminManagesUsers(t *testing.T) {
	if !HasCapability(models.RoleAdmin, CapUsersManage) {
		t.Fatal("admin should manage users")
	}
	for _, role := range []models.Role{models.RoleStaff, models.RoleOperator, models.RoleViewer} {
		if HasCapability(role, CapUsersManage) {
			t.Fatalf("role %s should not manage users", role)
		}
	}
}

func TestViewerIsReadOnly(t *testing.T) {
	if !HasCapability(models.RoleViewer, CapLettersView) {
		t.Fatal("viewer should at least view letters")
	}
	for _, cap := range []Capability{CapLettersCreate, CapLettersApprove, CapLettersSend, CapLettersArchive, CapVillageManage} {
		if HasCapability(models.RoleViewer, cap) {
			t.Fatalf("viewer should not have %s", cap)
		}
	}
}

func TestCanEditLetterOnlyCreatorWhileDraft(t *testing.T) {
	creator := &models.User{Model: gorm.Model{ID: 7}, Role: models.RoleStaff}
	other := &models.User{Model: gorm.Model{ID: 8}, Role: models.RoleStaff}
	admin := &models.User{Model: gorm.Model{ID: 9}, Role: models.RoleAdmin}

	draft := &models.Letter{CreatedByID: 7, Status: models.StatusDraft}
	pending := &models.Letter{CreatedByID: 7, Status: models.StatusPending}

	if !CanEditLetter(creator, draft) {
		t.Fatal("creator should edit own draft")
	}
	if CanEditLetter(creator, pending) {
		t.Fatal("creator should not edit after submission")
	}
	if CanEditLetter(other, draft) {
		t.Fatal("non-creator should not edit draft")
	}
	if !CanEditLetter(admin, pending) {
		t.Fatal("admin should always edit")
	}
}

func TestCanAssignRoleBlocksSelfDemotion(t *testing.T) {
	self := &models.User{Model: gorm.Model{ID: 3}, Role: models.RoleAdmin}
	other := &models.User{Model: gorm.Model{ID: 4}, Role: models.RoleStaff}

	if CanAssignRole(3, self, models.RoleViewer) {
		t.Fatal("admin should not demote own account")
	}
	if !CanAssignRole(3, self, models.RoleAdmin) {
		t.Fatal("reassigning admin to self should be allowed")
	}
	if !CanAssignRole(3, other, models.RoleViewer) {
		t.Fatal("demoting another account should be allowed")
	}
	if CanAssignRole(3, other, models.Role("superuser")) {
		t.Fatal("unknown role should be rejected")
	}
	if CanAssignRole(3, nil, models.RoleViewer) {
		t.Fatal("nil target should be rejected")
	}
}

func TestCapabilitiesForReturnsCopy(t *testing.T) {
	caps := CapabilitiesFor(models.RoleViewer)
	if len(caps) == 0 {
		t.Fatal("viewer should have capabilities")
	}
	caps[0] = Capability("mutated")

	if CapabilitiesFor(models.RoleViewer)[0] == Capability("mutated") {
		t.Fatal("CapabilitiesFor should not expose internal slice")
	}
}
