package services

import (
	"errors"
	"testing"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/models"

	"gorm.io/gorm"
)

func staffUser(id uint) *models.User {
	return &models.User{Model: gorm.Model{ID: id}, Role: models.RoleStaff}
}

func TestSubmitMovesDraftToPending(t *testing.T) {
	creator := staffUser(1)
	letter := &models.Letter{CreatedByID: 1, Status: models.StatusDraft}

	if err := ApplyAction(creator, letter, ActionSubmit, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter.Status != models.StatusPending {
		t.Fatalf("expected pending, got %s", letter.Status)
	}
}

func TestSubmitByNonCreatorRejected(t *testing.T) {
	letter := &models.Letter{CreatedByID: 1, Status: models.StatusDraft}

	err := ApplyAction(staffUser(2), letter, ActionSubmit, time.Now())
	if !errors.Is(err, ErrActionNotPermitted) {
		t.Fatalf("expected ErrActionNotPermitted, got %v", err)
	}
	if letter.Status != models.StatusDraft {
		t.Fatalf("status should be unchanged, got %s", letter.Status)
	}
}

func TestApproveStampsApproverAndTime(t *testing.T) {
	approver := staffUser(3)
	letter := &models.Letter{CreatedByID: 1, Status: models.StatusPending}
	now := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.Local)

	if err := ApplyAction(approver, letter, ActionApprove, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter.Status != models.StatusApproved {
		t.Fatalf("expected approved, got %s", letter.Status)
	}
	if letter.ApprovedByID == nil || *letter.ApprovedByID != 3 {
		t.Fatal("approver id not stamped")
	}
	if letter.ApprovedAt == nil || !letter.ApprovedAt.Equal(now) {
		t.Fatal("approval time not stamped")
	}
}

func TestApproveFromDraftRejected(t *testing.T) {
	letter := &models.Letter{CreatedByID: 1, Status: models.StatusDraft}

	err := ApplyAction(staffUser(3), letter, ActionApprove, time.Now())
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestViewerCannotApprove(t *testing.T) {
	viewer := &models.User{Model: gorm.Model{ID: 4}, Role: models.RoleViewer}
	letter := &models.Letter{CreatedByID: 1, Status: models.StatusPending}

	err := ApplyAction(viewer, letter, ActionApprove, time.Now())
	if !errors.Is(err, ErrActionNotPermitted) {
		t.Fatalf("expected ErrActionNotPermitted, got %v", err)
	}
}

func TestSendStampsSentAt(t *testing.T) {
	operator := &models.User{Model: gorm.Model{ID: 5}, Role: models.RoleOperator}
	letter := &models.Letter{CreatedByID: 1, Status: models.StatusApproved}
	now := time.Now()

	if err := ApplyAction(operator, letter, ActionSend, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter.Status != models.StatusSent {
		t.Fatalf("expected sent, got %s", letter.Status)
	}
	if letter.SentAt == nil || !letter.SentAt.Equal(now) {
		t.Fatal("sent time not stamped")
	}
}

func TestArchiveOnlyAdmin(t *testing.T) {
	letter := &models.Letter{CreatedByID: 1, Status: models.StatusSent}

	if err := ApplyAction(staffUser(6), letter, ActionArchive, time.Now()); !errors.Is(err, ErrActionNotPermitted) {
		t.Fatalf("staff archive should be rejected, got %v", err)
	}

	admin := &models.User{Model: gorm.Model{ID: 7}, Role: models.RoleAdmin}
	if err := ApplyAction(admin, letter, ActionArchive, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter.Status != models.StatusArchived {
		t.Fatalf("expected archived, got %s", letter.Status)
	}
}

func TestArchiveFromRejected(t *testing.T) {
	admin := &models.User{Model: gorm.Model{ID: 7}, Role: models.RoleAdmin}
	letter := &models.Letter{CreatedByID: 1, Status: models.StatusRejected}

	if err := ApplyAction(admin, letter, ActionArchive, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter.Status != models.StatusArchived {
		t.Fatalf("expected archived, got %s", letter.Status)
	}
}

func TestUnknownActionRejected(t *testing.T) {
	letter := &models.Letter{CreatedByID: 1, Status: models.StatusDraft}

	err := ApplyAction(staffUser(1), letter, Action("shred"), time.Now())
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}
