package letters

import (
	"testing"

	"github.com/koncoweb/surat-mandiri-desa/models"
)

func validCreateRequest() CreateLetterRequest {
	return CreateLetterRequest{
		Type:       models.TypePengumuman,
		Subject:    "Pengumuman Kerja Bakti",
		Content:    "<p>Kerja bakti hari Minggu.</p>",
		Recipients: []string{"Ketua RW 01", "Ketua RW 02"},
	}
}

func TestCreateLetterRequestValid(t *testing.T) {
	req := validCreateRequest()
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestCreateLetterRequestInvalidType(t *testing.T) {
	req := validCreateRequest()
	req.Type = models.LetterType("MEMO")

	errs := req.Validate()
	if _, ok := errs["type"]; !ok {
		t.Fatalf("expected type error, got %v", errs)
	}
}

func TestCreateLetterRequestMissingFields(t *testing.T) {
	req := CreateLetterRequest{Type: models.TypeUmum}

	errs := req.Validate()
	for _, field := range []string{"subject", "content", "recipients"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestCreateLetterRequestStatusGuard(t *testing.T) {
	req := validCreateRequest()
	req.Status = models.StatusApproved

	errs := req.Validate()
	if _, ok := errs["status"]; !ok {
		t.Fatalf("initial status approved should be rejected, got %v", errs)
	}

	req.Status = models.StatusPending
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("pending should be a valid initial status, got %v", errs)
	}
}

func TestToModelDefaults(t *testing.T) {
	req := validCreateRequest()
	letter := req.ToModel()

	if letter.Status != models.StatusDraft {
		t.Fatalf("expected default status draft, got %s", letter.Status)
	}
	if letter.Priority != models.PriorityLow {
		t.Fatalf("expected default priority low, got %s", letter.Priority)
	}
	if len(letter.Recipients) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(letter.Recipients))
	}
}

func TestApplyUpdateLeavesStatusAlone(t *testing.T) {
	letter := models.Letter{Status: models.StatusDraft, Subject: "Lama"}
	subject := "Baru"

	ApplyUpdate(&letter, &UpdateLetterRequest{Subject: &subject})

	if letter.Subject != "Baru" {
		t.Fatalf("subject not applied: %s", letter.Subject)
	}
	if letter.Status != models.StatusDraft {
		t.Fatalf("status must not change via update, got %s", letter.Status)
	}
}
