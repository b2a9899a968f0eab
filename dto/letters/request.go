package letters

import (
	"strings"

	"github.com/koncoweb/surat-mandiri-desa/models"
)

// AttachmentInput membawa metadata file yang sudah diunggah lewat endpoint
// file terlebih dahulu; FileKey adalah object key S3 hasil upload.
type AttachmentInput struct {
	Name        string `json:"name"`
	FileKey     string `json:"file_key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type CreateLetterRequest struct {
	Type       models.LetterType `json:"type"`
	Subject    string            `json:"subject"`
	Content    string            `json:"content"`
	Recipients []string          `json:"recipients"`
	Priority   models.Priority   `json:"priority"`
	Notes      string            `json:"notes"`
	// Status awal hanya boleh draft (simpan) atau pending (langsung ajukan).
	Status       models.LetterStatus `json:"status"`
	SignatureKey string              `json:"signature_key"`
	Attachments  []AttachmentInput   `json:"attachments"`
}

type UpdateLetterRequest struct {
	Type         *models.LetterType `json:"type"`
	Subject      *string            `json:"subject"`
	Content      *string            `json:"content"`
	Recipients   *[]string          `json:"recipients"`
	Priority     *models.Priority   `json:"priority"`
	Notes        *string            `json:"notes"`
	SignatureKey *string            `json:"signature_key"`
}

func (r *CreateLetterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if !r.Type.IsValid() {
		errors["type"] = "type must be UMUM, KETERANGAN, REKOMENDASI, PENGUMUMAN, or UNDANGAN"
	}
	if strings.TrimSpace(r.Subject) == "" {
		errors["subject"] = "subject is required"
	}
	if strings.TrimSpace(r.Content) == "" {
		errors["content"] = "content is required"
	}
	if len(r.Recipients) == 0 {
		errors["recipients"] = "at least one recipient is required"
	}
	if r.Priority != "" && !r.Priority.IsValid() {
		errors["priority"] = "priority must be low, medium, or high"
	}
	if r.Status != "" && r.Status != models.StatusDraft && r.Status != models.StatusPending {
		errors["status"] = "initial status must be draft or pending"
	}
	for _, att := range r.Attachments {
		if strings.TrimSpace(att.FileKey) == "" || strings.TrimSpace(att.Name) == "" {
			errors["attachments"] = "attachment name and file_key are required"
			break
		}
	}

	return errors
}

func (r *UpdateLetterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Type != nil && !r.Type.IsValid() {
		errors["type"] = "type must be UMUM, KETERANGAN, REKOMENDASI, PENGUMUMAN, or UNDANGAN"
	}
	if r.Subject != nil && strings.TrimSpace(*r.Subject) == "" {
		errors["subject"] = "subject cannot be empty"
	}
	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		errors["content"] = "content cannot be empty"
	}
	if r.Recipients != nil && len(*r.Recipients) == 0 {
		errors["recipients"] = "at least one recipient is required"
	}
	if r.Priority != nil && !r.Priority.IsValid() {
		errors["priority"] = "priority must be low, medium, or high"
	}

	return errors
}

// WorkflowRequest membawa aksi transisi status plus catatan opsional
// (misal alasan penolakan).
type WorkflowRequest struct {
	Notes string `json:"notes"`
}
