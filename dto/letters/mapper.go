package letters

import (
	"strings"

	"github.com/koncoweb/surat-mandiri-desa/models"
)

func (r *CreateLetterRequest) ToModel() models.Letter {
	letter := models.Letter{
		Type:         r.Type,
		Subject:      strings.TrimSpace(r.Subject),
		Content:      r.Content,
		Recipients:   models.StringList(r.Recipients),
		Priority:     r.Priority,
		Notes:        strings.TrimSpace(r.Notes),
		SignatureKey: strings.TrimSpace(r.SignatureKey),
		Status:       r.Status,
	}

	if letter.Priority == "" {
		letter.Priority = models.PriorityLow
	}
	if letter.Status == "" {
		letter.Status = models.StatusDraft
	}

	for _, att := range r.Attachments {
		letter.Attachments = append(letter.Attachments, models.Attachment{
			Name:        strings.TrimSpace(att.Name),
			FileKey:     strings.TrimSpace(att.FileKey),
			ContentType: att.ContentType,
			Size:        att.Size,
		})
	}

	return letter
}

// ApplyUpdate menerapkan partial update ke konten surat. Status sengaja tidak
// tersentuh di sini; perubahan status hanya lewat aksi workflow.
func ApplyUpdate(letter *models.Letter, req *UpdateLetterRequest) {
	if letter == nil || req == nil {
		return
	}

	if req.Type != nil {
		letter.Type = *req.Type
	}
	if req.Subject != nil {
		letter.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.Content != nil {
		letter.Content = *req.Content
	}
	if req.Recipients != nil {
		letter.Recipients = models.StringList(*req.Recipients)
	}
	if req.Priority != nil {
		letter.Priority = *req.Priority
	}
	if req.Notes != nil {
		letter.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.SignatureKey != nil {
		letter.SignatureKey = strings.TrimSpace(*req.SignatureKey)
	}
}
