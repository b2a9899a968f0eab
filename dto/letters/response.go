package letters

import (
	"time"

	"github.com/koncoweb/surat-mandiri-desa/dto"
	"github.com/koncoweb/surat-mandiri-desa/models"
)

type AttachmentResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	FileKey     string    `json:"file_key"`
	URL         string    `json:"url,omitempty"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type UserRef struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
}

type LetterResponse struct {
	ID           uint                 `json:"id"`
	LetterNumber string               `json:"letter_number"`
	Number       int                  `json:"number"`
	Year         int                  `json:"year"`
	Month        int                  `json:"month"`
	Type         models.LetterType    `json:"type"`
	Subject      string               `json:"subject"`
	Content      string               `json:"content"`
	Recipients   []string             `json:"recipients"`
	Attachments  []AttachmentResponse `json:"attachments,omitempty"`
	Status       models.LetterStatus  `json:"status"`
	Priority     models.Priority      `json:"priority"`
	Notes        string               `json:"notes,omitempty"`
	SignatureKey string               `json:"signature_key,omitempty"`
	SignatureURL string               `json:"signature_url,omitempty"`
	CreatedByID  uint                 `json:"created_by_id"`
	CreatedBy    *UserRef             `json:"created_by,omitempty"`
	ApprovedByID *uint                `json:"approved_by_id,omitempty"`
	ApprovedBy   *UserRef             `json:"approved_by,omitempty"`
	ApprovedAt   *time.Time           `json:"approved_at,omitempty"`
	SentAt       *time.Time           `json:"sent_at,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// HistoryEntry adalah satu baris riwayat status, diturunkan dari timestamp
// yang ada pada surat (dibuat, disetujui, dikirim).
type HistoryEntry struct {
	Status models.LetterStatus `json:"status"`
	At     time.Time           `json:"at"`
	ByID   *uint               `json:"by_id,omitempty"`
}

func newUserRef(u *models.User) *UserRef {
	if u == nil {
		return nil
	}
	return &UserRef{ID: u.ID, Username: u.Username, DisplayName: u.DisplayName}
}

func NewLetterResponse(letter *models.Letter) LetterResponse {
	if letter == nil {
		return LetterResponse{}
	}

	resp := LetterResponse{
		ID:           letter.ID,
		LetterNumber: letter.LetterNumber,
		Number:       letter.Number,
		Year:         letter.Year,
		Month:        letter.Month,
		Type:         letter.Type,
		Subject:      letter.Subject,
		Content:      letter.Content,
		Recipients:   []string(letter.Recipients),
		Status:       letter.Status,
		Priority:     letter.Priority,
		Notes:        letter.Notes,
		SignatureKey: letter.SignatureKey,
		CreatedByID:  letter.CreatedByID,
		CreatedBy:    newUserRef(letter.CreatedBy),
		ApprovedByID: letter.ApprovedByID,
		ApprovedBy:   newUserRef(letter.ApprovedBy),
		ApprovedAt:   letter.ApprovedAt,
		SentAt:       letter.SentAt,
		CreatedAt:    letter.CreatedAt,
		UpdatedAt:    letter.UpdatedAt,
	}

	for _, att := range letter.Attachments {
		resp.Attachments = append(resp.Attachments, AttachmentResponse{
			ID:          att.ID,
			Name:        att.Name,
			FileKey:     att.FileKey,
			ContentType: att.ContentType,
			Size:        att.Size,
			UploadedAt:  att.CreatedAt,
		})
	}

	return resp
}

// History menurunkan riwayat perubahan status dari timestamp yang terisi.
func History(letter *models.Letter) []HistoryEntry {
	if letter == nil {
		return nil
	}

	entries := []HistoryEntry{
		{Status: models.StatusDraft, At: letter.CreatedAt, ByID: &letter.CreatedByID},
	}
	if letter.ApprovedAt != nil {
		entries = append(entries, HistoryEntry{
			Status: models.StatusApproved,
			At:     *letter.ApprovedAt,
			ByID:   letter.ApprovedByID,
		})
	}
	if letter.SentAt != nil {
		entries = append(entries, HistoryEntry{Status: models.StatusSent, At: *letter.SentAt})
	}
	return entries
}

// DocumentResponse adalah payload tampilan cetak: surat digabung dengan kop
// surat desa plus riwayat status.
type DocumentResponse struct {
	Letter  LetterResponse              `json:"letter"`
	Village dto.VillageSettingsResponse `json:"village"`
	History []HistoryEntry              `json:"history"`
}
