package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type LetterType string
type Priority string
type LetterStatus string

const (
	TypeUmum        LetterType = "UMUM"
	TypeKeterangan  LetterType = "KETERANGAN"
	TypeRekomendasi LetterType = "REKOMENDASI"
	TypePengumuman  LetterType = "PENGUMUMAN"
	TypeUndangan    LetterType = "UNDANGAN"
)

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	StatusDraft    LetterStatus = "draft"
	StatusPending  LetterStatus = "pending"
	StatusApproved LetterStatus = "approved"
	StatusRejected LetterStatus = "rejected"
	StatusSent     LetterStatus = "sent"
	StatusArchived LetterStatus = "archived"
)

// StringList menyimpan daftar penerima sebagai kolom JSON.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

type Letter struct {
	gorm.Model
	LetterNumber string `gorm:"type:varchar(100);uniqueIndex"`
	Number       int    `gorm:"not null;index:idx_letters_year_number"`
	Year         int    `gorm:"not null;index:idx_letters_year_number"`
	Month        int    `gorm:"not null"`

	Type    LetterType `gorm:"type:ENUM('UMUM','KETERANGAN','REKOMENDASI','PENGUMUMAN','UNDANGAN');not null;index"`
	Subject string     `gorm:"type:varchar(255);not null;index"`
	Content string     `gorm:"type:longtext"`

	Recipients  StringList   `gorm:"type:json"`
	Attachments []Attachment `gorm:"constraint:OnDelete:CASCADE"`

	Status   LetterStatus `gorm:"type:ENUM('draft','pending','approved','rejected','sent','archived');default:'draft';not null;index"`
	Priority Priority     `gorm:"type:ENUM('low','medium','high');default:'low';not null"`

	Notes        string `gorm:"type:text"`
	SignatureKey string `gorm:"type:varchar(255)"`

	CreatedByID  uint  `gorm:"index"`
	CreatedBy    *User `gorm:"foreignKey:CreatedByID"`
	ApprovedByID *uint `gorm:"index"`
	ApprovedBy   *User `gorm:"foreignKey:ApprovedByID"`
	ApprovedAt   *time.Time
	SentAt       *time.Time
}

func (Letter) TableName() string {
	return "letters"
}

// IsComplete melapor apakah record surat punya semua field wajib.
// Record lama yang tidak lengkap disembunyikan dari listing, bukan error.
func (l *Letter) IsComplete() bool {
	return l.LetterNumber != "" &&
		l.Number > 0 &&
		l.Year > 0 &&
		l.Month > 0 &&
		l.Type != "" &&
		l.Subject != ""
}

func (l *Letter) IsDraft() bool { return l.Status == StatusDraft }

func (t LetterType) IsValid() bool {
	switch t {
	case TypeUmum, TypeKeterangan, TypeRekomendasi, TypePengumuman, TypeUndangan:
		return true
	default:
		return false
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

func (s LetterStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusSent, StatusArchived:
		return true
	default:
		return false
	}
}
