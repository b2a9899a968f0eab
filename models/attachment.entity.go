package models

import "gorm.io/gorm"

// Attachment adalah lampiran milik satu surat. Immutable setelah dibuat;
// file fisiknya disimpan di S3 dengan FileKey sebagai object key.
type Attachment struct {
	gorm.Model
	LetterID    uint   `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(255);not null"`
	FileKey     string `gorm:"type:varchar(255);not null"`
	ContentType string `gorm:"type:varchar(100)"`
	Size        int64  `gorm:"not null;default:0"`
}

func (Attachment) TableName() string {
	return "attachments"
}
