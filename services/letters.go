package services

import (
	"gorm.io/gorm"

	"github.com/koncoweb/surat-mandiri-desa/models"
)

const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortAlphabetical = "alphabetical"
)

// LetterListOptions adalah filter listing surat. Nilai kosong berarti filter
// tidak dipakai.
type LetterListOptions struct {
	Status models.LetterStatus
	Type   models.LetterType
	Search string
	Sort   string
}

func (o LetterListOptions) ValidSort() bool {
	switch o.Sort {
	case "", SortNewest, SortOldest, SortAlphabetical:
		return true
	default:
		return false
	}
}

// ApplyLetterFilters membangun query listing: filter status/type exact match,
// pencarian LIKE atas subject/nomor/isi, dan urutan. Record tidak lengkap
// (data lama tanpa nomor atau perihal) disembunyikan, bukan error.
func ApplyLetterFilters(db *gorm.DB, opts LetterListOptions) *gorm.DB {
	tx := db.Model(&models.Letter{}).
		Where("letter_number <> '' AND subject <> ''")

	if opts.Status != "" {
		tx = tx.Where("status = ?", opts.Status)
	}
	if opts.Type != "" {
		tx = tx.Where("type = ?", opts.Type)
	}
	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		tx = tx.Where(
			db.Session(&gorm.Session{NewDB: true}).
				Where("subject LIKE ?", like).
				Or("letter_number LIKE ?", like).
				Or("content LIKE ?", like),
		)
	}

	switch opts.Sort {
	case SortOldest:
		tx = tx.Order("created_at ASC")
	case SortAlphabetical:
		tx = tx.Order("subject ASC")
	default:
		tx = tx.Order("created_at DESC")
	}

	return tx
}

// LetterStatusCounts menghitung jumlah surat per status untuk dashboard.
// Semua status selalu muncul di hasil, nol jika belum ada suratnya.
func LetterStatusCounts(db *gorm.DB) (map[models.LetterStatus]int64, error) {
	var rows []struct {
		Status models.LetterStatus
		Total  int64
	}

	err := db.Model(&models.Letter{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[models.LetterStatus]int64{
		models.StatusDraft:    0,
		models.StatusPending:  0,
		models.StatusApproved: 0,
		models.StatusRejected: 0,
		models.StatusSent:     0,
		models.StatusArchived: 0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
