package utils

import (
	"fmt"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/models"

	"gorm.io/gorm"
)

// DefaultVillageCode dipakai jika user pembuat surat belum punya kode desa.
const DefaultVillageCode = "DESA"

var typeCodes = map[models.LetterType]string{
	models.TypeUmum:        "UMUM",
	models.TypeKeterangan:  "KET",
	models.TypeRekomendasi: "REK",
	models.TypePengumuman:  "PENG",
	models.TypeUndangan:    "UND",
}

// TypeCode maps a letter type to the short code used in the reference number.
// Unknown types fall back to the generic UMUM code.
func TypeCode(t models.LetterType) string {
	if code, ok := typeCodes[t]; ok {
		return code
	}
	return "UMUM"
}

// NextLetterSequence returns the next sequence number for the given year.
// It must run inside a transaction: the FOR UPDATE lock serializes concurrent
// letter creations so two writers can never read the same latest number.
// Yearly reset: the sequence starts back at 1 each January.
func NextLetterSequence(tx *gorm.DB, year int) (int, error) {
	var lastSeq int

	err := tx.Raw(`
		SELECT COALESCE(MAX(number), 0)
		FROM letters
		WHERE year = ?
		FOR UPDATE
	`, year).Scan(&lastSeq).Error

	if err != nil {
		return 0, err
	}

	return lastSeq + 1, nil
}

// FormatLetterNumber composes the official reference string:
// {sequence 3 digit}/{type code}/{village code}/{month 2 digit}/{year}.
func FormatLetterNumber(seq int, t models.LetterType, villageCode string, at time.Time) string {
	if villageCode == "" {
		villageCode = DefaultVillageCode
	}
	return fmt.Sprintf("%03d/%s/%s/%02d/%d", seq, TypeCode(t), villageCode, int(at.Month()), at.Year())
}
