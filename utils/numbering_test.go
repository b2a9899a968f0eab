package utils

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/models"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	return db, mock
}

func expectSequenceQuery(mock sqlmock.Sqlmock, year, lastSeq int) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(number), 0)")).
		WithArgs(year).
		WillReturnRows(sqlmock.NewRows([]string{"COALESCE(MAX(number), 0)"}).AddRow(lastSeq))
}

func TestNextLetterSequenceStartsAtOne(t *testing.T) {
	db, mock := newMockDB(t)
	expectSequenceQuery(mock, 2025, 0)

	seq, err := NextLetterSequence(db, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seq != 1 {
		t.Fatalf("expected first sequence to be 1, got %d", seq)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNextLetterSequenceIncrementsSequentially(t *testing.T) {
	db, mock := newMockDB(t)

	for last := 0; last < 3; last++ {
		expectSequenceQuery(mock, 2025, last)

		seq, err := NextLetterSequence(db, 2025)
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", last, err)
		}
		if seq != last+1 {
			t.Fatalf("expected sequence %d, got %d", last+1, seq)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTypeCodeTable(t *testing.T) {
	cases := map[models.LetterType]string{
		models.TypeUmum:        "UMUM",
		models.TypeKeterangan:  "KET",
		models.TypeRekomendasi: "REK",
		models.TypePengumuman:  "PENG",
		models.TypeUndangan:    "UND",
	}

	for lt, want := range cases {
		if got := TypeCode(lt); got != want {
			t.Errorf("TypeCode(%s) = %s, want %s", lt, got, want)
		}
	}

	if got := TypeCode(models.LetterType("NOTA_DINAS")); got != "UMUM" {
		t.Errorf("unknown type should fall back to UMUM, got %s", got)
	}
}

func TestFormatLetterNumber(t *testing.T) {
	at := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.Local)

	got := FormatLetterNumber(1, models.TypePengumuman, "DESA", at)
	if got != "001/PENG/DESA/03/2025" {
		t.Fatalf("unexpected letter number: %s", got)
	}

	got = FormatLetterNumber(12, models.TypeKeterangan, "SKMJ", at)
	if got != "012/KET/SKMJ/03/2025" {
		t.Fatalf("unexpected letter number: %s", got)
	}
}

func TestFormatLetterNumberFallbackVillageCode(t *testing.T) {
	now := time.Now()
	want := fmt.Sprintf("002/UMUM/DESA/%02d/%d", int(now.Month()), now.Year())

	if got := FormatLetterNumber(2, models.TypeUmum, "", now); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
