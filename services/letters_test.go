package services

import (
	"testing"

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

func TestApplyLetterFiltersStatusSubset(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `letters` WHERE letter_number <> '' AND subject <> '' AND status = \\?").
		WithArgs("approved").
		WillReturnRows(sqlmock.NewRows([]string{"id", "letter_number", "subject", "status"}).
			AddRow(1, "001/UMUM/DESA/03/2025", "Rapat koordinasi", "approved").
			AddRow(2, "002/KET/DESA/03/2025", "Keterangan domisili", "approved"))

	var letters []models.Letter
	opts := LetterListOptions{Status: models.StatusApproved}
	if err := ApplyLetterFilters(db, opts).Find(&letters).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(letters) != 2 {
		t.Fatalf("expected 2 letters, got %d", len(letters))
	}
	for _, l := range letters {
		if l.Status != models.StatusApproved {
			t.Fatalf("status filter leaked letter with status %s", l.Status)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplyLetterFiltersCombinesStatusTypeAndSearch(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("status = \\? AND type = \\? AND \\(subject LIKE \\? OR letter_number LIKE \\? OR content LIKE \\?\\)").
		WithArgs("pending", "UMUM", "%rapat%", "%rapat%", "%rapat%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	var letters []models.Letter
	opts := LetterListOptions{
		Status: models.StatusPending,
		Type:   models.TypeUmum,
		Search: "rapat",
	}
	if err := ApplyLetterFilters(db, opts).Find(&letters).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(letters) != 0 {
		t.Fatalf("expected no rows, got %d", len(letters))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplyLetterFiltersSortOrder(t *testing.T) {
	cases := map[string]string{
		"":               "ORDER BY created_at DESC",
		SortNewest:       "ORDER BY created_at DESC",
		SortOldest:       "ORDER BY created_at ASC",
		SortAlphabetical: "ORDER BY subject ASC",
	}

	for sort, orderClause := range cases {
		db, mock := newMockDB(t)
		mock.ExpectQuery(orderClause).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		var letters []models.Letter
		if err := ApplyLetterFilters(db, LetterListOptions{Sort: sort}).Find(&letters).Error; err != nil {
			t.Fatalf("sort %q: unexpected error: %v", sort, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("sort %q: unmet expectations: %v", sort, err)
		}
	}
}

func TestLetterListOptionsValidSort(t *testing.T) {
	for _, sort := range []string{"", SortNewest, SortOldest, SortAlphabetical} {
		if !(LetterListOptions{Sort: sort}).ValidSort() {
			t.Errorf("sort %q should be valid", sort)
		}
	}
	if (LetterListOptions{Sort: "priority"}).ValidSort() {
		t.Error("unknown sort should be rejected")
	}
}

func TestLetterStatusCountsZeroFillsMissingStatuses(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) AS total FROM `letters`").
		WillReturnRows(sqlmock.NewRows([]string{"status", "total"}).
			AddRow("approved", 3).
			AddRow("draft", 1))

	counts, err := LetterStatusCounts(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(counts) != 6 {
		t.Fatalf("expected all 6 statuses in result, got %d", len(counts))
	}
	if counts[models.StatusApproved] != 3 {
		t.Fatalf("expected 3 approved, got %d", counts[models.StatusApproved])
	}
	if counts[models.StatusDraft] != 1 {
		t.Fatalf("expected 1 draft, got %d", counts[models.StatusDraft])
	}
	for _, status := range []models.LetterStatus{models.StatusPending, models.StatusRejected, models.StatusSent, models.StatusArchived} {
		if counts[status] != 0 {
			t.Fatalf("expected zero count for %s, got %d", status, counts[status])
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
