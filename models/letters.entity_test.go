package models

import "testing"

func completeLetter() Letter {
	return Letter{
		LetterNumber: "001/UMUM/DESA/03/2025",
		Number:       1,
		Year:         2025,
		Month:        3,
		Type:         TypeUmum,
		Subject:      "Rapat koordinasi",
	}
}

func TestLetterIsComplete(t *testing.T) {
	complete := completeLetter()
	if !complete.IsComplete() {
		t.Fatal("letter with all required fields should be complete")
	}

	missingNumber := completeLetter()
	missingNumber.LetterNumber = ""
	if missingNumber.IsComplete() {
		t.Fatal("letter without a number should be incomplete")
	}

	missingSubject := completeLetter()
	missingSubject.Subject = ""
	if missingSubject.IsComplete() {
		t.Fatal("letter without a subject should be incomplete")
	}

	missingYear := completeLetter()
	missingYear.Year = 0
	if missingYear.IsComplete() {
		t.Fatal("letter without a year should be incomplete")
	}
}

func TestStringListScan(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["Ketua RT 01","Ketua RW 02"]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l) != 2 || l[0] != "Ketua RT 01" {
		t.Fatalf("unexpected result: %v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatalf("nil should scan to empty list: %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("expected empty list, got %v", l)
	}
}
