package events

import (
	"github.com/koncoweb/surat-mandiri-desa/models"
)

// LetterEventType mendefinisikan jenis event terkait siklus hidup surat
type LetterEventType string

const (
	// LetterCreated dipublikasikan saat surat baru berhasil dibuat
	LetterCreated LetterEventType = "LetterCreated"

	// LetterStatusMoved dipublikasikan saat status surat berubah
	// (misalnya dari pending ke approved)
	LetterStatusMoved LetterEventType = "LetterStatusMoved"
)

// LetterEvent adalah payload untuk event surat
type LetterEvent struct {
	Type      LetterEventType
	Letter    models.Letter
	OldStatus models.LetterStatus // hanya relevan untuk LetterStatusMoved
}

// LetterEventBus adalah channel untuk event surat. Di-buffer agar publish
// dari handler API tidak blocking.
var LetterEventBus = make(chan LetterEvent, 100)

// Publish mengirim event tanpa blocking; event dibuang jika buffer penuh.
func Publish(e LetterEvent) {
	select {
	case LetterEventBus <- e:
	default:
	}
}
