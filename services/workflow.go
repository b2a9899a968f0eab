package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/models"
)

var (
	ErrUnknownAction      = errors.New("unknown letter action")
	ErrInvalidTransition  = errors.New("letter status does not allow this action")
	ErrActionNotPermitted = errors.New("role does not permit this action")
)

// Action adalah operasi workflow yang mengubah status surat. Perubahan status
// hanya boleh lewat ApplyAction, tidak pernah lewat update field bebas.
type Action string

const (
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionSend    Action = "send"
	ActionArchive Action = "archive"
)

type transitionRule struct {
	from       []models.LetterStatus
	to         models.LetterStatus
	capability Capability
	// submit hanya boleh oleh pembuat surat (atau admin)
	creatorOnly bool
}

var transitionRules = map[Action]transitionRule{
	ActionSubmit: {
		from:        []models.LetterStatus{models.StatusDraft},
		to:          models.StatusPending,
		capability:  CapLettersCreate,
		creatorOnly: true,
	},
	ActionApprove: {
		from:       []models.LetterStatus{models.StatusPending},
		to:         models.StatusApproved,
		capability: CapLettersApprove,
	},
	ActionReject: {
		from:       []models.LetterStatus{models.StatusPending},
		to:         models.StatusRejected,
		capability: CapLettersApprove,
	},
	ActionSend: {
		from:       []models.LetterStatus{models.StatusApproved},
		to:         models.StatusSent,
		capability: CapLettersSend,
	},
	ActionArchive: {
		from:       []models.LetterStatus{models.StatusSent, models.StatusRejected},
		to:         models.StatusArchived,
		capability: CapLettersArchive,
	},
}

func (a Action) IsValid() bool {
	_, ok := transitionRules[a]
	return ok
}

// ApplyAction memvalidasi lalu menerapkan satu transisi status pada surat:
// cek capability role, cek status asal, baru mutasi status plus stempel
// approved_by/approved_at/sent_at. Surat tidak disimpan di sini; caller yang
// memegang transaksi.
func ApplyAction(user *models.User, letter *models.Letter, action Action, now time.Time) error {
	if user == nil {
		return ErrUnauthorized
	}
	if letter == nil {
		return ErrNotFound
	}

	rule, ok := transitionRules[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if !HasCapability(user.Role, rule.capability) {
		return ErrActionNotPermitted
	}
	if rule.creatorOnly && !user.IsAdmin() && letter.CreatedByID != user.ID {
		return ErrActionNotPermitted
	}

	allowed := false
	for _, from := range rule.from {
		if letter.Status == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, letter.Status)
	}

	if now.IsZero() {
		now = time.Now()
	}

	letter.Status = rule.to

	switch action {
	case ActionApprove:
		letter.ApprovedByID = &user.ID
		letter.ApprovedAt = &now
	case ActionSend:
		letter.SentAt = &now
	}

	return nil
}
