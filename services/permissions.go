package services

import (
	"errors"

	"github.com/koncoweb/surat-mandiri-desa/models"
)

var (
	ErrUnauthorized = errors.New("unauthorized: user not authenticated")
	ErrForbidden    = errors.New("forbidden: insufficient permissions")
	ErrNotFound     = errors.New("resource not found")
)

// Capability adalah satu izin yang melekat pada role. Frontend memakai daftar
// capability (dari /auth/me) untuk menampilkan/menyembunyikan menu, server
// memakainya untuk menjaga endpoint. Role tidak pernah dicek dengan string
// lepas di handler.
type Capability string

const (
	CapLettersView    Capability = "letters:view"
	CapLettersCreate  Capability = "letters:create"
	CapLettersApprove Capability = "letters:approve"
	CapLettersSend    Capability = "letters:send"
	CapLettersArchive Capability = "letters:archive"
	CapUsersManage    Capability = "users:manage"
	CapVillageManage  Capability = "village:manage"
)

var roleCapabilities = map[models.Role][]Capability{
	models.RoleAdmin: {
		CapLettersView, CapLettersCreate, CapLettersApprove,
		CapLettersSend, CapLettersArchive, CapUsersManage, CapVillageManage,
	},
	models.RoleStaff: {
		CapLettersView, CapLettersCreate, CapLettersApprove,
		CapLettersSend, CapVillageManage,
	},
	models.RoleOperator: {
		CapLettersView, CapLettersCreate, CapLettersSend,
	},
	models.RoleViewer: {
		CapLettersView,
	},
}

// CapabilitiesFor mengembalikan daftar capability sebuah role. Role kosong
// atau tidak dikenal menghasilkan daftar kosong (fail closed).
func CapabilitiesFor(role models.Role) []Capability {
	caps, ok := roleCapabilities[role]
	if !ok {
		return []Capability{}
	}
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

func HasCapability(role models.Role, cap Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// CanAssignRole: pemberian role ke akun sendiri hanya boleh jika tetap admin,
// supaya sistem tidak kehilangan admin yang sedang login.
func CanAssignRole(actorID uint, target *models.User, newRole models.Role) bool {
	if target == nil || !newRole.IsValid() {
		return false
	}
	if actorID == target.ID && newRole != models.RoleAdmin {
		return false
	}
	return true
}

// CanEditLetter: konten surat hanya boleh diubah pembuatnya selama draft;
// admin selalu boleh.
func CanEditLetter(user *models.User, letter *models.Letter) bool {
	if user == nil || letter == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	return letter.CreatedByID == user.ID && letter.IsDraft()
}

// CanDeleteLetter: admin, atau pembuat selama surat masih draft.
func CanDeleteLetter(user *models.User, letter *models.Letter) bool {
	return CanEditLetter(user, letter)
}
