package dto

import (
	"net/mail"
	"strings"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/models"
	"github.com/koncoweb/surat-mandiri-desa/services"
)

// MinPasswordLength mengikuti aturan form pendaftaran: minimal 6 karakter.
const MinPasswordLength = 6

type RegisterRequest struct {
	Username        string `json:"username"`
	DisplayName     string `json:"display_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Department      string `json:"department"`
	Position        string `json:"position"`
	VillageCode     string `json:"village_code"`
	VillageName     string `json:"village_name"`
}

func (r *RegisterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errors["username"] = "username harus diisi"
	}
	if strings.TrimSpace(r.DisplayName) == "" {
		errors["display_name"] = "nama lengkap harus diisi"
	}

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errors["email"] = "email harus diisi"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errors["email"] = "format email tidak valid"
	}

	if r.Password == "" {
		errors["password"] = "password harus diisi"
	} else if len(r.Password) < MinPasswordLength {
		errors["password"] = "password harus minimal 6 karakter"
	}
	if r.ConfirmPassword != r.Password {
		errors["confirm_password"] = "pastikan password dan konfirmasi password sama"
	}

	return errors
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.Email) == "" {
		errors["email"] = "email harus diisi"
	}
	if r.Password == "" {
		errors["password"] = "password harus diisi"
	}
	return errors
}

type UserSummary struct {
	ID          uint        `json:"id"`
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name,omitempty"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	Department  string      `json:"department,omitempty"`
	Position    string      `json:"position,omitempty"`
	VillageCode string      `json:"village_code,omitempty"`
	VillageName string      `json:"village_name,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

func NewUserSummary(user models.User) UserSummary {
	return UserSummary{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Role:        user.Role,
		Department:  user.Department,
		Position:    user.Position,
		VillageCode: user.VillageCode,
		VillageName: user.VillageName,
		CreatedAt:   user.CreatedAt,
	}
}

type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	TokenType    string      `json:"token_type,omitempty"`
	ExpiresAt    time.Time   `json:"expires_at"`
	User         UserSummary `json:"user"`
}

// MeResponse membawa daftar capability supaya frontend bisa menampilkan menu
// sesuai role tanpa cek string role sendiri.
type MeResponse struct {
	User         UserSummary           `json:"user"`
	Capabilities []services.Capability `json:"capabilities"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type PasswordResetRequest struct {
	Email string `json:"email" form:"email"`
}

type PasswordResetSubmission struct {
	Token           string `json:"token" form:"token"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

func (r *PasswordResetSubmission) Validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.Token) == "" {
		errors["token"] = "token harus diisi"
	}
	if r.Password == "" {
		errors["password"] = "password harus diisi"
	} else if len(r.Password) < MinPasswordLength {
		errors["password"] = "password harus minimal 6 karakter"
	}
	if r.ConfirmPassword != r.Password {
		errors["confirm_password"] = "pastikan password dan konfirmasi password sama"
	}
	return errors
}
