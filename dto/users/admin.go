package users

import (
	"strings"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/models"
)

type AdminUserCreateRequest struct {
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	Role        models.Role `json:"role"`
	Department  string      `json:"department"`
	Position    string      `json:"position"`
	VillageCode string      `json:"village_code"`
	VillageName string      `json:"village_name"`
}

type AdminUserUpdateRequest struct {
	Username    *string      `json:"username"`
	DisplayName *string      `json:"display_name"`
	Email       *string      `json:"email"`
	Password    *string      `json:"password"`
	Role        *models.Role `json:"role"`
	Department  *string      `json:"department"`
	Position    *string      `json:"position"`
	VillageCode *string      `json:"village_code"`
	VillageName *string      `json:"village_name"`
}

type UpdateRoleRequest struct {
	Role models.Role `json:"role"`
}

type AdminUserResponse struct {
	ID          uint        `json:"id"`
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	Department  string      `json:"department"`
	Position    string      `json:"position"`
	VillageCode string      `json:"village_code"`
	VillageName string      `json:"village_name"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

func (r *AdminUserCreateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errors["username"] = "username is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errors["email"] = "email is required"
	}
	if strings.TrimSpace(r.Password) == "" {
		errors["password"] = "password is required"
	} else if len(r.Password) < 6 {
		errors["password"] = "password must be at least 6 characters"
	}
	if !r.Role.IsValid() {
		errors["role"] = "role must be admin, staff, operator, or viewer"
	}

	return errors
}

func (r *AdminUserUpdateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Password != nil {
		pwd := strings.TrimSpace(*r.Password)
		if pwd != "" && len(pwd) < 6 {
			errors["password"] = "password must be at least 6 characters"
		}
	}
	if r.Role != nil && !r.Role.IsValid() {
		errors["role"] = "role must be admin, staff, operator, or viewer"
	}

	return errors
}

func (r *UpdateRoleRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if !r.Role.IsValid() {
		errors["role"] = "role must be admin, staff, operator, or viewer"
	}
	return errors
}

func NewAdminUserResponse(user models.User) AdminUserResponse {
	return AdminUserResponse{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Role:        user.Role,
		Department:  user.Department,
		Position:    user.Position,
		VillageCode: user.VillageCode,
		VillageName: user.VillageName,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   user.UpdatedAt.Format(time.RFC3339),
	}
}
