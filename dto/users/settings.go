package users

import "strings"

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Department  string `json:"department"`
	Position    string `json:"position"`
	VillageCode string `json:"village_code"`
	VillageName string `json:"village_name"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *ChangePasswordRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.OldPassword) == "" {
		errors["old_password"] = "password lama harus diisi"
	}
	if r.NewPassword == "" {
		errors["new_password"] = "password baru harus diisi"
	} else if len(r.NewPassword) < 6 {
		errors["new_password"] = "password baru harus minimal 6 karakter"
	}
	if r.ConfirmPassword != r.NewPassword {
		errors["confirm_password"] = "konfirmasi password tidak sama"
	}
	return errors
}
