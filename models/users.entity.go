package models

import "gorm.io/gorm"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// DefaultRole diberikan ke user baru saat registrasi.
const DefaultRole = RoleViewer

type User struct {
	gorm.Model
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	DisplayName  string `gorm:"type:varchar(150)"`
	Email        string `gorm:"type:varchar(191);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         Role   `gorm:"type:ENUM('admin','staff','operator','viewer');default:'viewer';not null;index"`
	Department   string `gorm:"type:varchar(150)"`
	Position     string `gorm:"type:varchar(150)"`
	VillageCode  string `gorm:"type:varchar(50)"`
	VillageName  string `gorm:"type:varchar(150)"`
}

func (User) TableName() string {
	return "users"
}

// --- Helper Methods ---

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleOperator, RoleViewer:
		return true
	default:
		return false
	}
}
