package models

import "time"

// VillageSettingsID adalah primary key tetap: data desa adalah singleton,
// satu baris per deployment.
const VillageSettingsID uint = 1

type VillageSettings struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(150);not null"`
	Code       string `gorm:"type:varchar(50);not null"`
	Address    string `gorm:"type:varchar(255)"`
	District   string `gorm:"type:varchar(150)"`
	Regency    string `gorm:"type:varchar(150)"`
	Province   string `gorm:"type:varchar(150)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Phone      string `gorm:"type:varchar(50)"`
	Email      string `gorm:"type:varchar(191)"`
	Website    string `gorm:"type:varchar(191)"`

	VillageLogoKey string `gorm:"type:varchar(255)"`
	RegencyLogoKey string `gorm:"type:varchar(255)"`

	HeadName         string `gorm:"type:varchar(150)"`
	HeadPosition     string `gorm:"type:varchar(150)"`
	HeadSignatureKey string `gorm:"type:varchar(255)"`

	Letterhead string `gorm:"type:text"`
	Footer     string `gorm:"type:text"`

	UpdatedAt time.Time
}

func (VillageSettings) TableName() string {
	return "village_settings"
}

// DefaultVillageSettings dibuat otomatis saat belum ada data desa tersimpan.
func DefaultVillageSettings() VillageSettings {
	return VillageSettings{
		ID:           VillageSettingsID,
		Name:         "Desa Sukamaju",
		Code:         "DESA",
		Address:      "Jl. Raya Sukamaju No. 123",
		District:     "Telukjambe Timur",
		Regency:      "Karawang",
		Province:     "Jawa Barat",
		PostalCode:   "41361",
		Phone:        "(0267) 123456",
		Email:        "desa.sukamaju@gmail.com",
		Website:      "www.desasukamaju.desa.id",
		HeadName:     "H. Sumarna, S.Sos",
		HeadPosition: "Kepala Desa",
	}
}
