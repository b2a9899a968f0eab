package dto

import (
	"strings"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/models"
)

// VillageSettingsRequest adalah full-document write: seluruh profil desa
// dikirim sekaligus saat simpan, bukan partial update.
type VillageSettingsRequest struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	Address    string `json:"address"`
	District   string `json:"district"`
	Regency    string `json:"regency"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Website    string `json:"website"`

	VillageLogoKey string `json:"village_logo_key"`
	RegencyLogoKey string `json:"regency_logo_key"`

	HeadName         string `json:"head_name"`
	HeadPosition     string `json:"head_position"`
	HeadSignatureKey string `json:"head_signature_key"`

	Letterhead string `json:"letterhead"`
	Footer     string `json:"footer"`
}

func (r *VillageSettingsRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "nama desa harus diisi"
	}
	if strings.TrimSpace(r.Code) == "" {
		errors["code"] = "kode desa harus diisi"
	}
	if strings.TrimSpace(r.HeadName) == "" {
		errors["head_name"] = "nama kepala desa harus diisi"
	}

	return errors
}

func (r *VillageSettingsRequest) ToModel() models.VillageSettings {
	return models.VillageSettings{
		ID:               models.VillageSettingsID,
		Name:             strings.TrimSpace(r.Name),
		Code:             strings.TrimSpace(r.Code),
		Address:          strings.TrimSpace(r.Address),
		District:         strings.TrimSpace(r.District),
		Regency:          strings.TrimSpace(r.Regency),
		Province:         strings.TrimSpace(r.Province),
		PostalCode:       strings.TrimSpace(r.PostalCode),
		Phone:            strings.TrimSpace(r.Phone),
		Email:            strings.TrimSpace(r.Email),
		Website:          strings.TrimSpace(r.Website),
		VillageLogoKey:   strings.TrimSpace(r.VillageLogoKey),
		RegencyLogoKey:   strings.TrimSpace(r.RegencyLogoKey),
		HeadName:         strings.TrimSpace(r.HeadName),
		HeadPosition:     strings.TrimSpace(r.HeadPosition),
		HeadSignatureKey: strings.TrimSpace(r.HeadSignatureKey),
		Letterhead:       r.Letterhead,
		Footer:           r.Footer,
	}
}

type VillageSettingsResponse struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	Address    string `json:"address"`
	District   string `json:"district"`
	Regency    string `json:"regency"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Website    string `json:"website,omitempty"`

	VillageLogoKey string `json:"village_logo_key,omitempty"`
	VillageLogoURL string `json:"village_logo_url,omitempty"`
	RegencyLogoKey string `json:"regency_logo_key,omitempty"`
	RegencyLogoURL string `json:"regency_logo_url,omitempty"`

	HeadName         string `json:"head_name"`
	HeadPosition     string `json:"head_position"`
	HeadSignatureKey string `json:"head_signature_key,omitempty"`
	HeadSignatureURL string `json:"head_signature_url,omitempty"`

	Letterhead string    `json:"letterhead,omitempty"`
	Footer     string    `json:"footer,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewVillageSettingsResponse(v models.VillageSettings) VillageSettingsResponse {
	return VillageSettingsResponse{
		Name:             v.Name,
		Code:             v.Code,
		Address:          v.Address,
		District:         v.District,
		Regency:          v.Regency,
		Province:         v.Province,
		PostalCode:       v.PostalCode,
		Phone:            v.Phone,
		Email:            v.Email,
		Website:          v.Website,
		VillageLogoKey:   v.VillageLogoKey,
		RegencyLogoKey:   v.RegencyLogoKey,
		HeadName:         v.HeadName,
		HeadPosition:     v.HeadPosition,
		HeadSignatureKey: v.HeadSignatureKey,
		Letterhead:       v.Letterhead,
		Footer:           v.Footer,
		UpdatedAt:        v.UpdatedAt,
	}
}
