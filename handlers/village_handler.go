package handlers

import (
	"errors"

	"github.com/koncoweb/surat-mandiri-desa/config"
	"github.com/koncoweb/surat-mandiri-desa/dto"
	"github.com/koncoweb/surat-mandiri-desa/models"
	"github.com/koncoweb/surat-mandiri-desa/utils"
	"github.com/koncoweb/surat-mandiri-desa/utils/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadOrCreateVillageSettings mengembalikan baris tunggal pengaturan desa.
// Jika belum ada, baris default dibuat dulu supaya GET tidak pernah 404.
func loadOrCreateVillageSettings() (models.VillageSettings, error) {
	var settings models.VillageSettings
	err := config.DB.First(&settings, models.VillageSettingsID).Error
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return settings, err
	}

	settings = models.DefaultVillageSettings()
	if err := config.DB.Create(&settings).Error; err != nil {
		return settings, err
	}
	return settings, nil
}

func addVillageLogoURLs(resp *dto.VillageSettingsResponse) {
	if resp.VillageLogoKey != "" {
		if url, err := storage.GetPresignedURL(resp.VillageLogoKey); err == nil {
			resp.VillageLogoURL = url
		}
	}
	if resp.RegencyLogoKey != "" {
		if url, err := storage.GetPresignedURL(resp.RegencyLogoKey); err == nil {
			resp.RegencyLogoURL = url
		}
	}
	if resp.HeadSignatureKey != "" {
		if url, err := storage.GetPresignedURL(resp.HeadSignatureKey); err == nil {
			resp.HeadSignatureURL = url
		}
	}
}

// GET /api/village
func GetVillageSettings(c *fiber.Ctx) error {
	settings, err := loadOrCreateVillageSettings()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve village settings", err.Error())
	}

	resp := dto.NewVillageSettingsResponse(settings)
	addVillageLogoURLs(&resp)
	return utils.SuccessResponse(c, fiber.StatusOK, "village settings retrieved", resp)
}

// PUT /api/village
// Simpan seluruh dokumen sekaligus, bukan partial update.
func UpdateVillageSettings(c *fiber.Ctx) error {
	var req dto.VillageSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	settings := req.ToModel()
	if err := config.DB.Save(&settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to save village settings", err.Error())
	}

	resp := dto.NewVillageSettingsResponse(settings)
	addVillageLogoURLs(&resp)
	return utils.SuccessResponse(c, fiber.StatusOK, "pengaturan desa berhasil disimpan", resp)
}
