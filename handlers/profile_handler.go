package handlers

import (
	"strings"

	"github.com/koncoweb/surat-mandiri-desa/config"
	"github.com/koncoweb/surat-mandiri-desa/dto"
	userdto "github.com/koncoweb/surat-mandiri-desa/dto/users"
	"github.com/koncoweb/surat-mandiri-desa/middleware"
	"github.com/koncoweb/surat-mandiri-desa/models"
	"github.com/koncoweb/surat-mandiri-desa/utils"

	"github.com/gofiber/fiber/v2"
)

// PUT /api/profile
func UpdateMyProfile(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
	}

	var req userdto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if v := strings.TrimSpace(req.DisplayName); v != "" {
		user.DisplayName = v
	}
	if v := strings.TrimSpace(req.Department); v != "" {
		user.Department = v
	}
	if v := strings.TrimSpace(req.Position); v != "" {
		user.Position = v
	}
	if v := strings.TrimSpace(req.VillageCode); v != "" {
		user.VillageCode = v
	}
	if v := strings.TrimSpace(req.VillageName); v != "" {
		user.VillageName = v
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update profile", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "profil berhasil diperbarui", dto.NewUserSummary(user))
}

// PUT /api/profile/password
func ChangeMyPassword(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var req userdto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
	}

	if !utils.CheckPassword(user.PasswordHash, req.OldPassword) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "password lama salah", nil)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to hash password", nil)
	}

	user.PasswordHash = hash
	if err := config.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to change password", err.Error())
	}

	// Sesi lain dicabut, token akses yang masih hidup tetap berlaku sampai
	// kedaluwarsa.
	config.DB.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{})

	return utils.SuccessResponse(c, fiber.StatusOK, "password berhasil diubah", nil)
}
