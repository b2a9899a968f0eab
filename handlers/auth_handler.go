package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/config"
	"github.com/koncoweb/surat-mandiri-desa/dto"
	"github.com/koncoweb/surat-mandiri-desa/middleware"
	"github.com/koncoweb/surat-mandiri-desa/models"
	"github.com/koncoweb/surat-mandiri-desa/services"
	"github.com/koncoweb/surat-mandiri-desa/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /api/auth/register
func Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	// Validasi lokal dulu, tidak ada tulisan ke database sebelum lolos.
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to hash password", nil)
	}

	user := models.User{
		Username:     strings.TrimSpace(req.Username),
		DisplayName:  strings.TrimSpace(req.DisplayName),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		Role:         models.DefaultRole,
		Department:   strings.TrimSpace(req.Department),
		Position:     strings.TrimSpace(req.Position),
		VillageCode:  strings.TrimSpace(req.VillageCode),
		VillageName:  strings.TrimSpace(req.VillageName),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "email atau username sudah terdaftar", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create user", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "registrasi berhasil", dto.NewUserSummary(user))
}

// POST /api/auth/login
func Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var user models.User
	if err := config.DB.Where("email = ?", strings.TrimSpace(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "email atau password salah", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", err.Error())
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "email atau password salah", nil)
	}

	accessToken, accessClaims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate token", err.Error())
	}

	refreshToken, refreshClaims, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate refresh token", err.Error())
	}

	stored := models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: refreshClaims.ExpiresAt.Time,
	}
	if err := config.DB.Create(&stored).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to store refresh token", err.Error())
	}

	resp := dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    accessClaims.ExpiresAt.Time,
		User:         dto.NewUserSummary(user),
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "login berhasil", resp)
}

// POST /api/auth/refresh
func RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	claims, err := utils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid or expired refresh token", nil)
	}

	var stored models.RefreshToken
	if err := config.DB.Where("token = ? AND expires_at > ?", req.RefreshToken, time.Now()).First(&stored).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "refresh token revoked or expired", nil)
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "user not found", nil)
	}

	accessToken, accessClaims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate token", err.Error())
	}

	resp := dto.RefreshTokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   accessClaims.ExpiresAt.Time,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "token refreshed", resp)
}

// POST /api/auth/logout
func Logout(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	if req.RefreshToken != "" {
		config.DB.Where("token = ? AND user_id = ?", req.RefreshToken, claims.UserID).
			Delete(&models.RefreshToken{})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "logout berhasil", nil)
}

// GET /api/auth/me
func Me(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
	}

	resp := dto.MeResponse{
		User:         dto.NewUserSummary(user),
		Capabilities: services.CapabilitiesFor(user.Role),
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "profile retrieved", resp)
}
