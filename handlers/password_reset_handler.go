package handlers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/mail"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/config"
	"github.com/koncoweb/surat-mandiri-desa/dto"
	"github.com/koncoweb/surat-mandiri-desa/models"
	"github.com/koncoweb/surat-mandiri-desa/utils"
	"github.com/koncoweb/surat-mandiri-desa/utils/mailer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /api/auth/forgot-password
func RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid JSON body", nil)
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "email harus diisi", nil)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "format email tidak valid", nil)
	}

	// Selalu balas sama agar tidak membocorkan email mana yang terdaftar.
	const neutralMessage = "Jika email terdaftar, tautan reset sudah dikirim"

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SuccessResponse(c, fiber.StatusOK, neutralMessage, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to look up user", err.Error())
	}

	rawToken, tokenHash, err := generateResetToken()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate token", nil)
	}

	resetToken := models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(models.PasswordResetTokenTTL),
	}
	if err := config.DB.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to store token", err.Error())
	}

	resetLink := buildResetLink(rawToken)
	emailCfg := config.LoadEmailConfig()
	mailClient := mailer.NewClient(emailCfg)
	if err := mailClient.SendPasswordResetEmail(user.Email, resetLink); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to send email", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, neutralMessage, nil)
}

// POST /api/auth/reset-password
func ResetPassword(c *fiber.Ctx) error {
	var req dto.PasswordResetSubmission
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid JSON body", nil)
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	sum := sha256.Sum256([]byte(strings.TrimSpace(req.Token)))
	tokenHash := hex.EncodeToString(sum[:])

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var token models.PasswordResetToken
		if err := tx.Where("token_hash = ?", tokenHash).First(&token).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := token.Consume(tx, now); err != nil {
			return err
		}

		newHash, err := utils.HashPassword(req.Password)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", token.UserID).
			Update("password_hash", newHash).Error; err != nil {
			return err
		}

		// Semua sesi lama dicabut setelah password berganti.
		return tx.Where("user_id = ?", token.UserID).Delete(&models.RefreshToken{}).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound),
			errors.Is(err, models.ErrPasswordResetTokenUsed),
			errors.Is(err, models.ErrPasswordResetTokenExpired):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "token tidak valid atau sudah kedaluwarsa", nil)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to reset password", err.Error())
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "password berhasil diubah", nil)
}

func generateResetToken() (string, string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", err
	}
	raw := hex.EncodeToString(tokenBytes)
	sum := sha256.Sum256([]byte(raw))
	return raw, hex.EncodeToString(sum[:]), nil
}

func buildResetLink(token string) string {
	base := os.Getenv("PASSWORD_RESET_URL")
	if base == "" {
		base = "/auth/reset-password"
	}

	escapedToken := url.QueryEscape(token)
	if strings.Contains(base, "?") {
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			return base + "token=" + escapedToken
		}
		return base + "&token=" + escapedToken
	}
	return base + "?token=" + escapedToken
}
