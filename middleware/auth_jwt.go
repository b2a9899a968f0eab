package middleware

import (
	"strings"

	"github.com/koncoweb/surat-mandiri-desa/models"
	"github.com/koncoweb/surat-mandiri-desa/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const ContextClaimsKey = "jwtClaims"

func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing Authorization header"})
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid Authorization header"})
		}

		tokenString := strings.TrimSpace(parts[1])
		claims, err := utils.VerifyAccessToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(ContextClaimsKey, claims)

		return c.Next()
	}
}

func GetJWTClaims(c *fiber.Ctx) (*utils.JWTClaims, bool) {
	claims, ok := c.Locals(ContextClaimsKey).(*utils.JWTClaims)
	return claims, ok
}

// GetUserFromContext membangun user ringan dari claims, cukup untuk cek
// permission tanpa query ke database.
func GetUserFromContext(c *fiber.Ctx) (*models.User, error) {
	claims, ok := GetJWTClaims(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	return &models.User{
		Model:    gorm.Model{ID: claims.UserID},
		Role:     claims.Role,
		Email:    claims.Email,
		Username: claims.Username,
	}, nil
}
