package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/koncoweb/surat-mandiri-desa/config"
	userdto "github.com/koncoweb/surat-mandiri-desa/dto/users"
	"github.com/koncoweb/surat-mandiri-desa/middleware"
	"github.com/koncoweb/surat-mandiri-desa/models"
	"github.com/koncoweb/surat-mandiri-desa/services"
	"github.com/koncoweb/surat-mandiri-desa/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /api/users?role=&q=&page=&limit=
// Dipakai admin untuk kelola akun dan staf untuk memilih penerima surat.
func ListUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	tx := config.DB.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		if !models.Role(role).IsValid() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid role filter", nil)
		}
		tx = tx.Where("role = ?", role)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		tx = tx.Where(
			config.DB.Where("username LIKE ?", like).
				Or("display_name LIKE ?", like).
				Or("email LIKE ?", like),
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count users", err.Error())
	}

	var users []models.User
	if err := tx.Order("display_name ASC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve users", err.Error())
	}

	responses := make([]userdto.AdminUserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userdto.NewAdminUserResponse(user))
	}

	meta := utils.PaginationMeta{Page: page, Limit: limit, Total: total}
	return utils.PaginatedResponse(c, fiber.StatusOK, "users retrieved successfully", responses, meta)
}

// POST /api/users
func AdminCreateUser(c *fiber.Ctx) error {
	var req userdto.AdminUserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

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
		Role:         req.Role,
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

	return utils.SuccessResponse(c, fiber.StatusCreated, "user created successfully", userdto.NewAdminUserResponse(user))
}

// GET /api/users/:id
func AdminGetUser(c *fiber.Ctx) error {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "user retrieved successfully", userdto.NewAdminUserResponse(user))
}

// PUT /api/users/:id
func AdminUpdateUser(c *fiber.Ctx) error {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", err.Error())
	}

	var req userdto.AdminUserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to hash password", nil)
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		claims, ok := middleware.GetJWTClaims(c)
		if ok && !services.CanAssignRole(claims.UserID, &user, *req.Role) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "tidak bisa mengubah role akun sendiri", nil)
		}
		user.Role = *req.Role
	}
	if req.Department != nil {
		user.Department = strings.TrimSpace(*req.Department)
	}
	if req.Position != nil {
		user.Position = strings.TrimSpace(*req.Position)
	}
	if req.VillageCode != nil {
		user.VillageCode = strings.TrimSpace(*req.VillageCode)
	}
	if req.VillageName != nil {
		user.VillageName = strings.TrimSpace(*req.VillageName)
	}

	if err := config.DB.Save(&user).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "email atau username sudah terdaftar", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update user", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "user updated successfully", userdto.NewAdminUserResponse(user))
}

// PUT /api/users/:id/role
func AdminUpdateUserRole(c *fiber.Ctx) error {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", err.Error())
	}

	var req userdto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	// Admin tidak bisa menurunkan rolenya sendiri, mencegah sistem tanpa admin.
	claims, ok := middleware.GetJWTClaims(c)
	if ok && !services.CanAssignRole(claims.UserID, &user, req.Role) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "tidak bisa mengubah role akun sendiri", nil)
	}

	user.Role = req.Role
	if err := config.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update role", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "role updated successfully", userdto.NewAdminUserResponse(user))
}

// DELETE /api/users/:id
func AdminDeleteUser(c *fiber.Ctx) error {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", err.Error())
	}

	claims, ok := middleware.GetJWTClaims(c)
	if ok && claims.UserID == user.ID {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "tidak bisa menghapus akun sendiri", nil)
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete user", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "user deleted successfully", nil)
}
