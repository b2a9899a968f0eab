package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/config"
	"github.com/koncoweb/surat-mandiri-desa/dto"
	letterdto "github.com/koncoweb/surat-mandiri-desa/dto/letters"
	"github.com/koncoweb/surat-mandiri-desa/middleware"
	"github.com/koncoweb/surat-mandiri-desa/models"
	"github.com/koncoweb/surat-mandiri-desa/services"
	"github.com/koncoweb/surat-mandiri-desa/utils"
	"github.com/koncoweb/surat-mandiri-desa/utils/events"
	"github.com/koncoweb/surat-mandiri-desa/utils/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// addPresignedURLs mengisi URL sementara untuk lampiran dan tanda tangan.
// Gagal presign tidak menggagalkan response, hanya URL-nya kosong.
func addPresignedURLs(resp *letterdto.LetterResponse) {
	for i := range resp.Attachments {
		if resp.Attachments[i].FileKey == "" {
			continue
		}
		url, err := storage.GetPresignedURL(resp.Attachments[i].FileKey)
		if err != nil {
			log.Printf("failed to presign attachment %s: %v", resp.Attachments[i].FileKey, err)
			continue
		}
		resp.Attachments[i].URL = url
	}

	if resp.SignatureKey != "" {
		if url, err := storage.GetPresignedURL(resp.SignatureKey); err == nil {
			resp.SignatureURL = url
		}
	}
}

// POST /api/letters
func CreateLetter(c *fiber.Ctx) error {
	var req letterdto.CreateLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "authorization context missing", nil)
	}

	// Kode desa diambil dari user pembuat; fallback "DESA" jika kosong.
	var creator models.User
	if err := config.DB.First(&creator, claims.UserID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve creator", err.Error())
	}
	villageCode := creator.VillageCode
	if villageCode == "" {
		villageCode = utils.DefaultVillageCode
	}

	now := time.Now()
	letter := req.ToModel()
	letter.CreatedByID = claims.UserID
	letter.Year = now.Year()
	letter.Month = int(now.Month())

	// Penomoran dan insert satu transaksi: FOR UPDATE menahan pembuat surat
	// lain sampai commit, nomor tidak mungkin kembar.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		seq, err := utils.NextLetterSequence(tx, now.Year())
		if err != nil {
			return err
		}

		letter.Number = seq
		letter.LetterNumber = utils.FormatLetterNumber(seq, letter.Type, villageCode, now)

		return tx.Create(&letter).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create letter", err.Error())
	}

	events.Publish(events.LetterEvent{
		Type:   events.LetterCreated,
		Letter: letter,
	})

	response := letterdto.NewLetterResponse(&letter)
	return utils.SuccessResponse(c, fiber.StatusCreated, "letter created successfully", response)
}

// GET /api/letters?status=&type=&q=&sort=&page=&limit=
func ListLetters(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	opts := services.LetterListOptions{
		Status: models.LetterStatus(c.Query("status")),
		Type:   models.LetterType(c.Query("type")),
		Search: c.Query("q"),
		Sort:   c.Query("sort", services.SortNewest),
	}
	if opts.Status != "" && !opts.Status.IsValid() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid status filter", nil)
	}
	if opts.Type != "" && !opts.Type.IsValid() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid type filter", nil)
	}
	if !opts.ValidSort() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "sort must be newest, oldest, or alphabetical", nil)
	}

	tx := services.ApplyLetterFilters(config.DB, opts)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count letters", err.Error())
	}

	var letters []models.Letter
	if err := tx.Preload("Attachments").Limit(limit).Offset(offset).Find(&letters).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letters", err.Error())
	}

	responses := make([]letterdto.LetterResponse, 0, len(letters))
	for i := range letters {
		resp := letterdto.NewLetterResponse(&letters[i])
		addPresignedURLs(&resp)
		responses = append(responses, resp)
	}

	meta := utils.PaginationMeta{Page: page, Limit: limit, Total: total}
	return utils.PaginatedResponse(c, fiber.StatusOK, "letters retrieved successfully", responses, meta)
}

// GET /api/letters/stats
// Ringkasan jumlah surat per status untuk dashboard.
func GetLetterStats(c *fiber.Ctx) error {
	counts, err := services.LetterStatusCounts(config.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count letters", err.Error())
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "letter stats retrieved", fiber.Map{
		"total":     total,
		"by_status": counts,
	})
}

// GET /api/letters/:id
func GetLetterByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var letter models.Letter
	err := config.DB.
		Preload("CreatedBy").
		Preload("ApprovedBy").
		Preload("Attachments").
		First(&letter, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "letter not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter", err.Error())
	}

	resp := letterdto.NewLetterResponse(&letter)
	addPresignedURLs(&resp)
	return utils.SuccessResponse(c, fiber.StatusOK, "letter retrieved successfully", resp)
}

// GET /api/letters/:id/document
// Payload tampilan cetak: surat + kop desa + riwayat status.
func GetLetterDocument(c *fiber.Ctx) error {
	id := c.Params("id")

	var letter models.Letter
	err := config.DB.
		Preload("CreatedBy").
		Preload("ApprovedBy").
		Preload("Attachments").
		First(&letter, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "letter not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter", err.Error())
	}

	// Surat tanpa nomor atau perihal tidak bisa dicetak.
	if !letter.IsComplete() {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "data surat tidak lengkap untuk dicetak", nil)
	}

	village, err := loadOrCreateVillageSettings()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve village settings", err.Error())
	}

	resp := letterdto.NewLetterResponse(&letter)
	addPresignedURLs(&resp)

	villageResp := dto.NewVillageSettingsResponse(village)
	addVillageLogoURLs(&villageResp)

	doc := letterdto.DocumentResponse{
		Letter:  resp,
		Village: villageResp,
		History: letterdto.History(&letter),
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "letter document retrieved", doc)
}

// PUT /api/letters/:id
func UpdateLetter(c *fiber.Ctx) error {
	id := c.Params("id")

	var letter models.Letter
	if err := config.DB.First(&letter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "letter not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter", err.Error())
	}

	var req letterdto.UpdateLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	if !services.CanEditLetter(user, &letter) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "surat hanya bisa diubah pembuatnya selama masih draft", nil)
	}

	letterdto.ApplyUpdate(&letter, &req)

	if err := config.DB.Save(&letter).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update letter", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "letter updated successfully", letterdto.NewLetterResponse(&letter))
}

// DELETE /api/letters/:id
func DeleteLetter(c *fiber.Ctx) error {
	id := c.Params("id")

	var letter models.Letter
	if err := config.DB.Preload("Attachments").First(&letter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "letter not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter for deletion", err.Error())
	}

	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	if !services.CanDeleteLetter(user, &letter) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "dilarang menghapus surat ini", nil)
	}

	result := config.DB.Select("Attachments").Delete(&letter)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete letter", result.Error.Error())
	}

	for _, att := range letter.Attachments {
		go func(key string) {
			if err := storage.DeleteFile(context.Background(), key); err != nil {
				log.Printf("failed to delete S3 object %s during letter deletion: %v", key, err)
			}
		}(att.FileKey)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "letter deleted successfully", nil)
}
