package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/middleware"
	"github.com/koncoweb/surat-mandiri-desa/utils"
	"github.com/koncoweb/surat-mandiri-desa/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".doc":  true,
	".docx": true,
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// POST /api/files
// Upload lampiran surat, kembalikan key + URL sementara.
func UploadAttachment(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "file harus disertakan di form-data", nil)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadExts[ext] {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"hanya file PDF, gambar, dan dokumen Word yang diperbolehkan", nil)
	}

	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	key := fmt.Sprintf("surat/%d-%s%s", claims.UserID, uuid.NewString(), ext)

	if _, err := storage.UploadFile(c.Context(), fileHeader, key); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "gagal mengupload ke storage", err.Error())
	}

	url, err := storage.GetPresignedURL(key)
	if err != nil {
		// Upload sudah sukses, URL bisa diminta ulang nanti.
		url = ""
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "file uploaded successfully", fiber.Map{
		"file_key":     key,
		"url":          url,
		"name":         fileHeader.Filename,
		"content_type": fileHeader.Header.Get("Content-Type"),
		"size":         fileHeader.Size,
	})
}

// POST /api/village/logo?type=village|regency|signature
// Upload gambar untuk kop surat desa.
func UploadVillageImage(c *fiber.Ctx) error {
	imageType := c.Query("type", "village")
	switch imageType {
	case "village", "regency", "signature":
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			"type harus village, regency, atau signature", nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "file harus disertakan di form-data", nil)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "hanya file gambar yang diperbolehkan", nil)
	}

	key := fmt.Sprintf("logo/%s-%d%s", imageType, time.Now().Unix(), ext)

	if _, err := storage.UploadFile(c.Context(), fileHeader, key); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "gagal mengupload ke storage", err.Error())
	}

	url, err := storage.GetPresignedURL(key)
	if err != nil {
		url = ""
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "image uploaded successfully", fiber.Map{
		"file_key": key,
		"url":      url,
		"type":     imageType,
	})
}
