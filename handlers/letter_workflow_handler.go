package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/koncoweb/surat-mandiri-desa/config"
	letterdto "github.com/koncoweb/surat-mandiri-desa/dto/letters"
	"github.com/koncoweb/surat-mandiri-desa/middleware"
	"github.com/koncoweb/surat-mandiri-desa/models"
	"github.com/koncoweb/surat-mandiri-desa/services"
	"github.com/koncoweb/surat-mandiri-desa/utils"
	"github.com/koncoweb/surat-mandiri-desa/utils/events"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// applyWorkflowAction menjalankan satu aksi workflow pada surat dan menyimpan
// hasilnya. Semua endpoint aksi (submit/approve/reject/send/archive) lewat
// sini, hanya beda nama aksinya.
func applyWorkflowAction(c *fiber.Ctx, action services.Action) error {
	id := c.Params("id")

	var letter models.Letter
	if err := config.DB.First(&letter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "letter not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter", err.Error())
	}

	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var req letterdto.WorkflowRequest
	// Body opsional, aksi tanpa catatan tetap jalan.
	_ = c.BodyParser(&req)

	oldStatus := letter.Status

	if err := services.ApplyAction(user, &letter, action, time.Now()); err != nil {
		switch {
		case errors.Is(err, services.ErrActionNotPermitted):
			return utils.ErrorResponse(c, fiber.StatusForbidden, "anda tidak berwenang melakukan aksi ini", nil)
		case errors.Is(err, services.ErrInvalidTransition):
			return utils.ErrorResponse(c, fiber.StatusConflict,
				"status surat tidak memungkinkan aksi "+string(action), nil)
		case errors.Is(err, services.ErrUnknownAction):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "unknown workflow action", nil)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to apply action", err.Error())
		}
	}

	if notes := strings.TrimSpace(req.Notes); notes != "" {
		letter.Notes = notes
	}

	if err := config.DB.Save(&letter).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to save letter", err.Error())
	}

	events.Publish(events.LetterEvent{
		Type:      events.LetterStatusMoved,
		Letter:    letter,
		OldStatus: oldStatus,
	})

	return utils.SuccessResponse(c, fiber.StatusOK,
		"status surat diperbarui menjadi "+string(letter.Status),
		letterdto.NewLetterResponse(&letter))
}

// POST /api/letters/:id/submit
func SubmitLetter(c *fiber.Ctx) error {
	return applyWorkflowAction(c, services.ActionSubmit)
}

// POST /api/letters/:id/approve
func ApproveLetter(c *fiber.Ctx) error {
	return applyWorkflowAction(c, services.ActionApprove)
}

// POST /api/letters/:id/reject
func RejectLetter(c *fiber.Ctx) error {
	return applyWorkflowAction(c, services.ActionReject)
}

// POST /api/letters/:id/send
func SendLetter(c *fiber.Ctx) error {
	return applyWorkflowAction(c, services.ActionSend)
}

// POST /api/letters/:id/archive
func ArchiveLetter(c *fiber.Ctx) error {
	return applyWorkflowAction(c, services.ActionArchive)
}
