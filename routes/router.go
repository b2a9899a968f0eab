package routes

import (
	"github.com/koncoweb/surat-mandiri-desa/handlers"
	"github.com/koncoweb/surat-mandiri-desa/middleware"
	"github.com/koncoweb/surat-mandiri-desa/services"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App) {
	api := app.Group("/api")

	// Auth (publik)
	api.Post("/auth/register", handlers.Register)
	api.Post("/auth/login", handlers.Login)
	api.Post("/auth/refresh", handlers.RefreshToken)
	api.Post("/auth/forgot-password", handlers.RequestPasswordReset)
	api.Post("/auth/reset-password", handlers.ResetPassword)

	// Semua route di bawah butuh token akses.
	auth := api.Group("", middleware.RequireAuth())

	auth.Post("/auth/logout", handlers.Logout)
	auth.Get("/auth/me", handlers.Me)

	// Profil sendiri
	auth.Put("/profile", handlers.UpdateMyProfile)
	auth.Put("/profile/password", handlers.ChangeMyPassword)

	// Surat
	auth.Get("/letters", middleware.RequireCapability(services.CapLettersView), handlers.ListLetters)
	auth.Post("/letters", middleware.RequireCapability(services.CapLettersCreate), handlers.CreateLetter)
	// Didaftarkan sebelum /letters/:id agar tidak tertangkap parameter id.
	auth.Get("/letters/stats", middleware.RequireCapability(services.CapLettersView), handlers.GetLetterStats)
	auth.Get("/letters/:id", middleware.RequireCapability(services.CapLettersView), handlers.GetLetterByID)
	auth.Get("/letters/:id/document", middleware.RequireCapability(services.CapLettersView), handlers.GetLetterDocument)
	auth.Put("/letters/:id", middleware.RequireCapability(services.CapLettersCreate), handlers.UpdateLetter)
	auth.Delete("/letters/:id", middleware.RequireCapability(services.CapLettersCreate), handlers.DeleteLetter)

	// Workflow surat. Submit cukup capability create, pembuatnya dicek di
	// service. Aksi lain punya capability sendiri.
	auth.Post("/letters/:id/submit", middleware.RequireCapability(services.CapLettersCreate), handlers.SubmitLetter)
	auth.Post("/letters/:id/approve", middleware.RequireCapability(services.CapLettersApprove), handlers.ApproveLetter)
	auth.Post("/letters/:id/reject", middleware.RequireCapability(services.CapLettersApprove), handlers.RejectLetter)
	auth.Post("/letters/:id/send", middleware.RequireCapability(services.CapLettersSend), handlers.SendLetter)
	auth.Post("/letters/:id/archive", middleware.RequireCapability(services.CapLettersArchive), handlers.ArchiveLetter)

	// File upload
	auth.Post("/files", middleware.RequireCapability(services.CapLettersCreate), handlers.UploadAttachment)

	// Pengaturan desa
	auth.Get("/village", handlers.GetVillageSettings)
	auth.Put("/village", middleware.RequireCapability(services.CapVillageManage), handlers.UpdateVillageSettings)
	auth.Post("/village/logo", middleware.RequireCapability(services.CapVillageManage), handlers.UploadVillageImage)

	// Manajemen user. Listing terbuka untuk semua user login (dipakai memilih
	// penerima surat), mutasi khusus admin.
	auth.Get("/users", handlers.ListUsers)
	admin := auth.Group("/users", middleware.RequireAdmin())
	admin.Post("", handlers.AdminCreateUser)
	admin.Get("/:id", handlers.AdminGetUser)
	admin.Put("/:id", handlers.AdminUpdateUser)
	admin.Put("/:id/role", handlers.AdminUpdateUserRole)
	admin.Delete("/:id", handlers.AdminDeleteUser)
}
