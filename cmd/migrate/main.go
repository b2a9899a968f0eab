package main

import (
	"errors"
	"log"

	"github.com/koncoweb/surat-mandiri-desa/config"
	"github.com/koncoweb/surat-mandiri-desa/models"

	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()
	db := config.ConnectDB()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Letter{},
		&models.Attachment{},
		&models.VillageSettings{},
		&models.RefreshToken{},
		&models.PasswordResetToken{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// Baris pengaturan desa dibuat sekali dengan nilai default.
	var settings models.VillageSettings
	err := db.First(&settings, models.VillageSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultVillageSettings()
		if err := db.Create(&settings).Error; err != nil {
			log.Fatalf("failed to seed village settings: %v", err)
		}
		log.Println("seeded default village settings")
	} else if err != nil {
		log.Fatalf("failed to check village settings: %v", err)
	}

	log.Println("✅ Migration completed")
}
