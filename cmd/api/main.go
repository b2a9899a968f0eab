package main

import (
	"context"
	"log"
	"os"

	"github.com/koncoweb/surat-mandiri-desa/config"
	"github.com/koncoweb/surat-mandiri-desa/routes"
	"github.com/koncoweb/surat-mandiri-desa/utils/fcm"
	"github.com/koncoweb/surat-mandiri-desa/utils/storage"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadEnv()
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	config.ConnectDB()
	storage.InitS3Client()
	fcm.InitFCM()

	go fcm.StartNotifierConsumer(context.Background())

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})

	routes.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 API running on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
