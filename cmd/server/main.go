package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/securebank/internal/config"
	"github.com/example/securebank/internal/database"
	"github.com/example/securebank/internal/routes"
	"github.com/example/securebank/internal/storage"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	docs, err := newDocumentStore(cfg)
	if err != nil {
		log.Fatalf("document store init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "SecureBank Insurance Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	routes.Register(app, db, cfg, docs)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}

func newDocumentStore(cfg *config.Config) (storage.DocumentStore, error) {
	if cfg.StorageDriver == "s3" {
		log.Printf("[Storage] Using S3 bucket %s", cfg.S3Bucket)
		return storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3Region)
	}
	log.Printf("[Storage] Using local directory %s", cfg.UploadDir)
	return storage.NewLocalStore(cfg.UploadDir)
}
