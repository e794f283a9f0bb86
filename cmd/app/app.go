package app

import (
	"log"

	"scribcraft/internal/config"
	"scribcraft/internal/database"
	"scribcraft/internal/generation"
	"scribcraft/internal/repository"
	"scribcraft/internal/service"
	"scribcraft/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// generation provider client
	generator := generation.NewClient(cfg.OpenAI)

	relocator := storage.NewRelocator(minioClient)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, generator, relocator)

	return db, repo, services
}
