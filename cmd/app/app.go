package app

import (
	"log"
	"portfolioCPT/internal/config"
	"portfolioCPT/internal/database"
	"portfolioCPT/internal/mailer"
	"portfolioCPT/internal/repository"
	"portfolioCPT/internal/service"
	"portfolioCPT/internal/storage"
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

	mail := mailer.NewSMTPMailer(cfg.SMTP)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, mail)

	return db, repo, services
}
