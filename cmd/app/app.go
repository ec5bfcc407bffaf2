package app

import (
	"log"
	"chirp/internal/config"
	"chirp/internal/database"
	"chirp/internal/mailer"
	"chirp/internal/repository"
	"chirp/internal/service"
	"chirp/internal/session"
	"chirp/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *session.RedisStore, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection Redis (session store)
	sessions, err := session.NewRedisStore(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать хранилище сессий: %v", err)
	}

	// connection MinIO (avatars)
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	mail := mailer.NewSMTPMailer(cfg)

	services := service.NewService(repo, cfg, minioClient, mail)

	return db, sessions, services
}
