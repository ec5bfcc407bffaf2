package service

import (
	"chirp/internal/config"
	"chirp/internal/mailer"
	"chirp/internal/repository"
	"chirp/internal/storage"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Post   PostService
	Feed   FeedService
	Tables TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, mail mailer.Mailer) *Service {
	return &Service{
		Auth:   NewAuthService(rep.User, rep.Token, mail, cfg),
		User:   NewUserService(rep.User, rep.Relationship, storage),
		Post:   NewPostService(rep.Post, rep.Reply, rep.Relationship),
		Feed:   NewFeedService(rep.Feed, rep.Relationship, cfg),
		Tables: NewTablesService(rep.Tables),
	}
}
