package handlers

import (
	"github.com/go-playground/validator/v10"
	"chirp/internal/config"
	"chirp/internal/service"
	"chirp/internal/session"
)

type Handlers struct {
	AuthService   service.AuthService
	UserService   service.UserService
	PostService   service.PostService
	FeedService   service.FeedService
	TablesService service.TablesService
	Sessions      session.Store
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(services *service.Service, sessions session.Store, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:   services.Auth,
		UserService:   services.User,
		PostService:   services.Post,
		FeedService:   services.Feed,
		TablesService: services.Tables,
		Sessions:      sessions,
		Cfg:           config,
		Validate:      validator.New(),
	}
}
