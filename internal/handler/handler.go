package handlers

import (
	"github.com/go-playground/validator/v10"

	"scribcraft/internal/config"
	"scribcraft/internal/repository"
	"scribcraft/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	UserService    service.UserService
	UserRepo       repository.UserRepository
	ScribService   service.ScribService
	ScribRepo      repository.ScribRepository
	CommentService service.CommentService
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		UserService:    service.User,
		UserRepo:       repo.User,
		ScribService:   service.Scrib,
		ScribRepo:      repo.Scrib,
		CommentService: service.Comment,
		Cfg:            config,
		Validate:       validator.New(),
	}
}
