package service

import (
	"context"

	"scribcraft/internal/config"
	"scribcraft/internal/generation"
	"scribcraft/internal/repository"
)

type Service struct {
	User    UserService
	Scrib   ScribService
	Auth    AuthService
	Comment CommentService
}

// ImageRelocator copies one provider-hosted image to durable storage,
// satisfied by storage.Relocator
type ImageRelocator interface {
	Relocate(ctx context.Context, imageURL, scribID string, index int) (string, error)
}

func NewService(rep *repository.Repository, cfg *config.Config, generator generation.Generator, relocator ImageRelocator) *Service {
	return &Service{
		User:    NewUserService(rep.User, rep.Scrib, rep.Image, cfg),
		Scrib:   NewScribService(rep.Scrib, rep.Image, rep.User, generator, relocator),
		Auth:    NewAuthService(rep.User, cfg),
		Comment: NewCommentService(rep.Comment, rep.Scrib),
	}
}
