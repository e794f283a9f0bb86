package service

import (
	"context"

	"scribcraft/internal/config"
	"scribcraft/internal/models"
	"scribcraft/internal/repository"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, req repository.UpdateUserRequest) error
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo  repository.UserRepository
	scribRepo repository.ScribRepository
	imageRepo repository.ImageRepository
	cfg       *config.Config
}

func NewUserService(userRepo repository.UserRepository, scribRepo repository.ScribRepository,
	imageRepo repository.ImageRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo:  userRepo,
		scribRepo: scribRepo,
		imageRepo: imageRepo,
		cfg:       cfg,
	}
}

// GetProfile loads the user together with its scribs and their images, so
// the serialized profile carries the nested scribs
func (s *userService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	scribs, err := s.scribRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range scribs {
		images, err := s.imageRepo.GetByScribID(ctx, scribs[i].ScribID)
		if err != nil {
			return nil, err
		}
		scribs[i].Images = images
	}

	user.Scribs = scribs
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, req repository.UpdateUserRequest) error {
	// get user by id
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	user.AvatarURL = req.AvatarURL
	user.AboutMe = req.AboutMe

	// update user
	err = s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return err
	}

	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	err := s.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}

	return nil
}
