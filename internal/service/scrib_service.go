package service

import (
	"context"
	"fmt"

	"scribcraft/internal/generation"
	"scribcraft/internal/models"
	"scribcraft/internal/repository"
)

type ScribService interface {
	CreateScrib(ctx context.Context, req repository.CreateScribRequest) (*models.Scrib, error)
	GetScrib(ctx context.Context, scribID string) (*models.Scrib, error)
	ListScribs(ctx context.Context) ([]models.Scrib, error)
	DeleteScrib(ctx context.Context, scribID, userID string) error
}

type scribService struct {
	scribRepo repository.ScribRepository
	imageRepo repository.ImageRepository
	userRepo  repository.UserRepository
	generator generation.Generator
	relocator ImageRelocator
}

func NewScribService(scribRepo repository.ScribRepository, imageRepo repository.ImageRepository,
	userRepo repository.UserRepository, generator generation.Generator, relocator ImageRelocator) ScribService {
	return &scribService{
		scribRepo: scribRepo,
		imageRepo: imageRepo,
		userRepo:  userRepo,
		generator: generator,
		relocator: relocator,
	}
}

// CreateScrib runs the whole creation pipeline for one prompt:
//
//  1. generate images and text concurrently via the provider
//  2. persist the scrib row (the id is needed to key the stored images)
//  3. relocate each provider image to durable storage, in order
//  4. persist the image rows together
//
// A provider error leaves nothing persisted. A relocation error aborts the
// remaining relocations and leaves the scrib row of step 2 in place without
// image rows; the caller sees the error
func (s *scribService) CreateScrib(ctx context.Context, req repository.CreateScribRequest) (*models.Scrib, error) {
	result, err := s.generator.GenerateScrib(ctx, req.Prompt)
	if err != nil {
		return nil, err
	}

	scrib := &models.Scrib{
		UserID:    req.UserID,
		Title:     req.Title,
		Prompt:    req.Prompt,
		ScribText: result.Text,
	}

	err = s.scribRepo.Create(ctx, scrib)
	if err != nil {
		return nil, err
	}

	durableURLs := make([]string, 0, len(result.ImageURLs))
	for i, imageURL := range result.ImageURLs {
		durableURL, err := s.relocator.Relocate(ctx, imageURL, scrib.ScribID, i+1)
		if err != nil {
			return nil, fmt.Errorf("ошибка переноса изображения %d: %w", i+1, err)
		}
		durableURLs = append(durableURLs, durableURL)
	}

	images, err := s.imageRepo.CreateBatch(ctx, scrib.ScribID, durableURLs)
	if err != nil {
		return nil, err
	}

	scrib.Images = images
	return scrib, nil
}

func (s *scribService) GetScrib(ctx context.Context, scribID string) (*models.Scrib, error) {
	scrib, err := s.scribRepo.GetByID(ctx, scribID)
	if err != nil {
		return nil, err
	}

	images, err := s.imageRepo.GetByScribID(ctx, scribID)
	if err != nil {
		return nil, err
	}
	scrib.Images = images

	author, err := s.userRepo.GetUserByID(ctx, scrib.UserID)
	if err != nil {
		return nil, err
	}
	scrib.Author = author

	return scrib, nil
}

func (s *scribService) ListScribs(ctx context.Context) ([]models.Scrib, error) {
	scribs, err := s.scribRepo.GetAll(ctx)
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

	return scribs, nil
}

func (s *scribService) DeleteScrib(ctx context.Context, scribID, userID string) error {
	scrib, err := s.scribRepo.GetByID(ctx, scribID)
	if err != nil {
		return err
	}

	if scrib.UserID != userID {
		return fmt.Errorf("удалять скриб может только его автор")
	}

	return s.scribRepo.Delete(ctx, scribID)
}
