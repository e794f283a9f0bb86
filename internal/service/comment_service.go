package service

import (
	"context"
	"fmt"

	"scribcraft/internal/models"
	"scribcraft/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
	GetByScribID(ctx context.Context, scribID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	scribRepo   repository.ScribRepository
}

func NewCommentService(commentRepo repository.CommentRepository, scribRepo repository.ScribRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		scribRepo:   scribRepo,
	}
}

func (s *commentService) AddComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	// the target scrib must exist
	_, err := s.scribRepo.GetByID(ctx, req.ScribID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:      req.UserID,
		ScribID:     req.ScribID,
		CommentText: req.CommentText,
	}

	err = s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetByScribID(ctx context.Context, scribID string) ([]models.Comment, error) {
	return s.commentRepo.GetByScribID(ctx, scribID)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, userID string) error {
	comments, err := s.commentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	for _, comment := range comments {
		if comment.CommentID == commentID {
			return s.commentRepo.Delete(ctx, commentID)
		}
	}

	return fmt.Errorf("комментарий не найден или вы не его автор")
}
