package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"scribcraft/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

type CreateCommentRequest struct {
	UserID      string `json:"user_id"`
	ScribID     string `json:"scrib_id"`
	CommentText string `json:"comment_text"`
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO comments (comment_id, user_id, scrib_id, comment_text, created_at)
		VALUES (:comment_id, :user_id, :scrib_id, :comment_text, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByScribID(ctx context.Context, scribID string) ([]models.Comment, error) {
	query := `SELECT * FROM comments WHERE scrib_id = $1 ORDER BY created_at`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, scribID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) GetByUserID(ctx context.Context, userID string) ([]models.Comment, error) {
	query := `SELECT * FROM comments WHERE user_id = $1 ORDER BY created_at`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев пользователя: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("комментарий не найден")
	}

	return nil
}

func (r *commentRepository) DeleteByScribID(ctx context.Context, scribID string) error {
	query := `DELETE FROM comments WHERE scrib_id = $1`

	_, err := r.db.ExecContext(ctx, query, scribID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментариев скриба: %w", err)
	}

	return nil
}

func (r *commentRepository) DeleteByUserID(ctx context.Context, userID string) error {
	query := `DELETE FROM comments WHERE user_id = $1`

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментариев пользователя: %w", err)
	}

	return nil
}
