package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"scribcraft/internal/models"
)

type ScribRepositoryImpl struct {
	db *sqlx.DB
}

type CreateScribRequest struct {
	UserID string `json:"user_id"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

func NewScribRepository(db *sqlx.DB) *ScribRepositoryImpl {
	return &ScribRepositoryImpl{db: db}
}

func (r *ScribRepositoryImpl) Create(ctx context.Context, scrib *models.Scrib) error {
	if scrib.ScribID == "" {
		scrib.ScribID = uuid.New().String()
	}

	if scrib.CreatedAt.IsZero() {
		scrib.CreatedAt = time.Now()
	}

	query := `
        INSERT INTO scribs (scrib_id, user_id, title, prompt, scrib_text, created_at)
        VALUES (:scrib_id, :user_id, :title, :prompt, :scrib_text, :created_at)
    `

	_, err := r.db.NamedExecContext(ctx, query, scrib)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") &&
			strings.Contains(err.Error(), "title") {
			return fmt.Errorf("заголовок уже занят: %w", err)
		}
		return fmt.Errorf("ошибка при создании скриба: %w", err)
	}

	return nil
}

func (r *ScribRepositoryImpl) GetByID(ctx context.Context, scribID string) (*models.Scrib, error) {
	query := `
        SELECT * FROM scribs
        WHERE scrib_id = $1
    `

	var scrib models.Scrib
	err := r.db.GetContext(ctx, &scrib, query, scribID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("скриб с ID %s не найден", scribID)
		}
		return nil, fmt.Errorf("ошибка при получении скриба: %w", err)
	}

	return &scrib, nil
}

func (r *ScribRepositoryImpl) GetByUserID(ctx context.Context, userID string) ([]models.Scrib, error) {
	query := `
        SELECT * FROM scribs
        WHERE user_id = $1
        ORDER BY created_at DESC
    `

	var scribs []models.Scrib
	err := r.db.SelectContext(ctx, &scribs, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении скрибов пользователя: %w", err)
	}

	return scribs, nil
}

func (r *ScribRepositoryImpl) GetAll(ctx context.Context) ([]models.Scrib, error) {
	query := `
        SELECT * FROM scribs
        ORDER BY created_at DESC
    `

	var scribs []models.Scrib
	err := r.db.SelectContext(ctx, &scribs, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении скрибов: %w", err)
	}

	return scribs, nil
}

// Delete removes the scrib together with its images and comments
func (r *ScribRepositoryImpl) Delete(ctx context.Context, scribID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE scrib_id = $1`, scribID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментариев скриба: %w", err)
	}

	imageRepositoryImpl := ImageRepositoryImpl{db: r.db}
	err = imageRepositoryImpl.DeleteByScribID(ctx, scribID)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM scribs WHERE scrib_id = $1`, scribID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении скриба: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("скриб не найден")
	}

	return nil
}
