package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"scribcraft/internal/models"
)

type ImageRepositoryImpl struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) *ImageRepositoryImpl {
	return &ImageRepositoryImpl{db: db}
}

// CreateBatch inserts one row per relocated URL, position starting at 1
// in the order the URLs arrived
func (r *ImageRepositoryImpl) CreateBatch(ctx context.Context, scribID string, imageURLs []string) ([]models.ScribImage, error) {
	if len(imageURLs) == 0 {
		return nil, nil
	}

	images := make([]models.ScribImage, 0, len(imageURLs))
	now := time.Now()

	for i, imageURL := range imageURLs {
		images = append(images, models.ScribImage{
			ImageID:   uuid.New().String(),
			ScribID:   scribID,
			ImageURL:  imageURL,
			Position:  i + 1,
			CreatedAt: now,
		})
	}

	query := `
		INSERT INTO scrib_images (image_id, scrib_id, image_url, position, created_at)
		VALUES (:image_id, :scrib_id, :image_url, :position, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, images)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании изображений: %w", err)
	}

	return images, nil
}

func (r *ImageRepositoryImpl) GetByScribID(ctx context.Context, scribID string) ([]models.ScribImage, error) {
	query := `SELECT * FROM scrib_images WHERE scrib_id = $1 ORDER BY position`

	var images []models.ScribImage
	err := r.db.SelectContext(ctx, &images, query, scribID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении изображений: %w", err)
	}

	return images, nil
}

func (r *ImageRepositoryImpl) DeleteByScribID(ctx context.Context, scribID string) error {
	query := `DELETE FROM scrib_images WHERE scrib_id = $1`

	_, err := r.db.ExecContext(ctx, query, scribID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении изображений скриба: %w", err)
	}

	return nil
}
