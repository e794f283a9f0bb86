package testRepository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribcraft/internal/repository"
)

func TestImageRepository_CreateBatch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewImageRepository(db)

	ctx := context.Background()
	scribID := uuid.New().String()

	t.Run("Позиции идут по порядку начиная с 1", func(t *testing.T) {
		urls := []string{
			"http://localhost:9000/scribs/content_" + scribID + "_1",
			"http://localhost:9000/scribs/content_" + scribID + "_2",
		}

		mock.ExpectExec(`INSERT INTO scrib_images`).
			WillReturnResult(sqlmock.NewResult(0, 2))

		images, err := repo.CreateBatch(ctx, scribID, urls)

		require.NoError(t, err)
		require.Len(t, images, 2)

		for i, image := range images {
			assert.Equal(t, i+1, image.Position)
			assert.Equal(t, urls[i], image.ImageURL)
			assert.Equal(t, scribID, image.ScribID)
			assert.NotEmpty(t, image.ImageID)
		}

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустой список не трогает БД", func(t *testing.T) {
		images, err := repo.CreateBatch(ctx, scribID, nil)

		assert.NoError(t, err)
		assert.Nil(t, images)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestImageRepository_GetByScribID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewImageRepository(db)

	ctx := context.Background()
	scribID := uuid.New().String()

	t.Run("Изображения возвращаются по позиции", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"image_id", "scrib_id", "image_url", "position", "created_at",
		}).
			AddRow(uuid.New().String(), scribID, "http://localhost:9000/scribs/content_"+scribID+"_1", 1, time.Now()).
			AddRow(uuid.New().String(), scribID, "http://localhost:9000/scribs/content_"+scribID+"_2", 2, time.Now())

		mock.ExpectQuery(`SELECT \* FROM scrib_images WHERE scrib_id = \$1 ORDER BY position`).
			WithArgs(scribID).
			WillReturnRows(rows)

		images, err := repo.GetByScribID(ctx, scribID)

		require.NoError(t, err)
		require.Len(t, images, 2)
		assert.Equal(t, 1, images[0].Position)
		assert.Equal(t, 2, images[1].Position)
	})
}
