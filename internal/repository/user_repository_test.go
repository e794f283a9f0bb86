package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"scribcraft/internal/models"
)

func userColumns() []string {
	return []string{
		"user_id", "username", "email", "password_hash", "avatar_url",
		"about_me", "refresh_token", "refresh_token_expiry_time", "created_at",
	}
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		user := &models.User{
			Username: "gregoryhunt",
			Email:    "greg@example.com",
		}

		mock.ExpectExec(`INSERT INTO users`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateUser(ctx, user, "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, user.UserID)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.Equal(t, models.DefaultAvatarURL, user.AvatarURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при дублировании имени или email", func(t *testing.T) {
		user := &models.User{
			Username: "gregoryhunt",
			Email:    "greg@example.com",
		}

		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(errors.New(`duplicate key value violates unique constraint "users_username_key"`))

		err := repo.CreateUser(ctx, user, "password123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "уже заняты")
	})

	t.Run("Пользовательский аватар сохраняется", func(t *testing.T) {
		user := &models.User{
			Username:  "carneylori",
			Email:     "lori@example.com",
			AvatarURL: "https://randomuser.me/api/portraits/women/33.jpg",
		}

		mock.ExpectExec(`INSERT INTO users`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateUser(ctx, user, "password123")

		assert.NoError(t, err)
		assert.Equal(t, "https://randomuser.me/api/portraits/women/33.jpg", user.AvatarURL)
	})
}

func TestUserRepository_Authenticate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRow := func() *sqlmock.Rows {
		return sqlmock.NewRows(userColumns()).
			AddRow(userID, "gregoryhunt", "greg@example.com", string(hashedPassword),
				models.DefaultAvatarURL, "", "", nil, time.Now())
	}

	t.Run("Верный пароль возвращает пользователя", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM users WHERE username = \$1`).
			WithArgs("gregoryhunt").
			WillReturnRows(userRow())

		user, err := repo.Authenticate(ctx, "gregoryhunt", "correct-password")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "gregoryhunt", user.Username)
	})

	t.Run("Неверный пароль возвращает nil без ошибки", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM users WHERE username = \$1`).
			WithArgs("gregoryhunt").
			WillReturnRows(userRow())

		user, err := repo.Authenticate(ctx, "gregoryhunt", "wrong-password")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Неизвестное имя возвращает nil без ошибки", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM users WHERE username = \$1`).
			WithArgs("nosuchuser").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.Authenticate(ctx, "nosuchuser", "anything")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_DeleteUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("Каскадное удаление данных пользователя", func(t *testing.T) {
		// comments on the user's scribs, then the scribs' images,
		// then the user's own comments, the scribs and finally the user
		mock.ExpectExec(`DELETE FROM comments WHERE scrib_id IN \(SELECT scrib_id FROM scribs WHERE user_id = \$1\)`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM scrib_images WHERE scrib_id IN \(SELECT scrib_id FROM scribs WHERE user_id = \$1\)`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM comments WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM scribs WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM users WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteUser(ctx, userID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Удаление несуществующего пользователя", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM comments WHERE scrib_id IN`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM scrib_images WHERE scrib_id IN`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM comments WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM scribs WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM users WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteUser(ctx, userID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "не найден")
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM users WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByID(ctx, userID)

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "не найден")
	})
}
