package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"scribcraft/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID string) error
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type ScribRepository interface {
	Create(ctx context.Context, scrib *models.Scrib) error
	GetByID(ctx context.Context, scribID string) (*models.Scrib, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Scrib, error)
	GetAll(ctx context.Context) ([]models.Scrib, error)
	Delete(ctx context.Context, scribID string) error
}

type ImageRepository interface {
	CreateBatch(ctx context.Context, scribID string, imageURLs []string) ([]models.ScribImage, error)
	GetByScribID(ctx context.Context, scribID string) ([]models.ScribImage, error)
	DeleteByScribID(ctx context.Context, scribID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByScribID(ctx context.Context, scribID string) ([]models.Comment, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Comment, error)
	Delete(ctx context.Context, commentID string) error
	DeleteByScribID(ctx context.Context, scribID string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type Repository struct {
	User    UserRepository
	Scrib   ScribRepository
	Image   ImageRepository
	Comment CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Scrib:   NewScribRepository(db),
		Image:   NewImageRepository(db),
		Comment: NewCommentRepository(db),
	}
}
