package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"scribcraft/internal/config"
)

type Storage interface {
	Upload(ctx context.Context, objectName string, body io.Reader, size int64, contentType string) error
	PublicURL(objectName string) string
	PresignedURL(ctx context.Context, objectName string) (string, error)
	Remove(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	cfg    config.MinIO
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MinIO: %w", err)
	}

	m := &MinIOClient{client: client, cfg: cfg.MinIO}

	exists, err := client.BucketExists(context.Background(), cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета: %w", err)
	}

	if !exists {
		err = client.MakeBucket(context.Background(), cfg.MinIO.BucketName,
			minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета: %w", err)
		}
		log.Printf("Бакет %s создан", cfg.MinIO.BucketName)
	}

	return m, nil
}

// Upload writes the object under the given key, overwriting any previous
// object with the same key
func (m *MinIOClient) Upload(ctx context.Context, objectName string, body io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.cfg.BucketName, objectName, body, size,
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return nil
}

func (m *MinIOClient) PublicURL(objectName string) string {
	scheme := "http"
	if m.cfg.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.cfg.Endpoint, m.cfg.BucketName, objectName)
}

// PresignedURL returns a temporary download link with the configured expiry
func (m *MinIOClient) PresignedURL(ctx context.Context, objectName string) (string, error) {
	presignedURL, err := m.client.PresignedGetObject(ctx, m.cfg.BucketName, objectName,
		m.cfg.URLExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("ошибка генерации временной ссылки: %w", err)
	}

	return presignedURL.String(), nil
}

func (m *MinIOClient) Remove(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}

	return nil
}
