package storage

import (
	"context"
	"fmt"
	"net/http"
)

// Relocator copies short-lived provider-hosted images into durable object
// storage. Provider links expire, the relocated copy does not.
type Relocator struct {
	storage    Storage
	httpClient *http.Client
}

func NewRelocator(storage Storage) *Relocator {
	return &Relocator{
		storage:    storage,
		httpClient: http.DefaultClient,
	}
}

// ObjectKey derives the storage key from the scrib id and the 1-based image
// position. The same (scrib, index) pair always maps to the same key, so a
// repeated relocation overwrites instead of duplicating
func ObjectKey(scribID string, index int) string {
	return fmt.Sprintf("content_%s_%d", scribID, index)
}

// Relocate downloads the image and re-uploads it unchanged, content type
// preserved, returning the durable public URL
func (r *Relocator) Relocate(ctx context.Context, imageURL, scribID string, index int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("ошибка формирования запроса на скачивание: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка скачивания изображения: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ошибка скачивания изображения: статус %d", resp.StatusCode)
	}

	objectName := ObjectKey(scribID, index)
	contentType := resp.Header.Get("Content-Type")

	err = r.storage.Upload(ctx, objectName, resp.Body, resp.ContentLength, contentType)
	if err != nil {
		return "", err
	}

	return r.storage.PublicURL(objectName), nil
}
