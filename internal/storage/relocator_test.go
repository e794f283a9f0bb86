package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storedObject struct {
	data        []byte
	contentType string
}

// fakeStorage keeps uploads in memory, keyed exactly as MinIO would
type fakeStorage struct {
	mu        sync.Mutex
	objects   map[string]storedObject
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string]storedObject)}
}

func (f *fakeStorage) Upload(ctx context.Context, objectName string, body io.Reader, size int64, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectName] = storedObject{data: data, contentType: contentType}
	return nil
}

func (f *fakeStorage) PublicURL(objectName string) string {
	return "http://localhost:9000/scribs/" + objectName
}

func (f *fakeStorage) PresignedURL(ctx context.Context, objectName string) (string, error) {
	return f.PublicURL(objectName) + "?signed", nil
}

func (f *fakeStorage) Remove(ctx context.Context, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, objectName)
	return nil
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "content_abc_1", ObjectKey("abc", 1))
	assert.Equal(t, "content_abc_7", ObjectKey("abc", 7))
}

func TestRelocator_Relocate(t *testing.T) {
	payload := []byte("fake-png-bytes")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer ts.Close()

	storage := newFakeStorage()
	relocator := NewRelocator(storage)

	t.Run("Изображение копируется без изменений", func(t *testing.T) {
		durableURL, err := relocator.Relocate(context.Background(), ts.URL+"/img.png", "scrib-1", 1)

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/scribs/content_scrib-1_1", durableURL)

		obj, ok := storage.objects["content_scrib-1_1"]
		require.True(t, ok)
		assert.True(t, bytes.Equal(payload, obj.data))
		assert.Equal(t, "image/png", obj.contentType)
	})

	t.Run("Повторный перенос перезаписывает тот же объект", func(t *testing.T) {
		_, err := relocator.Relocate(context.Background(), ts.URL+"/img.png", "scrib-1", 1)
		require.NoError(t, err)

		_, err = relocator.Relocate(context.Background(), ts.URL+"/img.png", "scrib-1", 1)
		require.NoError(t, err)

		count := 0
		for key := range storage.objects {
			if key == "content_scrib-1_1" {
				count++
			}
		}
		assert.Equal(t, 1, count)
		assert.Len(t, storage.objects, 1)
	})
}

func TestRelocator_Relocate_DownloadError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// provider links expire after a while
		http.Error(w, "Access Denied", http.StatusForbidden)
	}))
	defer ts.Close()

	storage := newFakeStorage()
	relocator := NewRelocator(storage)

	durableURL, err := relocator.Relocate(context.Background(), ts.URL+"/expired.png", "scrib-1", 1)

	require.Error(t, err)
	assert.Empty(t, durableURL)
	assert.Contains(t, err.Error(), fmt.Sprintf("статус %d", http.StatusForbidden))
	assert.Empty(t, storage.objects)
}

func TestRelocator_Relocate_UploadError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("fake-png-bytes"))
	}))
	defer ts.Close()

	storage := newFakeStorage()
	storage.uploadErr = errors.New("ошибка загрузки в MinIO: access denied")
	relocator := NewRelocator(storage)

	durableURL, err := relocator.Relocate(context.Background(), ts.URL+"/img.png", "scrib-1", 1)

	require.Error(t, err)
	assert.Empty(t, durableURL)
	assert.Contains(t, err.Error(), "ошибка загрузки в MinIO")
}
