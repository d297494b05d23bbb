package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sarhadcorp/catalog-api/internal/config"
	"github.com/sarhadcorp/catalog-api/internal/errs"
	"github.com/sarhadcorp/catalog-api/internal/server"
)

// fakeStorage implements ObjectStorage in memory. Filenames listed in
// failOn make that upload fail.
type fakeStorage struct {
	mu         sync.Mutex
	uploaded   []string
	failOn     map[string]bool
	configured bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		failOn:     map[string]bool{},
		configured: true,
	}
}

func (f *fakeStorage) Configured() bool { return f.configured }

func (f *fakeStorage) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	if f.failOn[filename] {
		return "", errors.New("storage rejected upload")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploaded = append(f.uploaded, filename)

	return fmt.Sprintf("https://cdn.example.com/%s/%s", folder, filename), nil
}

func (f *fakeStorage) DestroyByURL(ctx context.Context, url string) error { return nil }

func newUploadTestService(storage ObjectStorage) *UploadService {
	nop := zerolog.Nop()
	srv := &server.Server{
		Config: &config.Config{
			Storage: config.StorageConfig{
				MaxFileSize:   config.DefaultMaxFileSize,
				MaxFiles:      config.DefaultMaxFiles,
				ProductFolder: config.DefaultProductFolder,
				HeroFolder:    config.DefaultHeroFolder,
			},
		},
		Logger: &nop,
	}
	return NewUploadService(srv, storage)
}

func requireStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	require.Equal(t, status, httpErr.Status)
	return httpErr
}

func makeFiles(n int, size int) []UploadFile {
	files := make([]UploadFile, n)
	for i := range files {
		files[i] = UploadFile{
			Filename: fmt.Sprintf("file-%02d.jpg", i),
			Data:     make([]byte, size),
		}
	}
	return files
}

func TestUploadReturnsURLsInInputOrder(t *testing.T) {
	storage := newFakeStorage()
	svc := newUploadTestService(storage)

	files := makeFiles(7, 128)

	urls, err := svc.Upload(context.Background(), files, "sarhad-products")
	require.NoError(t, err)
	require.Len(t, urls, 7)

	// Fan-out runs concurrently; results must still line up with input.
	for i, url := range urls {
		require.Equal(t, fmt.Sprintf("https://cdn.example.com/sarhad-products/%s", files[i].Filename), url)
	}
}

func TestUploadNoFiles(t *testing.T) {
	svc := newUploadTestService(newFakeStorage())

	_, err := svc.Upload(context.Background(), nil, "sarhad-products")
	httpErr := requireStatus(t, err, http.StatusBadRequest)
	require.Equal(t, "No files provided", httpErr.Message)
}

func TestUploadTooManyFiles(t *testing.T) {
	svc := newUploadTestService(newFakeStorage())

	_, err := svc.Upload(context.Background(), makeFiles(11, 16), "sarhad-products")
	requireStatus(t, err, http.StatusBadRequest)
}

func TestUploadOversizedFileFailsWholeBatch(t *testing.T) {
	storage := newFakeStorage()
	svc := newUploadTestService(storage)

	files := []UploadFile{
		{Filename: "small.jpg", Data: make([]byte, 1024)},
		{Filename: "huge.jpg", Data: make([]byte, config.DefaultMaxFileSize+1)},
	}

	urls, err := svc.Upload(context.Background(), files, "sarhad-products")
	httpErr := requireStatus(t, err, http.StatusRequestEntityTooLarge)
	require.Contains(t, httpErr.Message, "huge.jpg")
	require.Nil(t, urls)

	// Validation short-circuits before any upload starts.
	require.Empty(t, storage.uploaded)
}

func TestUploadStorageNotConfigured(t *testing.T) {
	storage := newFakeStorage()
	storage.configured = false
	svc := newUploadTestService(storage)

	_, err := svc.Upload(context.Background(), makeFiles(1, 16), "sarhad-products")
	httpErr := requireStatus(t, err, http.StatusInternalServerError)
	require.Equal(t, "SERVER_MISCONFIGURED", httpErr.Code)
}

func TestUploadAllOrNothing(t *testing.T) {
	storage := newFakeStorage()
	storage.failOn["file-03.jpg"] = true
	svc := newUploadTestService(storage)

	urls, err := svc.Upload(context.Background(), makeFiles(6, 64), "sarhad-products")

	// One failure fails the batch; no partial URL list escapes.
	requireStatus(t, err, http.StatusInternalServerError)
	require.Nil(t, urls)
}

func TestUploadToHeroSingleFile(t *testing.T) {
	svc := newUploadTestService(newFakeStorage())

	url, err := svc.UploadToHero(context.Background(), UploadFile{
		Filename: "banner.jpg",
		Data:     make([]byte, 256),
	})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/sarhad-hero/banner.jpg", url)
}
