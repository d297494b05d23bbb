package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sarhadcorp/catalog-api/internal/errs"
	"github.com/sarhadcorp/catalog-api/internal/server"
)

// ObjectStorage is what the upload coordinator needs from the asset host.
// internal/lib/storage implements it; tests substitute a fake.
type ObjectStorage interface {
	Configured() bool
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)
	DestroyByURL(ctx context.Context, url string) error
}

// UploadFile is one inbound file, already read into memory by the handler.
type UploadFile struct {
	Filename string
	Data     []byte
}

// uploadWorkers bounds concurrent pushes to the asset host per request.
// The host throttles beyond a handful of parallel streams, and one
// request must not monopolize outbound bandwidth.
const uploadWorkers = 4

// UploadService streams batches of in-memory files to object storage.
type UploadService struct {
	server  *server.Server
	storage ObjectStorage
}

func NewUploadService(s *server.Server, storage ObjectStorage) *UploadService {
	return &UploadService{
		server:  s,
		storage: storage,
	}
}

// Upload pushes all files to the given folder and returns their public
// URLs in input order.
//
// The batch is all-or-nothing: validation runs up front (413 on any file
// over the limit, 400 on an empty batch, 400 on too many files, 500 when
// storage is unconfigured), then the files fan out on a bounded errgroup.
// The first failure cancels the group and the whole request fails with no
// URLs returned; files that already uploaded become unreferenced objects
// on the asset host, which is accepted over partial success.
func (s *UploadService) Upload(ctx context.Context, files []UploadFile, folder string) ([]string, error) {
	if len(files) == 0 {
		return nil, errs.NewBadRequestError("No files provided", true, nil, nil, nil)
	}

	maxFiles := s.server.Config.Storage.MaxFiles
	if len(files) > maxFiles {
		return nil, errs.NewBadRequestError(
			fmt.Sprintf("Too many files: at most %d per upload", maxFiles), true, nil, nil, nil)
	}

	maxSize := s.server.Config.Storage.MaxFileSize
	for _, f := range files {
		if int64(len(f.Data)) > maxSize {
			return nil, errs.NewPayloadTooLargeError(
				fmt.Sprintf("File %q exceeds the %dMB limit", f.Filename, maxSize>>20))
		}
	}

	if !s.storage.Configured() {
		return nil, errs.NewServerMisconfiguredError("Image storage is not configured on the server")
	}

	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadWorkers)

	for i, f := range files {
		g.Go(func() error {
			url, err := s.storage.Upload(gctx, f.Data, f.Filename, folder)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.server.Logger.Error().Err(err).
			Str("folder", folder).
			Int("files", len(files)).
			Msg("image upload batch failed")
		return nil, errs.NewInternalServerError()
	}

	return urls, nil
}

// UploadToProducts uploads a batch into the products folder.
func (s *UploadService) UploadToProducts(ctx context.Context, files []UploadFile) ([]string, error) {
	return s.Upload(ctx, files, s.server.Config.Storage.ProductFolder)
}

// UploadToHero uploads a single file into the hero folder.
func (s *UploadService) UploadToHero(ctx context.Context, file UploadFile) (string, error) {
	urls, err := s.Upload(ctx, []UploadFile{file}, s.server.Config.Storage.HeroFolder)
	if err != nil {
		return "", err
	}
	return urls[0], nil
}
