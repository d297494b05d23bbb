package service

import (
	"github.com/sarhadcorp/catalog-api/internal/lib/job"
	"github.com/sarhadcorp/catalog-api/internal/lib/storage"
	"github.com/sarhadcorp/catalog-api/internal/repository"
	"github.com/sarhadcorp/catalog-api/internal/server"
)

// Services is a container for all service instances, injected into the
// handler layer as one unit.
type Services struct {
	Auth    *AuthService
	Product *ProductService
	Hero    *HeroService
	Upload  *UploadService
	Job     *job.JobService
}

// NewService constructs the service container.
//
// One storage client is shared between the upload coordinator and the
// delete paths that schedule asset cleanup.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	storageClient := storage.NewClient(s.Config, s.Logger)

	cleanup := newAssetCleaner(s, storageClient)

	return &Services{
		Auth:    NewAuthService(s, repos),
		Product: NewProductService(s, repos, cleanup),
		Hero:    NewHeroService(s, repos, cleanup),
		Upload:  NewUploadService(s, storageClient),
		Job:     s.Job,
	}, nil
}
