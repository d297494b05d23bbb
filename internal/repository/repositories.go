package repository

import (
	"github.com/sarhadcorp/catalog-api/internal/server"
)

// Repositories is a container for all repository instances, injected into
// the service layer as one unit.
type Repositories struct {
	Admin   *AdminRepository
	Product *ProductRepository
	Hero    *HeroRepository
}

// NewRepositories constructs the repository container.
//
// Repositories hold the application container rather than a pool handle:
// the pool does not exist until the first EnsureConnected succeeds, so
// they must go through s.DB on every call.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Admin:   &AdminRepository{srv: s},
		Product: &ProductRepository{srv: s},
		Hero:    &HeroRepository{srv: s},
	}
}
