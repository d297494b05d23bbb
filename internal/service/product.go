package service

import (
	"context"

	"github.com/sarhadcorp/catalog-api/internal/domain"
	"github.com/sarhadcorp/catalog-api/internal/repository"
	"github.com/sarhadcorp/catalog-api/internal/server"
)

// ProductService owns catalog product business rules.
type ProductService struct {
	server  *server.Server
	repos   *repository.Repositories
	cleanup *assetCleaner
}

func NewProductService(s *server.Server, repos *repository.Repositories, cleanup *assetCleaner) *ProductService {
	return &ProductService{
		server:  s,
		repos:   repos,
		cleanup: cleanup,
	}
}

// List returns all products, newest first.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repos.Product.List(ctx)
}

// GetBySlug returns one product by its public slug.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.repos.Product.GetBySlug(ctx, slug)
}

// Create inserts a new product.
//
// When the caller supplied no slug it is derived from the name. Either
// way the insert goes straight to the database and the unique index
// decides: a duplicate surfaces as a 400 naming the slug, regardless of
// how many concurrent creates race.
func (s *ProductService) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if p.Slug == "" {
		p.Slug = domain.Slugify(p.Name)
	}

	// Store empty collections, not nulls, so list responses always carry
	// [] / {} instead of null.
	if p.Specifications == nil {
		p.Specifications = map[string]string{}
	}
	if p.Applications == nil {
		p.Applications = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}

	return s.repos.Product.Create(ctx, p)
}

// Update applies a sparse patch. An explicit slug in the patch wins; a
// name change alone never re-derives the slug, existing URLs keep working.
// An empty patch returns the current row untouched.
func (s *ProductService) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if patch.IsZero() {
		return s.repos.Product.GetByID(ctx, id)
	}
	return s.repos.Product.Update(ctx, id, patch)
}

// Delete removes a product, then schedules best-effort cleanup of its
// images on the asset host. The delete is final once the row is gone;
// cleanup failures only ever cost orphaned files.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	images, err := s.repos.Product.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.cleanup.Schedule("product", images)
	return nil
}
