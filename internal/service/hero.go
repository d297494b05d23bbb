package service

import (
	"context"

	"github.com/sarhadcorp/catalog-api/internal/domain"
	"github.com/sarhadcorp/catalog-api/internal/repository"
	"github.com/sarhadcorp/catalog-api/internal/server"
)

// HeroService owns hero-slide business rules.
type HeroService struct {
	server  *server.Server
	repos   *repository.Repositories
	cleanup *assetCleaner
}

func NewHeroService(s *server.Server, repos *repository.Repositories, cleanup *assetCleaner) *HeroService {
	return &HeroService{
		server:  s,
		repos:   repos,
		cleanup: cleanup,
	}
}

// ListActive returns the publicly visible slides in display order.
func (s *HeroService) ListActive(ctx context.Context) ([]domain.HeroSlide, error) {
	return s.repos.Hero.ListActive(ctx)
}

// Create inserts a slide.
//
// When the caller supplies no order the slide lands at the end: one past
// the current maximum, or 0 on an empty table. The read and the insert
// are separate statements, so two concurrent creates can pick the same
// order; order carries no uniqueness constraint and ties sort stably, so
// the admin just drags one of them afterwards.
func (s *HeroService) Create(ctx context.Context, slide *domain.HeroSlide, order *int, isActive *bool) (*domain.HeroSlide, error) {
	if order != nil {
		slide.Order = *order
	} else {
		max, err := s.repos.Hero.MaxOrder(ctx)
		if err != nil {
			return nil, err
		}
		slide.Order = domain.NextSlideOrder(max)
	}

	slide.IsActive = true
	if isActive != nil {
		slide.IsActive = *isActive
	}

	return s.repos.Hero.Create(ctx, slide)
}

// Update applies a sparse patch. An empty patch still runs the UPDATE,
// which only refreshes updated_at and returns the row (or a 404).
func (s *HeroService) Update(ctx context.Context, id string, patch domain.HeroSlidePatch) (*domain.HeroSlide, error) {
	return s.repos.Hero.Update(ctx, id, patch)
}

// Delete removes a slide, then schedules best-effort cleanup of its image.
func (s *HeroService) Delete(ctx context.Context, id string) error {
	image, err := s.repos.Hero.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.cleanup.Schedule("hero_slide", []string{image})
	return nil
}
