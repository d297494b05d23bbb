package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sarhadcorp/catalog-api/internal/domain"
	"github.com/sarhadcorp/catalog-api/internal/server"
	"github.com/sarhadcorp/catalog-api/internal/sqlerr"
)

// HeroRepository reads and writes landing-page hero slides.
type HeroRepository struct {
	srv *server.Server
}

const heroColumns = `id, image, label, sort_order, is_active, created_at, updated_at`

// ListActive returns the slides shown publicly, in display order.
func (r *HeroRepository) ListActive(ctx context.Context) ([]domain.HeroSlide, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	rows, err := r.srv.DB.Pool().Query(ctx,
		`select `+heroColumns+` from hero_slides where is_active order by sort_order asc`)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	slides, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.HeroSlide])
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return slides, nil
}

// MaxOrder returns the highest sort_order across all slides, or nil when
// there are none. Feeds the order default for newly created slides.
func (r *HeroRepository) MaxOrder(ctx context.Context) (*int, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	var max *int
	if err := r.srv.DB.Pool().QueryRow(ctx, `select max(sort_order) from hero_slides`).Scan(&max); err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return max, nil
}

// Create inserts a slide and returns the stored row.
func (r *HeroRepository) Create(ctx context.Context, s *domain.HeroSlide) (*domain.HeroSlide, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	rows, err := r.srv.DB.Pool().Query(ctx,
		`insert into hero_slides (image, label, sort_order, is_active)
		 values ($1, $2, $3, $4)
		 returning `+heroColumns,
		s.Image, s.Label, s.Order, s.IsActive)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.HeroSlide])
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return &created, nil
}

// Update applies a sparse patch and returns the updated row.
func (r *HeroRepository) Update(ctx context.Context, id string, patch domain.HeroSlidePatch) (*domain.HeroSlide, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	var columns []string
	var values []any

	if patch.Image != nil {
		columns = append(columns, "image")
		values = append(values, *patch.Image)
	}
	if patch.Label != nil {
		columns = append(columns, "label")
		values = append(values, *patch.Label)
	}
	if patch.Order != nil {
		columns = append(columns, "sort_order")
		values = append(values, *patch.Order)
	}
	if patch.IsActive != nil {
		columns = append(columns, "is_active")
		values = append(values, *patch.IsActive)
	}

	setClause, args := buildSetClause(columns, values)
	args = append(args, id)

	rows, err := r.srv.DB.Pool().Query(ctx,
		fmt.Sprintf(`update hero_slides set %s where id = $%d returning %s`,
			setClause, len(args), heroColumns),
		args...)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.HeroSlide])
	if err != nil {
		return nil, sqlerr.HandleError(fmt.Errorf("table:hero_slides: %w", err))
	}
	return &updated, nil
}

// Delete removes a slide and returns its image URL for asset cleanup.
func (r *HeroRepository) Delete(ctx context.Context, id string) (string, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return "", err
	}

	rows, err := r.srv.DB.Pool().Query(ctx,
		`delete from hero_slides where id = $1 returning image`, id)
	if err != nil {
		return "", sqlerr.HandleError(err)
	}

	image, err := pgx.CollectOneRow(rows, pgx.RowTo[string])
	if err != nil {
		return "", sqlerr.HandleError(fmt.Errorf("table:hero_slides: %w", err))
	}
	return image, nil
}
