package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sarhadcorp/catalog-api/internal/domain"
	"github.com/sarhadcorp/catalog-api/internal/server"
	"github.com/sarhadcorp/catalog-api/internal/sqlerr"
)

// ProductRepository reads and writes catalog products.
//
// Slug uniqueness is NOT checked here: the insert/update runs and the
// products_slug_key unique index arbitrates. A violation comes back as a
// pgconn error that sqlerr maps to a 400 naming the slug, which is the
// only race-free way to enforce uniqueness under concurrent creates.
type ProductRepository struct {
	srv *server.Server
}

const productColumns = `id, name, slug, description, category, specifications,
	applications, images, is_featured, created_at, updated_at`

// List returns all products, newest first.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	rows, err := r.srv.DB.Pool().Query(ctx,
		`select `+productColumns+` from products order by created_at desc`)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Product])
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return products, nil
}

// GetBySlug fetches one product by its public slug.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	rows, err := r.srv.DB.Pool().Query(ctx,
		`select `+productColumns+` from products where slug = $1`, slug)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Product])
	if err != nil {
		return nil, sqlerr.HandleError(fmt.Errorf("table:products: %w", err))
	}
	return &product, nil
}

// GetByID fetches one product by primary key.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	rows, err := r.srv.DB.Pool().Query(ctx,
		`select `+productColumns+` from products where id = $1`, id)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Product])
	if err != nil {
		return nil, sqlerr.HandleError(fmt.Errorf("table:products: %w", err))
	}
	return &product, nil
}

// Create inserts a product and returns the stored row.
//
// The caller has already derived the slug; empty collections are stored
// as empty, not null, to keep the JSON shape stable.
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	rows, err := r.srv.DB.Pool().Query(ctx,
		`insert into products (name, slug, description, category, specifications, applications, images, is_featured)
		 values ($1, $2, $3, $4, $5, $6, $7, $8)
		 returning `+productColumns,
		p.Name, p.Slug, p.Description, p.Category,
		p.Specifications, p.Applications, p.Images, p.IsFeatured)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Product])
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return &created, nil
}

// Update applies a sparse patch and returns the updated row. A patch that
// touches nothing is the caller's problem; this assumes at least one field.
func (r *ProductRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	var columns []string
	var values []any

	if patch.Name != nil {
		columns = append(columns, "name")
		values = append(values, *patch.Name)
	}
	if patch.Slug != nil {
		columns = append(columns, "slug")
		values = append(values, *patch.Slug)
	}
	if patch.Description != nil {
		columns = append(columns, "description")
		values = append(values, *patch.Description)
	}
	if patch.Category != nil {
		columns = append(columns, "category")
		values = append(values, *patch.Category)
	}
	if patch.Specifications != nil {
		columns = append(columns, "specifications")
		values = append(values, patch.Specifications)
	}
	if patch.Applications != nil {
		columns = append(columns, "applications")
		values = append(values, patch.Applications)
	}
	if patch.Images != nil {
		columns = append(columns, "images")
		values = append(values, patch.Images)
	}
	if patch.IsFeatured != nil {
		columns = append(columns, "is_featured")
		values = append(values, *patch.IsFeatured)
	}

	setClause, args := buildSetClause(columns, values)
	args = append(args, id)

	rows, err := r.srv.DB.Pool().Query(ctx,
		fmt.Sprintf(`update products set %s where id = $%d returning %s`,
			setClause, len(args), productColumns),
		args...)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Product])
	if err != nil {
		return nil, sqlerr.HandleError(fmt.Errorf("table:products: %w", err))
	}
	return &updated, nil
}

// Delete removes a product and returns its image URLs so the caller can
// schedule asset cleanup. Deleting a missing id is a 404.
func (r *ProductRepository) Delete(ctx context.Context, id string) ([]string, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	rows, err := r.srv.DB.Pool().Query(ctx,
		`delete from products where id = $1 returning images`, id)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	images, err := pgx.CollectOneRow(rows, pgx.RowTo[[]string])
	if err != nil {
		return nil, sqlerr.HandleError(fmt.Errorf("table:products: %w", err))
	}
	return images, nil
}

// Count reports how many products exist. The seed command uses it to stay
// idempotent.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return 0, err
	}

	var n int64
	if err := r.srv.DB.Pool().QueryRow(ctx, `select count(*) from products`).Scan(&n); err != nil {
		return 0, sqlerr.HandleError(err)
	}
	return n, nil
}
