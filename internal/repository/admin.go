package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sarhadcorp/catalog-api/internal/domain"
	"github.com/sarhadcorp/catalog-api/internal/server"
	"github.com/sarhadcorp/catalog-api/internal/sqlerr"
)

// AdminRepository reads and writes back-office accounts.
type AdminRepository struct {
	srv *server.Server
}

const adminColumns = `id, email, password_hash, created_at, updated_at`

// GetByEmail fetches one admin by email. Emails are stored lowercase;
// the service normalizes before calling.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	rows, err := r.srv.DB.Pool().Query(ctx,
		`select `+adminColumns+` from admins where email = $1`, email)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	admin, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Admin])
	if err != nil {
		return nil, sqlerr.HandleError(fmt.Errorf("table:admins: %w", err))
	}
	return &admin, nil
}

// GetByID fetches one admin by primary key. Used by token verification to
// confirm the account still exists.
func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	rows, err := r.srv.DB.Pool().Query(ctx,
		`select `+adminColumns+` from admins where id = $1`, id)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	admin, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Admin])
	if err != nil {
		return nil, sqlerr.HandleError(fmt.Errorf("table:admins: %w", err))
	}
	return &admin, nil
}

// Create inserts an admin account. Only the create-admin CLI command calls
// this; there is no HTTP signup surface.
func (r *AdminRepository) Create(ctx context.Context, email, passwordHash string) (*domain.Admin, error) {
	if err := r.srv.DB.EnsureConnected(ctx); err != nil {
		return nil, err
	}

	rows, err := r.srv.DB.Pool().Query(ctx,
		`insert into admins (email, password_hash) values ($1, $2) returning `+adminColumns,
		email, passwordHash)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	admin, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Admin])
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return &admin, nil
}
