package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sarhadcorp/catalog-api/internal/domain"
	"github.com/sarhadcorp/catalog-api/internal/errs"
	"github.com/sarhadcorp/catalog-api/internal/lib/token"
	"github.com/sarhadcorp/catalog-api/internal/repository"
	"github.com/sarhadcorp/catalog-api/internal/server"
)

// AuthService authenticates back-office admins and issues session tokens.
type AuthService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewAuthService(s *server.Server, repos *repository.Repositories) *AuthService {
	return &AuthService{
		server: s,
		repos:  repos,
	}
}

// Login checks credentials and returns a signed token plus the admin.
//
// The response is deliberately uniform: an unknown email and a wrong
// password both answer 401 "Invalid credentials", so the endpoint cannot
// be used to probe which admin emails exist. Database errors keep their
// own status (500); only the two credential failures collapse.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	secret := s.server.Config.Auth.SecretKey
	if secret == "" {
		return "", nil, errs.NewServerMisconfiguredError("JWT secret is not configured on the server")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.repos.Admin.GetByEmail(ctx, email)
	if err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == 404 {
			return "", nil, errs.NewUnauthorizedError("Invalid credentials", true)
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, errs.NewUnauthorizedError("Invalid credentials", true)
	}

	signed, err := token.Sign(secret, admin.ID, s.server.Config.Auth.TokenTTL)
	if err != nil {
		s.server.Logger.Error().Err(err).Msg("failed to sign admin token")
		return "", nil, errs.NewInternalServerError()
	}

	return signed, admin, nil
}

// Verify re-reads the admin behind an already-validated token, confirming
// the account still exists. The middleware did the cryptographic check;
// this catches tokens for deleted accounts.
func (s *AuthService) Verify(ctx context.Context, adminID string) (*domain.Admin, error) {
	admin, err := s.repos.Admin.GetByID(ctx, adminID)
	if err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == 404 {
			return nil, errs.NewUnauthorizedError("Invalid or expired token", true)
		}
		return nil, err
	}
	return admin, nil
}
