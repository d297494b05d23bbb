package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sarhadcorp/catalog-api/internal/domain"
	"github.com/sarhadcorp/catalog-api/internal/errs"
	"github.com/sarhadcorp/catalog-api/internal/middleware"
	"github.com/sarhadcorp/catalog-api/internal/server"
	"github.com/sarhadcorp/catalog-api/internal/service"
	"github.com/sarhadcorp/catalog-api/internal/validation"
)

// AuthHandler serves login and token verification for the admin panel.
type AuthHandler struct {
	Handler
	services *service.Services
}

func NewAuthHandler(s *server.Server, services *service.Services) *AuthHandler {
	return &AuthHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// LoginRequest is the POST /auth/login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// LoginResponse carries the signed token and the authenticated admin
// (hash excluded via the domain struct's json tags).
type LoginResponse struct {
	Token string        `json:"token"`
	Admin *domain.Admin `json:"admin"`
}

// Login authenticates an admin and issues a session token.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (*LoginResponse, error) {
	token, admin, err := h.services.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		Admin: admin,
	}, nil
}

// Verify returns the admin behind the presented token.
//
// The auth middleware already validated the token; this re-reads the
// account so a token for a deleted admin stops working immediately.
func (h *AuthHandler) Verify(c echo.Context) error {
	adminID := middleware.GetUserID(c)
	if adminID == "" {
		return errs.NewUnauthorizedError("No token, authorization denied", true)
	}

	admin, err := h.services.Auth.Verify(c.Request().Context(), adminID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"admin": admin})
}
