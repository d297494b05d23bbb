package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sarhadcorp/catalog-api/internal/errs"
	"github.com/sarhadcorp/catalog-api/internal/lib/token"
	"github.com/sarhadcorp/catalog-api/internal/server"
)

// AuthMiddleware enforces admin authentication on protected routes.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// RequireAuth verifies the Authorization bearer token and stores the
// authenticated admin id in the Echo context.
//
// Outcomes, in order of checks:
//   - no Authorization header / not a Bearer scheme -> 401
//   - signing secret not configured -> 500 (deployment fault, not the caller's)
//   - malformed, expired, or wrongly-signed token -> 401
//   - valid token without the admin claim -> 403
//
// The 401 message is identical for every token defect so a caller can't
// distinguish "expired" from "forged".
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		const prefix = "Bearer "
		if header == "" || !strings.HasPrefix(header, prefix) {
			return errs.NewUnauthorizedError("No token, authorization denied", true)
		}

		secret := auth.server.Config.Auth.SecretKey
		if secret == "" {
			return errs.NewServerMisconfiguredError("JWT secret is not configured on the server")
		}

		claims, err := token.Parse(secret, strings.TrimPrefix(header, prefix))
		if err != nil {
			auth.server.Logger.Warn().
				Str("request_id", GetRequestID(c)).
				Err(err).
				Msg("rejected bearer token")
			return errs.NewUnauthorizedError("Invalid or expired token", true)
		}

		if !claims.IsAdmin {
			return errs.NewForbiddenError("Admin access required", true)
		}

		c.Set(UserIDKey, claims.AdminID)

		return next(c)
	}
}
