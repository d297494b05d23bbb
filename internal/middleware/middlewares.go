package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/sarhadcorp/catalog-api/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server,
// so router setup wires them from one place.
type Middlewares struct {
	// Global holds middleware applied to every route: CORS, request
	// logging, recovery, secure headers, plus the global error handler.
	Global *GlobalMiddlewares

	// Auth enforces the admin bearer token on protected routes.
	Auth *AuthMiddleware

	// ContextEnhancer attaches a request-scoped logger
	// (request_id, method, path, ip, trace and admin metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides the New Relic transaction middleware and helpers.
	Tracing *TracingMiddleware

	// RateLimit throttles credential guessing on the login endpoint.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components from the application
// container. When New Relic is not configured nrApp is nil and the tracing
// middleware degrades to a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
