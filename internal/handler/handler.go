// Package handler is the first entry point for business logic after the
// router.
//
// It parses requests, handles input validation using the validation
// package, and calls the appropriate service layer. It acts as the
// interface between the HTTP request and the core business logic.
package handler

import (
	"github.com/sarhadcorp/catalog-api/internal/server"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach *server.Server
// (config, logger, db, redis, job).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returned by value; it only holds a
// pointer, so copies are cheap and share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
