package handler

import (
	"github.com/sarhadcorp/catalog-api/internal/server"
	"github.com/sarhadcorp/catalog-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Product *ProductHandler
	Hero    *HeroHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Auth:    NewAuthHandler(s, services),
		Product: NewProductHandler(s, services),
		Hero:    NewHeroHandler(s, services),
	}
}
