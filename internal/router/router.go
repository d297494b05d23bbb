// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups, mapping
// specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sarhadcorp/catalog-api/internal/handler"
	"github.com/sarhadcorp/catalog-api/internal/middleware"
)

// New builds the Echo instance: global middleware stack, error funnel,
// and every route group.
//
// Middleware order matters:
//  1. New Relic first, so the transaction exists for everything below
//  2. RequestID before the context enhancer that logs it
//  3. ContextEnhancer before anything that calls middleware.GetLogger
//  4. CORS/Secure before handlers run
//  5. RequestLogger and Recover wrap handler execution
//  6. EnhanceTracing last, closest to handlers, so it sees their errors
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()

	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Tracing.NewRelicMiddleware())
	r.Use(middleware.RequestID())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Global.CORS())
	r.Use(m.Global.Secure())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.Recover())
	r.Use(m.Tracing.EnhanceTracing())

	registerSystemRoutes(r, h)
	registerAuthRoutes(r, h, m)
	registerProductRoutes(r, h, m)
	registerHeroRoutes(r, h, m)

	return r
}

// registerAuthRoutes wires the admin session endpoints.
func registerAuthRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	auth := r.Group("/auth")

	auth.POST("/login",
		handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK),
		m.RateLimit.LimitLogin())
	auth.GET("/verify", h.Auth.Verify, m.Auth.RequireAuth)
}

// registerProductRoutes wires catalog product endpoints. Reads are public,
// every mutation sits behind RequireAuth.
func registerProductRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	products := r.Group("/products")

	products.GET("", h.Product.List)

	products.POST("",
		handler.Handle(h.Product.Handler, h.Product.Create, http.StatusCreated),
		m.Auth.RequireAuth)
	products.POST("/upload-images", h.Product.UploadImages, m.Auth.RequireAuth)

	// The static upload path must register before the slug wildcard so
	// "upload-images" never resolves as a slug.
	products.GET("/:slug", h.Product.GetBySlug)

	products.PUT("/:id",
		handler.Handle(h.Product.Handler, h.Product.Update, http.StatusOK),
		m.Auth.RequireAuth)
	products.DELETE("/:id",
		handler.Handle(h.Product.Handler, h.Product.Delete, http.StatusOK),
		m.Auth.RequireAuth)
}

// registerHeroRoutes wires hero slide endpoints.
func registerHeroRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	hero := r.Group("/hero")

	hero.GET("", h.Hero.ListActive)

	hero.POST("",
		handler.Handle(h.Hero.Handler, h.Hero.Create, http.StatusCreated),
		m.Auth.RequireAuth)
	hero.POST("/upload-image", h.Hero.UploadImage, m.Auth.RequireAuth)

	hero.PUT("/:id",
		handler.Handle(h.Hero.Handler, h.Hero.Update, http.StatusOK),
		m.Auth.RequireAuth)
	hero.DELETE("/:id",
		handler.Handle(h.Hero.Handler, h.Hero.Delete, http.StatusOK),
		m.Auth.RequireAuth)
}
