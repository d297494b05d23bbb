package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sarhadcorp/catalog-api/internal/domain"
	"github.com/sarhadcorp/catalog-api/internal/errs"
	"github.com/sarhadcorp/catalog-api/internal/server"
	"github.com/sarhadcorp/catalog-api/internal/service"
	"github.com/sarhadcorp/catalog-api/internal/validation"
)

// HeroHandler serves the landing-page hero slide endpoints.
type HeroHandler struct {
	Handler
	services *service.Services
}

func NewHeroHandler(s *server.Server, services *service.Services) *HeroHandler {
	return &HeroHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// ListActive returns the active slides in display order. Public.
func (h *HeroHandler) ListActive(c echo.Context) error {
	slides, err := h.services.Hero.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, slides)
}

// CreateHeroSlideRequest is the POST /hero payload. Order defaults to the
// end of the sequence; isActive defaults to true; label may stay empty.
type CreateHeroSlideRequest struct {
	Image    string `json:"image" validate:"required,url"`
	Label    string `json:"label" validate:"omitempty,max=200"`
	Order    *int   `json:"order"`
	IsActive *bool  `json:"isActive"`
}

func (r *CreateHeroSlideRequest) Validate() error {
	return validation.Struct(r)
}

// Create inserts a new slide.
func (h *HeroHandler) Create(c echo.Context, req *CreateHeroSlideRequest) (*domain.HeroSlide, error) {
	slide := &domain.HeroSlide{
		Image: req.Image,
		Label: req.Label,
	}

	return h.services.Hero.Create(c.Request().Context(), slide, req.Order, req.IsActive)
}

// UpdateHeroSlideRequest is the PUT /hero/:id payload; absent fields stay
// untouched.
type UpdateHeroSlideRequest struct {
	ID       string  `param:"id"`
	Image    *string `json:"image" validate:"omitempty,url"`
	Label    *string `json:"label" validate:"omitempty,max=200"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

func (r *UpdateHeroSlideRequest) Validate() error {
	return validation.Struct(r)
}

// Update applies a sparse update to a slide. Malformed ids answer 404 the
// same as missing ones.
func (h *HeroHandler) Update(c echo.Context, req *UpdateHeroSlideRequest) (*domain.HeroSlide, error) {
	if !validation.IsValidUUID(req.ID) {
		return nil, errs.NewNotFoundError("Hero Slide not found", true, nil)
	}

	patch := domain.HeroSlidePatch{
		Image:    req.Image,
		Label:    req.Label,
		Order:    req.Order,
		IsActive: req.IsActive,
	}

	return h.services.Hero.Update(c.Request().Context(), req.ID, patch)
}

// DeleteHeroSlideRequest carries only the path id.
type DeleteHeroSlideRequest struct {
	ID string `param:"id"`
}

func (r *DeleteHeroSlideRequest) Validate() error {
	return nil
}

// Delete removes a slide and schedules best-effort cleanup of its image.
func (h *HeroHandler) Delete(c echo.Context, req *DeleteHeroSlideRequest) (*MessageResponse, error) {
	if !validation.IsValidUUID(req.ID) {
		return nil, errs.NewNotFoundError("Hero Slide not found", true, nil)
	}

	if err := h.services.Hero.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Hero slide deleted successfully"}, nil
}

// UploadImage streams one multipart file (field "image") to object storage
// and returns its public URL.
func (h *HeroHandler) UploadImage(c echo.Context) error {
	files, err := readMultipartFiles(c, "image")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errs.NewBadRequestError("No files provided", true, nil, nil, nil)
	}
	if len(files) > 1 {
		return errs.NewBadRequestError("Only one file may be uploaded", true, nil, nil, nil)
	}

	url, err := h.services.Upload.UploadToHero(c.Request().Context(), files[0])
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"url": url})
}
