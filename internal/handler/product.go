package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sarhadcorp/catalog-api/internal/domain"
	"github.com/sarhadcorp/catalog-api/internal/errs"
	"github.com/sarhadcorp/catalog-api/internal/server"
	"github.com/sarhadcorp/catalog-api/internal/service"
	"github.com/sarhadcorp/catalog-api/internal/validation"
)

// ProductHandler serves the catalog product endpoints: public reads by
// slug, authenticated CRUD by id, and the batch image upload.
type ProductHandler struct {
	Handler
	services *service.Services
}

func NewProductHandler(s *server.Server, services *service.Services) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// List returns all products, newest first. Public.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.services.Product.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// GetBySlug returns one product by its public slug. Public.
func (h *ProductHandler) GetBySlug(c echo.Context) error {
	product, err := h.services.Product.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProductRequest is the POST /products payload. Slug is optional;
// when omitted it is derived from the name.
type CreateProductRequest struct {
	Name           string            `json:"name" validate:"required,min=2,max=200"`
	Slug           string            `json:"slug" validate:"omitempty,max=200"`
	Description    string            `json:"description" validate:"required"`
	Category       string            `json:"category"`
	Specifications map[string]string `json:"specifications"`
	Applications   []string          `json:"applications"`
	Images         []string          `json:"images" validate:"omitempty,dive,url"`
	IsFeatured     bool              `json:"isFeatured"`
}

func (r *CreateProductRequest) Validate() error {
	return validation.Struct(r)
}

// Create inserts a new product.
func (h *ProductHandler) Create(c echo.Context, req *CreateProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
		Category:       req.Category,
		Specifications: req.Specifications,
		Applications:   req.Applications,
		Images:         req.Images,
		IsFeatured:     req.IsFeatured,
	}

	return h.services.Product.Create(c.Request().Context(), product)
}

// UpdateProductRequest is the PUT /products/:id payload. Every field is
// optional; absent fields stay untouched. Pointers (and nil-able
// collections) distinguish "not sent" from a zero value, so isFeatured
// can be flipped to false and lists can be cleared with [].
type UpdateProductRequest struct {
	ID             string            `param:"id"`
	Name           *string           `json:"name" validate:"omitempty,min=2,max=200"`
	Slug           *string           `json:"slug" validate:"omitempty,max=200"`
	Description    *string           `json:"description"`
	Category       *string           `json:"category"`
	Specifications map[string]string `json:"specifications"`
	Applications   []string          `json:"applications"`
	Images         []string          `json:"images" validate:"omitempty,dive,url"`
	IsFeatured     *bool             `json:"isFeatured"`
}

func (r *UpdateProductRequest) Validate() error {
	return validation.Struct(r)
}

// Update applies a sparse update to a product.
//
// A malformed id answers 404, not 400: it cannot identify any existing
// product, and letting it through would make the uuid cast blow up inside
// Postgres as a 500.
func (h *ProductHandler) Update(c echo.Context, req *UpdateProductRequest) (*domain.Product, error) {
	if !validation.IsValidUUID(req.ID) {
		return nil, errs.NewNotFoundError("Product not found", true, nil)
	}

	patch := domain.ProductPatch{
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
		Category:       req.Category,
		Specifications: req.Specifications,
		Applications:   req.Applications,
		Images:         req.Images,
		IsFeatured:     req.IsFeatured,
	}

	return h.services.Product.Update(c.Request().Context(), req.ID, patch)
}

// DeleteProductRequest carries only the path id.
type DeleteProductRequest struct {
	ID string `param:"id"`
}

func (r *DeleteProductRequest) Validate() error {
	return nil
}

// MessageResponse is the body for delete confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// Delete removes a product and schedules best-effort cleanup of its
// images on the asset host.
func (h *ProductHandler) Delete(c echo.Context, req *DeleteProductRequest) (*MessageResponse, error) {
	if !validation.IsValidUUID(req.ID) {
		return nil, errs.NewNotFoundError("Product not found", true, nil)
	}

	if err := h.services.Product.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Product deleted successfully"}, nil
}

// UploadImages streams a multipart batch (field "images") to object
// storage and returns the public URLs in input order. All-or-nothing.
func (h *ProductHandler) UploadImages(c echo.Context) error {
	files, err := readMultipartFiles(c, "images")
	if err != nil {
		return err
	}

	urls, err := h.services.Upload.UploadToProducts(c.Request().Context(), files)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"urls": urls})
}

// readMultipartFiles reads every file under the given multipart field into
// memory. Size limits are enforced downstream by the upload coordinator so
// the 413 message can name the offending file.
func readMultipartFiles(c echo.Context, field string) ([]service.UploadFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errs.NewBadRequestError("Invalid multipart form", false, nil, nil, nil)
	}

	headers := form.File[field]
	files := make([]service.UploadFile, 0, len(headers))

	for _, header := range headers {
		data, err := readMultipartFile(header)
		if err != nil {
			return nil, errs.NewBadRequestError("Could not read uploaded file", false, nil, nil, nil)
		}
		files = append(files, service.UploadFile{
			Filename: header.Filename,
			Data:     data,
		})
	}

	return files, nil
}

func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
