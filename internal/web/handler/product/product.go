// Package product provides the storefront and admin product endpoints.
package product

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/config"
	productctl "github.com/sitepanel/sitepanel/internal/db/controller/product"
	"github.com/sitepanel/sitepanel/internal/db/models"
	"github.com/sitepanel/sitepanel/internal/slug"
	"github.com/sitepanel/sitepanel/internal/web/handler"
)

const (
	// Path is the path to the public product endpoints.
	Path = handler.APIPrefix + "/products"

	// AdminPath is the path to the admin product listing.
	AdminPath = handler.AdminPrefix + "/products"
)

// Service is the product handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the product handler.
var Handler = Service{}

// payload is the create/update form body.
type payload struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	CategoryID    *uint64 `json:"category_id"`
	SubcategoryID *uint64 `json:"subcategory_id"`
}

// Init initializes the product handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, requireAuth fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Get(Path+"/:slug", s.GetBySlug)
	app.Post(Path, requireAuth, s.Create)
	app.Put(Path+"/:id", requireAuth, s.Update)
	app.Delete(Path+"/:id", requireAuth, s.Delete)
	app.Get(AdminPath, requireAuth, s.AdminList)

	return nil
}

func (s *Service) list(c *fiber.Ctx, includeInactive bool) error {
	params := productctl.ListParams{
		Page:            c.QueryInt("page", 1),
		Limit:           c.QueryInt("limit", productctl.DefaultLimit),
		Search:          c.Query("search", ""),
		CategoryID:      uint64(c.QueryInt("category_id", 0)),
		SubcategoryID:   uint64(c.QueryInt("subcategory_id", 0)),
		IncludeInactive: includeInactive,
	}

	result, err := productctl.List(s.db, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Page(c, result.Items, handler.Pagination{
		CurrentPage: result.Page,
		TotalPages:  result.TotalPages,
		TotalItems:  result.TotalItems,
		Limit:       result.Limit,
	})
}

// List returns one page of active products for the storefront.
func (s *Service) List(c *fiber.Ctx) error {
	return s.list(c, false)
}

// AdminList returns one page of products including inactive ones.
func (s *Service) AdminList(c *fiber.Ctx) error {
	return s.list(c, true)
}

// GetBySlug returns one active product by its slug.
func (s *Service) GetBySlug(c *fiber.Ctx) error {
	row, err := productctl.GetBySlug(s.db, c.Params("slug"))
	if err != nil {
		if errors.Is(err, productctl.ErrNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "Product not found")
		}

		log.Error().Err(err).Msg("failed to load product")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Success(c, row)
}

// Create inserts a new product.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(payload)
	if err := c.BodyParser(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "Title and description required")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "Title and description required")
	}

	product := &models.Product{
		Title:         req.Title,
		Slug:          slug.Make(req.Title),
		Description:   req.Description,
		Image:         req.Image,
		Category:      req.Category,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Status:        models.StatusActive,
	}

	if err := productctl.Create(s.db, product); err != nil {
		if errors.Is(err, productctl.ErrDuplicateTitle) {
			return handler.Error(c, fiber.StatusBadRequest, err.Error())
		}

		log.Error().Err(err).Msg("failed to create product")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Created(c, "Product created successfully", product)
}

// Update overwrites an existing product.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return handler.Error(c, fiber.StatusNotFound, "Product not found")
	}

	req := new(payload)
	if err := c.BodyParser(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "Title and description required")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "Title and description required")
	}

	product := &models.Product{
		Title:         req.Title,
		Slug:          slug.Make(req.Title),
		Description:   req.Description,
		Image:         req.Image,
		Category:      req.Category,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
	}

	if err := productctl.Update(s.db, uint64(id), product); err != nil {
		switch {
		case errors.Is(err, productctl.ErrDuplicateTitle):
			return handler.Error(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, productctl.ErrNotFound):
			return handler.Error(c, fiber.StatusNotFound, "Product not found")
		}

		log.Error().Err(err).Msg("failed to update product")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Message(c, "Product updated successfully")
}

// Delete removes a product.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return handler.Error(c, fiber.StatusNotFound, "Product not found")
	}

	if err := productctl.Delete(s.db, uint64(id)); err != nil {
		if errors.Is(err, productctl.ErrNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "Product not found")
		}

		log.Error().Err(err).Msg("failed to delete product")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Message(c, "Product deleted successfully")
}
