// Package category provides the storefront and admin category endpoints.
package category

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/config"
	categoryctl "github.com/sitepanel/sitepanel/internal/db/controller/category"
	"github.com/sitepanel/sitepanel/internal/db/models"
	"github.com/sitepanel/sitepanel/internal/slug"
	"github.com/sitepanel/sitepanel/internal/web/handler"
)

const (
	// Path is the path to the public category listing.
	Path = handler.APIPrefix + "/categories"

	// AdminPath is the path to the admin category endpoints.
	AdminPath = handler.AdminPrefix + "/categories"
)

// Service is the category handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the category handler.
var Handler = Service{}

// payload is the create/update form body.
type payload struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// Init initializes the category handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, requireAuth fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.List)
	app.Get(AdminPath, requireAuth, s.AdminList)
	app.Post(AdminPath, requireAuth, s.Create)
	app.Put(AdminPath+"/:id", requireAuth, s.Update)
	app.Delete(AdminPath+"/:id", requireAuth, s.Delete)

	return nil
}

func (s *Service) list(c *fiber.Ctx, activeOnly bool) error {
	categories, err := categoryctl.GetAll(s.db, activeOnly)
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Success(c, categories)
}

// List returns active categories for the storefront.
func (s *Service) List(c *fiber.Ctx) error {
	return s.list(c, true)
}

// AdminList returns all categories including inactive ones.
func (s *Service) AdminList(c *fiber.Ctx) error {
	return s.list(c, false)
}

// Create inserts a new category.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(payload)
	if err := c.BodyParser(req); err != nil || req.Name == "" {
		return handler.Error(c, fiber.StatusBadRequest, "Category name required")
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Status:      models.StatusActive,
	}

	if err := categoryctl.Create(s.db, category); err != nil {
		if errors.Is(err, categoryctl.ErrDuplicateName) {
			return handler.Error(c, fiber.StatusBadRequest, err.Error())
		}

		log.Error().Err(err).Msg("failed to create category")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Created(c, "Category created successfully", category)
}

// Update overwrites an existing category.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return handler.Error(c, fiber.StatusNotFound, "Category not found")
	}

	req := new(payload)
	if err := c.BodyParser(req); err != nil || req.Name == "" {
		return handler.Error(c, fiber.StatusBadRequest, "Category name required")
	}

	if req.Status == "" {
		req.Status = models.StatusActive
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Status:      req.Status,
	}

	if err := categoryctl.Update(s.db, uint64(id), category); err != nil {
		switch {
		case errors.Is(err, categoryctl.ErrDuplicateName):
			return handler.Error(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, categoryctl.ErrNotFound):
			return handler.Error(c, fiber.StatusNotFound, "Category not found")
		}

		log.Error().Err(err).Msg("failed to update category")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Message(c, "Category updated successfully")
}

// Delete removes a category.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return handler.Error(c, fiber.StatusNotFound, "Category not found")
	}

	if err := categoryctl.Delete(s.db, uint64(id)); err != nil {
		if errors.Is(err, categoryctl.ErrNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "Category not found")
		}

		log.Error().Err(err).Msg("failed to delete category")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Message(c, "Category deleted successfully")
}
