// Package subcategory provides the storefront and admin subcategory endpoints.
package subcategory

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/config"
	subcategoryctl "github.com/sitepanel/sitepanel/internal/db/controller/subcategory"
	"github.com/sitepanel/sitepanel/internal/db/models"
	"github.com/sitepanel/sitepanel/internal/slug"
	"github.com/sitepanel/sitepanel/internal/web/handler"
)

const (
	// Path is the path to the public subcategory listing.
	Path = handler.APIPrefix + "/subcategories"

	// AdminPath is the path to the admin subcategory endpoints.
	AdminPath = handler.AdminPrefix + "/subcategories"
)

// Service is the subcategory handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the subcategory handler.
var Handler = Service{}

// payload is the create/update form body.
type payload struct {
	CategoryID  uint64  `json:"category_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

// Init initializes the subcategory handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, requireAuth fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path+"/:categoryId", s.ListByCategory)
	app.Get(AdminPath, requireAuth, s.AdminList)
	app.Post(AdminPath, requireAuth, s.Create)
	app.Put(AdminPath+"/:id", requireAuth, s.Update)
	app.Delete(AdminPath+"/:id", requireAuth, s.Delete)

	return nil
}

// ListByCategory returns the active subcategories of one category.
func (s *Service) ListByCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("categoryId")
	if err != nil {
		return handler.Error(c, fiber.StatusNotFound, "Category not found")
	}

	subcategories, err := subcategoryctl.GetByCategory(s.db, uint64(categoryID))
	if err != nil {
		log.Error().Err(err).Msg("failed to list subcategories")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Success(c, subcategories)
}

// AdminList returns all subcategories with parent category names,
// optionally filtered by the category_id query parameter.
func (s *Service) AdminList(c *fiber.Ctx) error {
	rows, err := subcategoryctl.GetAll(s.db, uint64(c.QueryInt("category_id", 0)))
	if err != nil {
		log.Error().Err(err).Msg("failed to list subcategories")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Success(c, rows)
}

// Create inserts a new subcategory.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(payload)
	if err := c.BodyParser(req); err != nil || req.Name == "" || req.CategoryID == 0 {
		return handler.Error(c, fiber.StatusBadRequest, "Category ID and subcategory name required")
	}

	subcategory := &models.Subcategory{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Status:      models.StatusActive,
	}

	if err := subcategoryctl.Create(s.db, subcategory); err != nil {
		if errors.Is(err, subcategoryctl.ErrDuplicateName) {
			return handler.Error(c, fiber.StatusBadRequest, err.Error())
		}

		log.Error().Err(err).Msg("failed to create subcategory")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Created(c, "Subcategory created successfully", subcategory)
}

// Update overwrites an existing subcategory.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return handler.Error(c, fiber.StatusNotFound, "Subcategory not found")
	}

	req := new(payload)
	if err := c.BodyParser(req); err != nil || req.Name == "" {
		return handler.Error(c, fiber.StatusBadRequest, "Subcategory name required")
	}

	if req.Status == "" {
		req.Status = models.StatusActive
	}

	subcategory := &models.Subcategory{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Status:      req.Status,
	}

	if err := subcategoryctl.Update(s.db, uint64(id), subcategory); err != nil {
		switch {
		case errors.Is(err, subcategoryctl.ErrDuplicateName):
			return handler.Error(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, subcategoryctl.ErrNotFound):
			return handler.Error(c, fiber.StatusNotFound, "Subcategory not found")
		}

		log.Error().Err(err).Msg("failed to update subcategory")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Message(c, "Subcategory updated successfully")
}

// Delete removes a subcategory.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return handler.Error(c, fiber.StatusNotFound, "Subcategory not found")
	}

	if err := subcategoryctl.Delete(s.db, uint64(id)); err != nil {
		if errors.Is(err, subcategoryctl.ErrNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "Subcategory not found")
		}

		log.Error().Err(err).Msg("failed to delete subcategory")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Message(c, "Subcategory deleted successfully")
}
