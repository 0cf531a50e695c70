// Package banner provides the storefront and admin banner endpoints.
package banner

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/config"
	bannerctl "github.com/sitepanel/sitepanel/internal/db/controller/banner"
	"github.com/sitepanel/sitepanel/internal/db/models"
	"github.com/sitepanel/sitepanel/internal/web/handler"
)

const (
	// Path is the path to the public banner listing.
	Path = handler.APIPrefix + "/banners"

	// AdminPath is the path to the admin banner listing.
	AdminPath = handler.AdminPrefix + "/banners"
)

// Service is the banner handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the banner handler.
var Handler = Service{}

// payload is the create/update form body.
type payload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       string  `json:"image"`
	Link        *string `json:"link"`
	OrderIndex  int     `json:"order_index"`
}

// Init initializes the banner handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, requireAuth fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.List)
	app.Post(Path, requireAuth, s.Create)
	app.Put(Path+"/:id", requireAuth, s.Update)
	app.Delete(Path+"/:id", requireAuth, s.Delete)
	app.Get(AdminPath, requireAuth, s.AdminList)

	return nil
}

// List returns active banners ordered for display.
func (s *Service) List(c *fiber.Ctx) error {
	banners, err := bannerctl.GetAll(s.db, true)
	if err != nil {
		log.Error().Err(err).Msg("failed to list banners")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Success(c, banners)
}

// AdminList returns all banners including inactive ones.
func (s *Service) AdminList(c *fiber.Ctx) error {
	banners, err := bannerctl.GetAll(s.db, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to list banners")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Success(c, banners)
}

// Create inserts a new banner.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(payload)
	if err := c.BodyParser(req); err != nil || req.Image == "" {
		return handler.Error(c, fiber.StatusBadRequest, "Image is required")
	}

	banner := &models.Banner{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
		OrderIndex:  req.OrderIndex,
		Status:      models.StatusActive,
	}

	if err := bannerctl.Create(s.db, banner); err != nil {
		log.Error().Err(err).Msg("failed to create banner")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Created(c, "Banner created successfully", banner)
}

// Update overwrites an existing banner, keeping the stored image when
// the form submits none.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return handler.Error(c, fiber.StatusNotFound, "Banner not found")
	}

	req := new(payload)
	if err := c.BodyParser(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "Invalid banner data")
	}

	existing, err := bannerctl.Get(s.db, uint64(id))
	if err != nil {
		if errors.Is(err, bannerctl.ErrNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "Banner not found")
		}

		log.Error().Err(err).Msg("failed to load banner")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	image := req.Image
	if image == "" {
		image = existing.Image
	}

	banner := &models.Banner{
		Title:       req.Title,
		Description: req.Description,
		Image:       image,
		Link:        req.Link,
		OrderIndex:  req.OrderIndex,
	}

	if err := bannerctl.Update(s.db, uint64(id), banner); err != nil {
		if errors.Is(err, bannerctl.ErrNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "Banner not found")
		}

		log.Error().Err(err).Msg("failed to update banner")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Message(c, "Banner updated successfully")
}

// Delete removes a banner.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return handler.Error(c, fiber.StatusNotFound, "Banner not found")
	}

	if err := bannerctl.Delete(s.db, uint64(id)); err != nil {
		if errors.Is(err, bannerctl.ErrNotFound) {
			return handler.Error(c, fiber.StatusNotFound, "Banner not found")
		}

		log.Error().Err(err).Msg("failed to delete banner")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Message(c, "Banner deleted successfully")
}
