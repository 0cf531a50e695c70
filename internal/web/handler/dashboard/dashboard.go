// Package dashboard provides the admin dashboard statistics endpoint.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/config"
	bannerctl "github.com/sitepanel/sitepanel/internal/db/controller/banner"
	productctl "github.com/sitepanel/sitepanel/internal/db/controller/product"
	"github.com/sitepanel/sitepanel/internal/web/handler"
)

const (
	// Path is the path to the dashboard endpoint.
	Path = handler.AdminPrefix + "/dashboard"

	// RecentProductCount is how many recent products the dashboard shows.
	RecentProductCount = 5
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, requireAuth fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, requireAuth, s.Get)

	return nil
}

// Get returns content counts and the most recent products.
func (s *Service) Get(c *fiber.Ctx) error {
	totalProducts, err := productctl.CountActive(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count products")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	totalBanners, err := bannerctl.CountActive(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count banners")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	recent, err := productctl.Recent(s.db, RecentProductCount)
	if err != nil {
		log.Error().Err(err).Msg("failed to load recent products")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Success(c, fiber.Map{
		"totalProducts":  totalProducts,
		"totalBanners":   totalBanners,
		"recentProducts": recent,
	})
}
