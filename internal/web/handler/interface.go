package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/config"
)

// Service is the interface for a web handler service. requireAuth is
// the middleware guarding admin-only routes; handlers decide per route
// whether to apply it.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, db *gorm.DB, requireAuth fiber.Handler) error
}
