// Package auth provides the admin login and token verification endpoints.
package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/auth"
	"github.com/sitepanel/sitepanel/internal/config"
	"github.com/sitepanel/sitepanel/internal/db/models"
	"github.com/sitepanel/sitepanel/internal/web/handler"
	authmw "github.com/sitepanel/sitepanel/internal/web/middleware/auth"
)

// Path is the base path for the auth endpoints.
const Path = handler.APIPrefix + "/auth"

// Service is the auth handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the auth handler.
var Handler = Service{}

// loginRequest is the login form payload.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Init initializes the auth handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, requireAuth fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Post(Path+"/login", s.Login)
	app.Get(Path+"/verify", requireAuth, s.Verify)

	return nil
}

// Login handles the admin login form submission and issues a session token.
func (s *Service) Login(c *fiber.Ctx) error {
	req := new(loginRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "Email and password required")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, "Email and password required")
	}

	var user models.AdminUser
	result := s.db.Where("email = ?", req.Email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return handler.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
		}

		log.Error().Err(result.Error).Msg("failed to look up admin user")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	if !user.VerifyPassword(req.Password) {
		return handler.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := auth.NewToken(&user, s.cfg.Auth.JWTSecret, s.cfg.Auth.TokenExpiry)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign session token")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgServerError)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// Verify confirms a session token is still valid and echoes its identity.
func (s *Service) Verify(c *fiber.Ctx) error {
	claims := authmw.Claims(c)
	if claims == nil {
		return handler.Error(c, fiber.StatusUnauthorized, "Access token required")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    claims.ID,
			"email": claims.Email,
		},
	})
}
