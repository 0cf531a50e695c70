// Package upload provides the admin image upload endpoints.
package upload

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/assets"
	"github.com/sitepanel/sitepanel/internal/config"
	"github.com/sitepanel/sitepanel/internal/web/handler"
)

const (
	// Path is the base path for the upload endpoints.
	Path = handler.APIPrefix + "/upload"

	// FieldName is the multipart form field carrying the image.
	FieldName = "image"
)

// Service is the upload handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	store *assets.Store
}

// Handler is the upload handler.
var Handler = Service{}

// Init initializes the upload handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, requireAuth fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.store = assets.NewStore(cfg.Upload.Dir)

	app.Post(Path+"/image", requireAuth, s.Image)
	app.Post(Path+"/quill-image", requireAuth, s.QuillImage)

	return nil
}

// Image stores one uploaded image and returns its public url.
func (s *Service) Image(c *fiber.Ctx) error {
	filename, ok, err := s.save(c)
	if !ok {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Image uploaded successfully",
		"data": fiber.Map{
			"filename": filename,
			"url":      s.cfg.Upload.PublicPath + "/" + filename,
		},
	})
}

// QuillImage stores one uploaded image for the rich-text editor, which
// expects an absolute url in a flat response.
func (s *Service) QuillImage(c *fiber.Ctx) error {
	filename, ok, err := s.save(c)
	if !ok {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"url":     strings.TrimSuffix(s.cfg.Webserver.URL, "/") + s.cfg.Upload.PublicPath + "/" + filename,
	})
}

// save validates and stores the multipart image, returning the
// generated filename. When ok is false the failure response has
// already been written.
func (s *Service) save(c *fiber.Ctx) (filename string, ok bool, err error) {
	file, err := c.FormFile(FieldName)
	if err != nil {
		return "", false, handler.Error(c, fiber.StatusBadRequest, "No image file provided")
	}

	if file.Size > s.cfg.Upload.MaxFileSize {
		return "", false, handler.Error(c, fiber.StatusBadRequest, "File too large")
	}

	contentType := file.Header.Get(fiber.HeaderContentType)
	if !assets.AllowedExtension(file.Filename) || !strings.HasPrefix(contentType, "image/") {
		return "", false, handler.Error(c, fiber.StatusBadRequest, "Only image files are allowed")
	}

	filename = assets.Filename(FieldName, file.Filename)
	if err := c.SaveFile(file, s.store.Path(filename)); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("failed to store uploaded image")

		return "", false, handler.Error(c, fiber.StatusInternalServerError, "Upload error")
	}

	return filename, true, nil
}
