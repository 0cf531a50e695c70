// Package settings provides the public settings read endpoint and the
// admin settings update endpoint backed by the sync workflow.
package settings

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/assets"
	"github.com/sitepanel/sitepanel/internal/config"
	settingctl "github.com/sitepanel/sitepanel/internal/db/controller/setting"
	"github.com/sitepanel/sitepanel/internal/settings"
	"github.com/sitepanel/sitepanel/internal/web/handler"
)

// Path is the path to the settings endpoints.
const Path = handler.APIPrefix + "/settings"

// MsgSettingsRequired is returned when the update body is empty or not
// a flat key/value object.
const MsgSettingsRequired = "Settings data required"

// Service is the settings handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	db   *gorm.DB
	sync *settings.Syncer
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, requireAuth fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.sync = settings.New(settingctl.NewStore(db), assets.NewStore(cfg.Upload.Dir))

	app.Get(Path, s.Get)
	app.Put(Path, requireAuth, s.Put)

	return nil
}

// Get returns every setting as a flat key/value object. Public, the
// storefront reads settings too.
func (s *Service) Get(c *fiber.Ctx) error {
	all, err := settingctl.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to read settings")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Success(c, all)
}

// Put applies a batch of setting changes. The body is an open string
// keyed object; there is no fixed schema of allowed keys. Primitive
// values are coerced to strings, nested objects and arrays are
// rejected.
func (s *Service) Put(c *fiber.Ctx) error {
	raw := make(map[string]interface{})
	if err := c.BodyParser(&raw); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, MsgSettingsRequired)
	}

	changes, err := coerce(raw)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, MsgSettingsRequired)
	}

	if err := s.sync.Apply(changes); err != nil {
		if errors.Is(err, settings.ErrNoChanges) {
			return handler.Error(c, fiber.StatusBadRequest, MsgSettingsRequired)
		}

		log.Error().Err(err).Msg("failed to update settings")

		return handler.Error(c, fiber.StatusInternalServerError, handler.MsgDatabaseError)
	}

	return handler.Message(c, "Settings updated successfully")
}

var errNotFlat = errors.New("settings body must be a flat key/value object")

// coerce converts a decoded JSON object to a flat string map. Numbers,
// booleans and null are coerced to their string form.
func coerce(raw map[string]interface{}) (map[string]string, error) {
	out := make(map[string]string, len(raw))

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			out[key] = v
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			out[key] = strconv.FormatBool(v)
		case nil:
			out[key] = ""
		default:
			return nil, errNotFlat
		}
	}

	return out, nil
}
