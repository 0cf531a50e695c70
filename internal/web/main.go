// Package web wires the fiber application: middleware, static files,
// metrics and the JSON API handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/config"
	fiberlogger "github.com/sitepanel/sitepanel/internal/logger/adapter/fiber"
	authhandler "github.com/sitepanel/sitepanel/internal/web/handler/auth"
	"github.com/sitepanel/sitepanel/internal/web/handler/banner"
	"github.com/sitepanel/sitepanel/internal/web/handler/category"
	"github.com/sitepanel/sitepanel/internal/web/handler/dashboard"
	"github.com/sitepanel/sitepanel/internal/web/handler/product"
	settingshandler "github.com/sitepanel/sitepanel/internal/web/handler/settings"
	"github.com/sitepanel/sitepanel/internal/web/handler/subcategory"
	"github.com/sitepanel/sitepanel/internal/web/handler/upload"
	authmw "github.com/sitepanel/sitepanel/internal/web/middleware/auth"
)

// CheckAlivePath is the health check endpoint path.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	alive atomic.Bool
	db    *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	s.alive.Store(true)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of sitepanel.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	log.Info().Msgf(
		"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
		s.cfg.Webserver.ShutDownTime,
	)

	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// errorHandler maps unhandled fiber errors to the JSON envelope. The
// body limit error keeps the message the admin UI knows.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code == fiber.StatusRequestEntityTooLarge {
		code = fiber.StatusBadRequest
		message = "File too large"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			AppName:       "sitepanel",
			BodyLimit:     cfg.Webserver.BodyLimit,
			CaseSensitive: true,
			ErrorHandler:  errorHandler,
			Immutable:     true,
			Prefork:       false,
		},
	)

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Webserver.CORSOrigins,
		AllowCredentials: true,
	}))

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// uploaded images are served straight from the flat upload directory
	app.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendStatus(fiber.StatusOK)
	})

	requireAuth := authmw.New(cfg.Auth.JWTSecret)

	// init handlers (they register their own routes, admin-only routes
	// are guarded by requireAuth)
	for _, err := range []error{
		authhandler.Handler.Init(app, cfg, db, requireAuth),
		settingshandler.Handler.Init(app, cfg, db, requireAuth),
		product.Handler.Init(app, cfg, db, requireAuth),
		category.Handler.Init(app, cfg, db, requireAuth),
		subcategory.Handler.Init(app, cfg, db, requireAuth),
		banner.Handler.Init(app, cfg, db, requireAuth),
		upload.Handler.Init(app, cfg, db, requireAuth),
		dashboard.Handler.Init(app, cfg, db, requireAuth),
	} {
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init handler")
		}
	}

	// unknown API routes answer with the JSON envelope
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "API endpoint not found",
		})
	})

	return service
}
