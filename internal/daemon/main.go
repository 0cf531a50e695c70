// Package daemon builds the application from its configuration: the
// database connection, migrations, seed data, the upload directory and
// the web service.
package daemon

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/config"
	"github.com/sitepanel/sitepanel/internal/db/dsn"
	"github.com/sitepanel/sitepanel/internal/db/models"
	"github.com/sitepanel/sitepanel/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	cfg        *config.Config
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	dbDriver := gormmysql.Open(dsn.Create(cfg)) // open db with gorm mysql driver

	db, err := gorm.Open(dbDriver, &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.AdminUser{},
		&models.Setting{},
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.Banner{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	// the upload directory must exist before the first upload or static read
	if err = os.MkdirAll(cfg.Upload.Dir, 0o750); err != nil {
		panic("failed to create upload directory")
	}

	return &Daemon{
		webService: web.New(cfg, db),
		cfg:        cfg,
	}
}
