package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/config"
	"github.com/sitepanel/sitepanel/internal/db/models"
)

func seed(_ *config.Config, db *gorm.DB) {
	// Seed initial data if the admin user table is empty

	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	if count == 0 {
		db.Create(
			&models.AdminUser{
				Email:    "admin@example.com",
				Name:     "Administrator",
				Password: models.HashPassword("changeme"),
			},
		)

		log.Warn().Msg("created default admin user admin@example.com, change its password")
	}
}
