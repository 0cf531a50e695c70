// Package banner provides CRUD operations for storefront banners.
package banner

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNotFound is returned when a banner is not found.
	ErrNotFound = errors.New("banner not found")
)

// GetAll returns banners ordered by order_index. When activeOnly is
// set, inactive banners are filtered out.
func GetAll(db *gorm.DB, activeOnly bool) ([]models.Banner, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Order("order_index ASC")
	if activeOnly {
		query = query.Where("status = ?", models.StatusActive)
	}

	var banners []models.Banner
	if err := query.Find(&banners).Error; err != nil {
		return nil, err
	}

	return banners, nil
}

// Get returns one banner by ID.
func Get(db *gorm.DB, id uint64) (*models.Banner, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var banner models.Banner
	result := db.First(&banner, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, result.Error
	}

	return &banner, nil
}

// Create inserts a new banner.
func Create(db *gorm.DB, b *models.Banner) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Create(b).Error
}

// Update overwrites an existing banner's fields by ID.
func Update(db *gorm.DB, id uint64, b *models.Banner) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.Banner{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       b.Title,
		"description": b.Description,
		"image":       b.Image,
		"link":        b.Link,
		"order_index": b.OrderIndex,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a banner by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Banner{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// CountActive returns the number of active banners.
func CountActive(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	err := db.Model(&models.Banner{}).Where("status = ?", models.StatusActive).Count(&count).Error

	return count, err
}
