// Package category provides CRUD operations for product categories.
package category

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNotFound is returned when a category is not found.
	ErrNotFound = errors.New("category not found")
	// ErrDuplicateName is returned when a category with the same name already exists.
	ErrDuplicateName = errors.New("category with this name already exists")
)

// GetAll returns categories ordered by name. When activeOnly is set,
// inactive categories are filtered out.
func GetAll(db *gorm.DB, activeOnly bool) ([]models.Category, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Order("name ASC")
	if activeOnly {
		query = query.Where("status = ?", models.StatusActive)
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

// Create inserts a new category.
func Create(db *gorm.DB, c *models.Category) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Create(c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}

		return result.Error
	}

	return nil
}

// Update overwrites an existing category's fields by ID.
func Update(db *gorm.DB, id uint64, c *models.Category) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.Category{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        c.Name,
		"slug":        c.Slug,
		"description": c.Description,
		"status":      c.Status,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a category by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
