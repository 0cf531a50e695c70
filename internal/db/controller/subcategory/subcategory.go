// Package subcategory provides CRUD operations for product subcategories.
package subcategory

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNotFound is returned when a subcategory is not found.
	ErrNotFound = errors.New("subcategory not found")
	// ErrDuplicateName is returned when a subcategory with the same name already exists in the category.
	ErrDuplicateName = errors.New("subcategory with this name already exists in this category")
)

// Row is a subcategory joined with its parent category name.
type Row struct {
	models.Subcategory
	CategoryName *string `json:"category_name"`
}

// GetByCategory returns the active subcategories of one category, ordered by name.
func GetByCategory(db *gorm.DB, categoryID uint64) ([]models.Subcategory, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var subcategories []models.Subcategory
	err := db.Where("category_id = ? AND status = ?", categoryID, models.StatusActive).
		Order("name ASC").
		Find(&subcategories).Error
	if err != nil {
		return nil, err
	}

	return subcategories, nil
}

// GetAll returns all subcategories with their parent category names,
// optionally filtered to one category.
func GetAll(db *gorm.DB, categoryID uint64) ([]Row, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Model(&models.Subcategory{}).
		Select("subcategories.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = subcategories.category_id").
		Order("categories.name ASC, subcategories.name ASC")

	if categoryID != 0 {
		query = query.Where("subcategories.category_id = ?", categoryID)
	}

	rows := make([]Row, 0)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Create inserts a new subcategory.
func Create(db *gorm.DB, s *models.Subcategory) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Create(s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}

		return result.Error
	}

	return nil
}

// Update overwrites an existing subcategory's fields by ID.
func Update(db *gorm.DB, id uint64, s *models.Subcategory) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.Subcategory{}).Where("id = ?", id).Updates(map[string]interface{}{
		"category_id": s.CategoryID,
		"name":        s.Name,
		"slug":        s.Slug,
		"description": s.Description,
		"status":      s.Status,
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

// Delete removes a subcategory by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Subcategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
