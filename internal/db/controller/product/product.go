// Package product provides CRUD and listing queries for storefront products.
package product

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/db/models"
)

const (
	// DefaultLimit is the default page size for listings.
	DefaultLimit = 10

	searchPattern = "(products.title LIKE @q OR products.description LIKE @q OR products.category LIKE @q" +
		" OR categories.name LIKE @q OR subcategories.name LIKE @q)"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNotFound is returned when a product is not found.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateTitle is returned when a product with the same slug already exists.
	ErrDuplicateTitle = errors.New("product with this title already exists")
)

// Row is a product joined with its category and subcategory names.
type Row struct {
	models.Product
	CategoryName    *string `json:"category_name"`
	SubcategoryName *string `json:"subcategory_name"`
}

// ListParams holds search, filter and pagination parameters for List.
type ListParams struct {
	Page            int
	Limit           int
	Search          string
	CategoryID      uint64
	SubcategoryID   uint64
	IncludeInactive bool
}

// ListResult is one page of products plus pagination totals.
type ListResult struct {
	Items      []Row
	Page       int
	Limit      int
	TotalItems int64
	TotalPages int
}

func joined(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Product{}).
		Select("products.*, categories.name AS category_name, subcategories.name AS subcategory_name").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN subcategories ON subcategories.id = products.subcategory_id")
}

func applyFilters(query *gorm.DB, params ListParams) *gorm.DB {
	if !params.IncludeInactive {
		query = query.Where("products.status = ?", models.StatusActive)
	}

	if params.Search != "" {
		query = query.Where(searchPattern, map[string]interface{}{"q": "%" + params.Search + "%"})
	}

	if params.CategoryID != 0 {
		query = query.Where("products.category_id = ?", params.CategoryID)
	}

	if params.SubcategoryID != 0 {
		query = query.Where("products.subcategory_id = ?", params.SubcategoryID)
	}

	return query
}

// List returns one page of products, newest first, with category names
// joined in and totals for pagination.
func List(db *gorm.DB, params ListParams) (*ListResult, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if params.Page < 1 {
		params.Page = 1
	}

	if params.Limit < 1 {
		params.Limit = DefaultLimit
	}

	var total int64
	if err := applyFilters(joined(db), params).Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]Row, 0, params.Limit)
	err := applyFilters(joined(db), params).
		Order("products.created_at DESC").
		Limit(params.Limit).
		Offset((params.Page - 1) * params.Limit).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))

	return &ListResult{
		Items:      items,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// GetBySlug returns the active product with the given slug.
func GetBySlug(db *gorm.DB, slug string) (*Row, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row Row
	result := joined(db).
		Where("products.slug = ? AND products.status = ?", slug, models.StatusActive).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return &row, nil
}

// Create inserts a new product.
func Create(db *gorm.DB, p *models.Product) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Create(p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTitle
		}

		return result.Error
	}

	return nil
}

// Update overwrites an existing product's fields by ID.
func Update(db *gorm.DB, id uint64, p *models.Product) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":          p.Title,
		"slug":           p.Slug,
		"description":    p.Description,
		"image":          p.Image,
		"category":       p.Category,
		"category_id":    p.CategoryID,
		"subcategory_id": p.SubcategoryID,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTitle
		}

		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a product by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// CountActive returns the number of active products.
func CountActive(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	err := db.Model(&models.Product{}).Where("status = ?", models.StatusActive).Count(&count).Error

	return count, err
}

// Recent returns the newest active products, capped at limit.
func Recent(db *gorm.DB, limit int) ([]models.Product, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var products []models.Product
	err := db.Where("status = ?", models.StatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error

	return products, err
}
