package models

import "time"

const (
	// StatusActive marks content visible on the public storefront.
	StatusActive = "active"
	// StatusInactive marks content hidden from the public storefront.
	StatusInactive = "inactive"
)

// Product represents a product or service shown on the storefront.
type Product struct {
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Title is the display title, unique through its slug.
	Title string `gorm:"size:255;not null" json:"title"`
	// Slug is the url-safe identifier derived from the title.
	Slug        string `gorm:"unique;size:255;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	// Image is a root-relative upload path like /uploads/name.ext.
	Image string `gorm:"size:500" json:"image"`
	// Category is the legacy free-text category label.
	Category      string    `gorm:"size:255" json:"category"`
	CategoryID    *uint64   `json:"category_id"`
	SubcategoryID *uint64   `json:"subcategory_id"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
