package models

import "time"

// Subcategory represents a second-level product category.
// Names are unique per parent category.
type Subcategory struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CategoryID  uint64    `gorm:"uniqueIndex:idx_subcategory_category_name;not null" json:"category_id"`
	Name        string    `gorm:"uniqueIndex:idx_subcategory_category_name;size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;not null" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
