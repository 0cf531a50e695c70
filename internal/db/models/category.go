package models

import "time"

// Category represents a top-level product category.
type Category struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;size:255;not null" json:"name"`
	Slug        string    `gorm:"unique;size:255;not null" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
