package models

import "time"

// Banner represents a rotating banner on the storefront home page.
type Banner struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	Title       *string `gorm:"size:255" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	// Image is a root-relative upload path like /uploads/name.ext.
	Image string  `gorm:"size:500;not null" json:"image"`
	Link  *string `gorm:"size:500" json:"link"`
	// OrderIndex controls the display order, lowest first.
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
