// Package models contains database model definitions.
package models

import "time"

// Setting represents one named site setting stored as a key/value row.
// Rows are created lazily on first upsert and never deleted. Keys ending
// in "_image" hold a path to an uploaded file by convention.
type Setting struct {
	ID        uint64    `gorm:"primaryKey"        json:"id"`
	Key       string    `gorm:"column:setting_key;unique;size:191;not null"   json:"key"`
	Value     string    `gorm:"column:setting_value;type:text"                json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
