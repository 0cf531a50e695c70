// Package setting provides the key/value store for site settings.
//
// Settings are a flat mapping from a unique string key to an opaque
// string value. Rows are created lazily on first upsert; the package
// never deletes rows. Values are not interpreted here, callers decide
// what a value means (a path, a url, a numeric string).
package setting

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sitepanel/sitepanel/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrKeyEmpty is returned when attempting to upsert a setting with an empty key.
	ErrKeyEmpty = errors.New("setting key cannot be empty")
)

// GetAll retrieves every setting as a flat key/value snapshot.
// An empty store yields an empty map.
func GetAll(db *gorm.DB) (map[string]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	result := db.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	return out, nil
}

// Set inserts a new setting row or overwrites the value and update
// timestamp for an existing key. The operation is atomic per key; the
// "key already exists" case is the expected update path, never an error.
func Set(db *gorm.DB, key, value string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrKeyEmpty
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&models.Setting{Key: key, Value: value})

	return result.Error
}

// Store adapts a gorm connection to the settings store contract used by
// the sync orchestrator, so the orchestrator can be tested against a
// fake store.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store backed by the given gorm connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetAll returns the full key/value snapshot.
func (s *Store) GetAll() (map[string]string, error) {
	return GetAll(s.db)
}

// Set upserts one key.
func (s *Store) Set(key, value string) error {
	return Set(s.db, key, value)
}
