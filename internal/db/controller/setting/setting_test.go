package setting

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedSettings inserts test data into the database.
func seedSettings(t *testing.T, db *gorm.DB, settings []models.Setting) {
	t.Helper()
	for _, setting := range settings {
		err := db.Create(&setting).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGetAll(t *testing.T) {
	testCases := []struct {
		name          string
		nilDB         bool
		seedData      []models.Setting
		expectedError error
		expectedValue map[string]string
	}{
		{
			name:          "nil database",
			nilDB:         true,
			expectedError: ErrDBNil,
		},
		{
			name:          "empty store yields empty map",
			expectedValue: map[string]string{},
		},
		{
			name: "full snapshot",
			seedData: []models.Setting{
				{Key: "company_name", Value: "Acme"},
				{Key: "logo_image", Value: "/uploads/logo.png"},
			},
			expectedValue: map[string]string{
				"company_name": "Acme",
				"logo_image":   "/uploads/logo.png",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var db *gorm.DB
			if !tc.nilDB {
				db = setupTestDB(t)
				seedSettings(t, db, tc.seedData)
			}

			value, err := GetAll(db)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedValue, value)
		})
	}
}

func TestSet(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		assert.ErrorIs(t, Set(nil, "company_name", "Acme"), ErrDBNil)
	})

	t.Run("empty key", func(t *testing.T) {
		db := setupTestDB(t)
		assert.ErrorIs(t, Set(db, "", "value"), ErrKeyEmpty)
	})

	t.Run("insert then update", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, Set(db, "company_name", "Acme"))

		all, err := GetAll(db)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"company_name": "Acme"}, all)

		// second write for the same key overwrites, never duplicates
		require.NoError(t, Set(db, "company_name", "Acme Ltd"))

		var count int64
		require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		all, err = GetAll(db)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"company_name": "Acme Ltd"}, all)
	})

	t.Run("repeated identical writes are idempotent", func(t *testing.T) {
		db := setupTestDB(t)

		for i := 0; i < 3; i++ {
			require.NoError(t, Set(db, "tagline", "hello"))
		}

		var count int64
		require.NoError(t, db.Model(&models.Setting{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestStore(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	require.NoError(t, store.Set("company_name", "Acme"))

	all, err := store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"company_name": "Acme"}, all)
}
