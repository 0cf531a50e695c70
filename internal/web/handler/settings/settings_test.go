package settings

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/auth"
	"github.com/sitepanel/sitepanel/internal/config"
	"github.com/sitepanel/sitepanel/internal/db/models"
	authmw "github.com/sitepanel/sitepanel/internal/web/middleware/auth"
)

const testSecret = "test-secret"

type env struct {
	app       *fiber.App
	db        *gorm.DB
	uploadDir string
	token     string
}

func setupTestEnv(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(&models.Setting{}), "failed to migrate test database")

	uploadDir := t.TempDir()
	cfg := &config.Config{
		Auth:   config.Auth{JWTSecret: testSecret, TokenExpiry: time.Hour},
		Upload: config.Upload{Dir: uploadDir},
	}

	app := fiber.New()
	svc := Service{}
	require.NoError(t, svc.Init(app, cfg, db, authmw.New(testSecret)))

	token, err := auth.NewToken(&models.AdminUser{ID: 1, Email: "admin@example.com"}, testSecret, time.Hour)
	require.NoError(t, err)

	return &env{app: app, db: db, uploadDir: uploadDir, token: token}
}

func (e *env) put(t *testing.T, body, token string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPut, Path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))

	return resp.StatusCode, payload
}

func (e *env) seed(t *testing.T, key, value string) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.Setting{Key: key, Value: value}).Error)
}

func TestGetSettings(t *testing.T) {
	e := setupTestEnv(t)
	e.seed(t, "company_name", "Acme")
	e.seed(t, "logo_image", "/uploads/logo.png")

	req := httptest.NewRequest(fiber.MethodGet, Path, nil)
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, map[string]string{
		"company_name": "Acme",
		"logo_image":   "/uploads/logo.png",
	}, payload.Data)
}

func TestPutSettingsRequiresAuth(t *testing.T) {
	e := setupTestEnv(t)

	status, payload := e.put(t, `{"company_name":"Acme"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Access token required", payload["message"])
}

func TestPutSettingsEmptyBody(t *testing.T) {
	e := setupTestEnv(t)

	for name, body := range map[string]string{
		"empty object": `{}`,
		"not json":     `not-json`,
	} {
		t.Run(name, func(t *testing.T) {
			status, payload := e.put(t, body, e.token)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, MsgSettingsRequired, payload["message"])
			assert.Equal(t, false, payload["success"])
		})
	}
}

func TestPutSettingsNestedValueRejected(t *testing.T) {
	e := setupTestEnv(t)

	status, payload := e.put(t, `{"theme":{"color":"red"}}`, e.token)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, MsgSettingsRequired, payload["message"])
}

func TestPutSettingsUpdateWithImageCleanup(t *testing.T) {
	e := setupTestEnv(t)
	e.seed(t, "home_about_image", "/uploads/old-banner.jpg")
	e.seed(t, "company_name", "Old Co")

	oldFile := filepath.Join(e.uploadDir, "old-banner.jpg")
	require.NoError(t, os.WriteFile(oldFile, []byte("jpg"), 0o600))

	status, payload := e.put(t, `{"home_about_image":"/uploads/new-banner.jpg","company_name":"Acme"}`, e.token)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Settings updated successfully", payload["message"])

	var setting models.Setting
	require.NoError(t, e.db.Where("setting_key = ?", "home_about_image").First(&setting).Error)
	assert.Equal(t, "/uploads/new-banner.jpg", setting.Value)

	setting = models.Setting{}
	require.NoError(t, e.db.Where("setting_key = ?", "company_name").First(&setting).Error)
	assert.Equal(t, "Acme", setting.Value)

	assert.NoFileExists(t, oldFile, "replaced image must be cleaned up")
}

func TestPutSettingsCoercesPrimitives(t *testing.T) {
	e := setupTestEnv(t)

	status, _ := e.put(t, `{"items_per_page":12,"maintenance":false,"note":null}`, e.token)
	require.Equal(t, fiber.StatusOK, status)

	var rows []models.Setting
	require.NoError(t, e.db.Order("setting_key").Find(&rows).Error)
	require.Len(t, rows, 3)
	assert.Equal(t, "12", rows[0].Value)
	assert.Equal(t, "false", rows[1].Value)
	assert.Equal(t, "", rows[2].Value)
}

func TestPutSettingsInsertIsIdempotent(t *testing.T) {
	e := setupTestEnv(t)

	for i := 0; i < 2; i++ {
		status, _ := e.put(t, `{"company_name":"Acme"}`, e.token)
		require.Equal(t, fiber.StatusOK, status)
	}

	var count int64
	require.NoError(t, e.db.Model(&models.Setting{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
