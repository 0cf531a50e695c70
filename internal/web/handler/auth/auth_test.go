package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sitepanel/sitepanel/internal/config"
	"github.com/sitepanel/sitepanel/internal/db/models"
	authmw "github.com/sitepanel/sitepanel/internal/web/middleware/auth"
)

const (
	testSecret   = "test-secret"
	testPassword = "correct horse battery staple"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(&models.AdminUser{}), "failed to migrate test database")

	require.NoError(t, db.Create(&models.AdminUser{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: models.HashPassword(testPassword),
	}).Error)

	cfg := &config.Config{
		Auth: config.Auth{JWTSecret: testSecret, TokenExpiry: time.Hour},
	}

	app := fiber.New()
	svc := Service{}
	require.NoError(t, svc.Init(app, cfg, db, authmw.New(testSecret)))

	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, Path+"/login", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))

	return resp.StatusCode, payload
}

func TestLogin(t *testing.T) {
	app := setupTestApp(t)

	testCases := []struct {
		name            string
		body            string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "missing fields",
			body:            `{}`,
			expectedStatus:  fiber.StatusBadRequest,
			expectedMessage: "Email and password required",
		},
		{
			name:            "invalid email format",
			body:            `{"email":"not-an-email","password":"x"}`,
			expectedStatus:  fiber.StatusBadRequest,
			expectedMessage: "Email and password required",
		},
		{
			name:            "unknown account",
			body:            `{"email":"ghost@example.com","password":"x"}`,
			expectedStatus:  fiber.StatusUnauthorized,
			expectedMessage: "Invalid credentials",
		},
		{
			name:            "wrong password",
			body:            `{"email":"admin@example.com","password":"wrong"}`,
			expectedStatus:  fiber.StatusUnauthorized,
			expectedMessage: "Invalid credentials",
		},
		{
			name:           "valid credentials",
			body:           `{"email":"admin@example.com","password":"` + testPassword + `"}`,
			expectedStatus: fiber.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := postLogin(t, app, tc.body)

			assert.Equal(t, tc.expectedStatus, status)

			if tc.expectedMessage != "" {
				assert.Equal(t, false, payload["success"])
				assert.Equal(t, tc.expectedMessage, payload["message"])
				return
			}

			assert.Equal(t, true, payload["success"])
			assert.NotEmpty(t, payload["token"])

			user, ok := payload["user"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "admin@example.com", user["email"])
			assert.Equal(t, "Admin", user["name"])
		})
	}
}

func TestVerify(t *testing.T) {
	app := setupTestApp(t)

	status, payload := postLogin(t, app, `{"email":"admin@example.com","password":"`+testPassword+`"}`)
	require.Equal(t, fiber.StatusOK, status)
	token, _ := payload["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(fiber.MethodGet, Path+"/verify", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var verified map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &verified))
	assert.Equal(t, true, verified["success"])

	user, ok := verified["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", user["email"])
}
