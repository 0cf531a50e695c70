package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepanel/sitepanel/internal/auth"
	"github.com/sitepanel/sitepanel/internal/db/models"
)

const testSecret = "test-secret"

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/protected", New(testSecret), func(c *fiber.Ctx) error {
		claims := Claims(c)
		require.NotNil(t, claims)
		return c.JSON(fiber.Map{"email": claims.Email})
	})

	return app
}

func TestMiddleware(t *testing.T) {
	user := &models.AdminUser{ID: 1, Email: "admin@example.com"}
	valid, err := auth.NewToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	expired, err := auth.NewToken(user, testSecret, -time.Minute)
	require.NoError(t, err)

	testCases := []struct {
		name            string
		authorization   string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "missing header",
			authorization:   "",
			expectedStatus:  fiber.StatusUnauthorized,
			expectedMessage: "Access token required",
		},
		{
			name:            "not a bearer header",
			authorization:   "Basic abc",
			expectedStatus:  fiber.StatusUnauthorized,
			expectedMessage: "Access token required",
		},
		{
			name:            "malformed token",
			authorization:   "Bearer not.a.token",
			expectedStatus:  fiber.StatusForbidden,
			expectedMessage: "Invalid or expired token",
		},
		{
			name:            "expired token",
			authorization:   "Bearer " + expired,
			expectedStatus:  fiber.StatusForbidden,
			expectedMessage: "Invalid or expired token",
		},
		{
			name:           "valid token",
			authorization:  "Bearer " + valid,
			expectedStatus: fiber.StatusOK,
		},
	}

	app := setupTestApp(t)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
			if tc.authorization != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.authorization)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var payload map[string]interface{}
			require.NoError(t, json.Unmarshal(body, &payload))

			if tc.expectedMessage != "" {
				assert.Equal(t, tc.expectedMessage, payload["message"])
				assert.Equal(t, false, payload["success"])
				return
			}

			assert.Equal(t, "admin@example.com", payload["email"])
		})
	}
}
