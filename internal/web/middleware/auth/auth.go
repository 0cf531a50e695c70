// Package auth provides the bearer-token middleware guarding admin routes.
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sitepanel/sitepanel/internal/auth"
	"github.com/sitepanel/sitepanel/internal/web/handler"
)

// ClaimsKey is the fiber.Locals key the validated claims are stored under.
const ClaimsKey = "admin"

// New returns a middleware validating the Authorization bearer token
// and storing the admin claims in fiber.Locals.
func New(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return handler.Error(c, fiber.StatusUnauthorized, "Access token required")
		}

		claims, err := auth.ParseToken(token, secret)
		if err != nil {
			return handler.Error(c, fiber.StatusForbidden, "Invalid or expired token")
		}

		c.Locals(ClaimsKey, claims)

		return c.Next()
	}
}

// Claims returns the validated admin claims stored by the middleware,
// or nil when the request was not authenticated.
func Claims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(ClaimsKey).(*auth.Claims)
	return claims
}

func extractToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}
