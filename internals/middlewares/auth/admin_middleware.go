package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ranglapunjab_backend/internals/configs"
	helper "ranglapunjab_backend/internals/helpers"
)

// AdminOnly guards the admin endpoints (list, stats, update, delete)
// with a Bearer JWT. Enforcement is opt-in: when JWT_SECRET or
// ADMIN_EMAIL are not configured the routes stay open, matching the
// documented public contract for dev setups.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if configs.JWTSecret == "" || configs.AdminEmail == "" {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return helper.Error(c, fiber.StatusUnauthorized, "Authorization token required")
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims, err := helper.ParseAdminToken(tokenStr)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals("admin_email", claims["sub"])
		return c.Next()
	}
}
