package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
)

// SecurityMiddleware sets baseline security headers.
func SecurityMiddleware() fiber.Handler {
	return helmet.New()
}
