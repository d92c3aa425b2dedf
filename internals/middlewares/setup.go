package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "ranglapunjab_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the baseline middleware chain: recovery first,
// then logging, security headers, CORS and the global rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(SecurityMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
