package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "ranglapunjab_backend/internals/databases"
)

var startTime = time.Now()

func BaseRoutes(api fiber.Router) {
	api.Get("/health", func(c *fiber.Ctx) error {
		db, _ := c.Locals("db").(*gorm.DB)
		dbOK := db != nil && database.Ping(db) == nil

		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().Format(time.RFC3339),
			"uptime":    time.Since(startTime).Seconds(),
			"database":  dbOK,
		})
	})
}
