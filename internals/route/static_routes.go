package routes

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ranglapunjab_backend/internals/configs"
)

// SetupStatic serves the prebuilt frontend for non-API paths when a
// build exists, else returns a structured placeholder. Must be
// registered after the API routes: it catches everything left over.
func SetupStatic(app *fiber.App) {
	dist := configs.GetEnv("FRONTEND_DIST", "./Frontend/dist")
	index := filepath.Join(dist, "index.html")

	if info, err := os.Stat(dist); err == nil && info.IsDir() {
		app.Static("/", dist)

		app.Use(func(c *fiber.Ctx) error {
			if strings.HasPrefix(c.Path(), "/api/") {
				return apiNotFound(c)
			}
			// Client-side router owns every other path.
			return c.SendFile(index)
		})
		return
	}

	log.Println("⚠️ Frontend build not found. Serving API only.")
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return apiNotFound(c)
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Frontend not built. Please build the frontend first.",
			"error":   "The frontend application has not been built yet.",
		})
	})
}

func apiNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "API endpoint not found",
		"error":   "The requested API endpoint does not exist",
		"path":    c.Path(),
	})
}
