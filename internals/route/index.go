package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactRoute "ranglapunjab_backend/internals/features/contacts/contact/route"
	donationRoute "ranglapunjab_backend/internals/features/donations/donation/route"
	authRoute "ranglapunjab_backend/internals/features/users/auth/route"
	middlewares "ranglapunjab_backend/internals/middlewares"
	authMiddleware "ranglapunjab_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the API. The db handle is owned by main and
// injected here; handlers never reach for a global.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(middlewares.DBMiddleware(db))

	admin := authMiddleware.AdminOnly()
	api := app.Group("/api")

	log.Println("[INFO] Mounting health routes...")
	BaseRoutes(api)

	log.Println("[INFO] Mounting auth routes...")
	authRoute.AuthRoutes(api.Group("/auth"))

	log.Println("[INFO] Mounting contact routes...")
	contactRoute.ContactRoutes(api.Group("/contact"), db, admin)

	log.Println("[INFO] Mounting donation routes...")
	donationRoute.DonationRoutes(api.Group("/donations"), db, admin)
}
