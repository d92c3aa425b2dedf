package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "ranglapunjab_backend/internals/features/contacts/contact/controller"
)

// ContactRoutes mounts the contact endpoints. The form submission is
// public; everything else sits behind the (opt-in) admin guard.
func ContactRoutes(api fiber.Router, db *gorm.DB, admin fiber.Handler) {
	ctrl := contactController.NewContactController(db)

	api.Post("/", ctrl.CreateContact)

	api.Get("/", admin, ctrl.GetContacts)
	api.Get("/stats/overview", admin, ctrl.GetContactStats)
	api.Get("/:id", admin, ctrl.GetContactByID)
	api.Put("/:id", admin, ctrl.UpdateContact)
	api.Delete("/:id", admin, ctrl.DeleteContact)
}
