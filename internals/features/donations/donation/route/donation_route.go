package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationController "ranglapunjab_backend/internals/features/donations/donation/controller"
)

// DonationRoutes mounts the donation endpoints. Creation and payment
// completion are public (the gateway calls back unauthenticated); the
// rest sits behind the (opt-in) admin guard.
func DonationRoutes(api fiber.Router, db *gorm.DB, admin fiber.Handler) {
	ctrl := donationController.NewDonationController(db)

	api.Post("/", ctrl.CreateDonation)
	api.Post("/:id/complete-payment", ctrl.CompletePayment)

	api.Get("/", admin, ctrl.GetDonations)
	api.Get("/stats/overview", admin, ctrl.GetDonationStats)
	api.Get("/:id", admin, ctrl.GetDonationByID)
	api.Put("/:id", admin, ctrl.UpdateDonation)
	api.Delete("/:id", admin, ctrl.DeleteDonation)
}
