package route

import (
	"github.com/gofiber/fiber/v2"

	authController "ranglapunjab_backend/internals/features/users/auth/controller"
	middlewares "ranglapunjab_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router) {
	ctrl := authController.NewAuthController()

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
