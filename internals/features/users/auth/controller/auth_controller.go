package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"ranglapunjab_backend/internals/configs"
	"ranglapunjab_backend/internals/features/users/auth/dto"
	helper "ranglapunjab_backend/internals/helpers"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login checks the configured admin credentials and issues a JWT for
// the admin endpoints.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	if configs.JWTSecret == "" || configs.AdminEmail == "" || configs.AdminPasswordHash == "" {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Admin login is not configured")
	}

	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, "Validation error", helper.TranslateValidationErrors(err))
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email != strings.ToLower(configs.AdminEmail) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(configs.AdminPasswordHash), []byte(body.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, expiresAt, err := helper.GenerateAdminToken(email)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Login successful", dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
