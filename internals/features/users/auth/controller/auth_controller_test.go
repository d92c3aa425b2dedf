package controller_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ranglapunjab_backend/internals/configs"
	authController "ranglapunjab_backend/internals/features/users/auth/controller"
	helper "ranglapunjab_backend/internals/helpers"
	authMiddleware "ranglapunjab_backend/internals/middlewares/auth"
)

func newAuthApp() *fiber.App {
	app := fiber.New()
	ctrl := authController.NewAuthController()
	app.Post("/api/auth/login", ctrl.Login)
	app.Get("/api/protected", authMiddleware.AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func configureAdmin(t *testing.T, password string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	configs.JWTSecret = "test-secret"
	configs.AdminEmail = "admin@example.com"
	configs.AdminPasswordHash = string(hash)

	t.Cleanup(func() {
		configs.JWTSecret = ""
		configs.AdminEmail = ""
		configs.AdminPasswordHash = ""
	})
}

func login(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestLoginNotConfigured(t *testing.T) {
	app := newAuthApp()

	status, body := login(t, app, `{"email":"admin@example.com","password":"secret"}`)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, false, body["success"])
}

func TestLoginWrongPassword(t *testing.T) {
	configureAdmin(t, "correct-horse")
	app := newAuthApp()

	status, _ := login(t, app, `{"email":"admin@example.com","password":"wrong"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginWrongEmail(t *testing.T) {
	configureAdmin(t, "correct-horse")
	app := newAuthApp()

	status, _ := login(t, app, `{"email":"intruder@example.com","password":"correct-horse"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginIssuesUsableToken(t *testing.T) {
	configureAdmin(t, "correct-horse")
	app := newAuthApp()

	status, body := login(t, app, `{"email":"Admin@Example.com","password":"correct-horse"}`)
	require.Equal(t, fiber.StatusOK, status)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)

	claims, err := helper.ParseAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims["sub"])

	// The issued token passes the admin guard.
	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminGuard(t *testing.T) {
	configureAdmin(t, "correct-horse")
	app := newAuthApp()

	// No token.
	resp, err := app.Test(httptest.NewRequest("GET", "/api/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Garbage token.
	req := httptest.NewRequest("GET", "/api/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGuardOpenWhenUnconfigured(t *testing.T) {
	app := newAuthApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
