package routes_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	middlewares "ranglapunjab_backend/internals/middlewares"
	routes "ranglapunjab_backend/internals/route"
)

// The health handler takes its db handle from request locals, where
// DBMiddleware puts it.
func healthCheck(t *testing.T, db *gorm.DB) map[string]interface{} {
	t.Helper()

	app := fiber.New()
	app.Use(middlewares.DBMiddleware(db))
	routes.BaseRoutes(app.Group("/api"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestHealthReportsDatabaseUp(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	mock.ExpectPing()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	body := healthCheck(t, db)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Server is running", body["message"])
	assert.Equal(t, true, body["database"])
}

func TestHealthReportsDatabaseDown(t *testing.T) {
	body := healthCheck(t, nil)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["database"])
}
