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

	"ranglapunjab_backend/internals/features/donations/donation/controller"
)

// Validation failures reject before the database is touched — nothing
// is persisted and a nil handle suffices.
func newTestApp() *fiber.App {
	app := fiber.New()
	ctrl := controller.NewDonationController(nil)
	app.Post("/api/donations", ctrl.CreateDonation)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
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

func errorList(t *testing.T, body map[string]interface{}) []string {
	t.Helper()

	raw, ok := body["errors"].([]interface{})
	require.True(t, ok, "expected errors array, got %v", body)

	out := make([]string, 0, len(raw))
	for _, e := range raw {
		out = append(out, e.(string))
	}
	return out
}

func TestCreateDonationAmountOutOfRange(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name    string
		amount  string
		wantMsg string
	}{
		{"below minimum", "0.5", "donation.amount must be at least 1"},
		{"above maximum", "2000000", "donation.amount must be no more than 1000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := postJSON(t, app, "/api/donations", `{
				"donor": {"firstName": "Amit", "lastName": "Kumar", "email": "a@x.com"},
				"donation": {"amount": `+tt.amount+`},
				"payment": {"method": "cash"}
			}`)

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Please fix the following errors:", body["message"])
			assert.Contains(t, errorList(t, body), tt.wantMsg)
		})
	}
}

func TestCreateDonationMissingMethod(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/api/donations", `{
		"donor": {"firstName": "Amit", "lastName": "Kumar", "email": "a@x.com"},
		"donation": {"amount": 500}
	}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, errorList(t, body), "payment.method is required")
}

func TestCreateDonationInvalidPhone(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/api/donations", `{
		"donor": {"firstName": "Amit", "lastName": "Kumar", "email": "a@x.com", "phone": "007"},
		"donation": {"amount": 500},
		"payment": {"method": "cash"}
	}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, errorList(t, body), "Please enter a valid phone number")
}

func TestCreateDonationMalformedBody(t *testing.T) {
	app := newTestApp()

	status, body := postJSON(t, app, "/api/donations", `[]`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}
