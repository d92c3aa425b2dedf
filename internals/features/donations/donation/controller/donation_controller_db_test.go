package controller_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"ranglapunjab_backend/internals/features/donations/donation/controller"
)

// newMockApp backs the controller with a sqlmock connection so handler
// paths that read rows can run without a live Postgres.
func newMockApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	app := fiber.New()
	ctrl := controller.NewDonationController(db)
	app.Get("/api/donations/:id", ctrl.GetDonationByID)
	app.Put("/api/donations/:id", ctrl.UpdateDonation)
	app.Delete("/api/donations/:id", ctrl.DeleteDonation)
	app.Post("/api/donations/:id/complete-payment", ctrl.CompletePayment)
	return app, mock
}

func donationRows(id uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"donation_id", "donor_first_name", "donor_last_name", "donor_email",
		"donation_amount", "donation_currency", "donation_type", "donation_category",
		"payment_method", "payment_status",
	}).AddRow(id.String(), "Amit", "Kumar", "a@x.com",
		500.0, "INR", "one-time", "general", "cash", "pending")
}

func emptyDonationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"donation_id"})
}

func sendJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
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

func TestCompletePaymentAmountMismatch(t *testing.T) {
	app, mock := newMockApp(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "donations"`).WillReturnRows(donationRows(id))

	status, body := sendJSON(t, app, "POST", "/api/donations/"+id.String()+"/complete-payment",
		`{"transactionId": "txn_123", "amount": 600}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Amount mismatch", body["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompletePaymentUnknownID(t *testing.T) {
	app, mock := newMockApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "donations"`).WillReturnRows(emptyDonationRows())

	status, body := sendJSON(t, app, "POST", "/api/donations/"+uuid.NewString()+"/complete-payment",
		`{"transactionId": "txn_123"}`)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Donation not found", body["message"])
}

func TestDeleteDonationUnknownID(t *testing.T) {
	app, mock := newMockApp(t)

	mock.ExpectQuery(`SELECT (.+) FROM "donations"`).WillReturnRows(emptyDonationRows())

	status, body := sendJSON(t, app, "DELETE", "/api/donations/"+uuid.NewString(), "")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Donation not found", body["message"])
}

// Malformed ids never reach the database, so a nil handle works here.
func TestDonationLookupInvalidID(t *testing.T) {
	app := fiber.New()
	ctrl := controller.NewDonationController(nil)
	app.Get("/api/donations/:id", ctrl.GetDonationByID)
	app.Delete("/api/donations/:id", ctrl.DeleteDonation)

	for _, method := range []string{"GET", "DELETE"} {
		status, body := sendJSON(t, app, method, "/api/donations/not-a-uuid", "")
		assert.Equal(t, fiber.StatusNotFound, status, method)
		assert.Equal(t, "Donation not found", body["message"], method)
	}
}

// An empty transactionId must stay NULL: storing "" would occupy the
// sparse-unique index and make a second such update collide.
func TestUpdateDonationEmptyTransactionID(t *testing.T) {
	app, mock := newMockApp(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "donations"`).WillReturnRows(donationRows(id))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donations"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	status, body := sendJSON(t, app, "PUT", "/api/donations/"+id.String(),
		`{"transactionId": ""}`)

	require.Equal(t, fiber.StatusOK, status)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	payment, ok := data["payment"].(map[string]interface{})
	require.True(t, ok)
	_, present := payment["transactionId"]
	assert.False(t, present, "empty transactionId must not be stored")
	require.NoError(t, mock.ExpectationsWereMet())
}
