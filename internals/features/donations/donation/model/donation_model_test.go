package model

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var receiptPattern = regexp.MustCompile(`^RPS-\d{8}-\d{4}$`)

func TestGenerateReceiptNumber(t *testing.T) {
	at := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	number := GenerateReceiptNumber(at)

	assert.Regexp(t, receiptPattern, number)
	assert.Equal(t, "RPS-20250307-", number[:13])
}

func TestBeforeSaveGeneratesReceiptOnCompletion(t *testing.T) {
	donation := DonationModel{
		Donor: Donor{FirstName: "amit", LastName: "kumar", Email: "A@X.COM"},
		Donation: DonationDetails{
			Amount:   500,
			Currency: "INR",
		},
		Payment: Payment{Method: "cash", Status: PaymentStatusCompleted},
	}

	require.NoError(t, donation.BeforeSave(nil))

	require.NotNil(t, donation.Receipt.Number)
	assert.Regexp(t, receiptPattern, *donation.Receipt.Number)
	assert.Equal(t, "Amit", donation.Donor.FirstName)
	assert.Equal(t, "Kumar", donation.Donor.LastName)
	assert.Equal(t, "a@x.com", donation.Donor.Email)

	// Generated exactly once — a second save keeps the number.
	existing := *donation.Receipt.Number
	require.NoError(t, donation.BeforeSave(nil))
	assert.Equal(t, existing, *donation.Receipt.Number)
}

func TestBeforeSaveSkipsReceiptWhilePending(t *testing.T) {
	donation := DonationModel{
		Donor:    Donor{FirstName: "amit", LastName: "kumar", Email: "a@x.com"},
		Donation: DonationDetails{Amount: 500},
		Payment:  Payment{Method: "cash", Status: PaymentStatusPending},
	}

	require.NoError(t, donation.BeforeSave(nil))
	assert.Nil(t, donation.Receipt.Number)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{500, "INR", "₹500.00"},
		{1000, "INR", "₹1,000.00"},
		{100000, "INR", "₹1,00,000.00"},
		{1000000, "INR", "₹10,00,000.00"},
		{1234.5, "USD", "$1,234.50"},
		{99.99, "EUR", "€99.99"},
		{42, "GBP", "£42.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.amount, tt.currency), "%v %s", tt.amount, tt.currency)
	}
}

func TestFormattedAmountUsesOwnCurrency(t *testing.T) {
	donation := DonationModel{
		Donation: DonationDetails{Amount: 500, Currency: "INR"},
	}
	assert.Equal(t, "₹500.00", donation.FormattedAmount())
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, s := range PaymentStatuses {
		assert.True(t, IsValidPaymentStatus(s))
	}
	assert.False(t, IsValidPaymentStatus("settled"))
}
