package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"ranglapunjab_backend/internals/features/donations/donation/model"
)

type DonorAddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type DonorRequest struct {
	FirstName string              `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string              `json:"lastName" validate:"required,min=2,max=50"`
	Email     string              `json:"email" validate:"required,email"`
	Phone     string              `json:"phone" validate:"omitempty,phone"`
	Address   DonorAddressRequest `json:"address"`
}

type DonationDetailsRequest struct {
	Amount    float64 `json:"amount" validate:"required,min=1,max=1000000"`
	Currency  string  `json:"currency" validate:"omitempty,oneof=INR USD EUR GBP"`
	Type      string  `json:"type" validate:"omitempty,oneof=one-time monthly yearly"`
	Category  string  `json:"category" validate:"omitempty,oneof=education healthcare infrastructure cultural general emergency"`
	Anonymous bool    `json:"anonymous"`
}

type PaymentRequest struct {
	Method string `json:"method" validate:"required,oneof=razorpay paypal stripe bank-transfer cash cheque"`
}

type CreateDonationRequest struct {
	Donor    DonorRequest           `json:"donor"`
	Donation DonationDetailsRequest `json:"donation"`
	Payment  PaymentRequest         `json:"payment"`
	Notes    string                 `json:"notes" validate:"omitempty,max=500"`
}

func (r *CreateDonationRequest) Normalize() {
	r.Donor.FirstName = strings.TrimSpace(r.Donor.FirstName)
	r.Donor.LastName = strings.TrimSpace(r.Donor.LastName)
	r.Donor.Email = strings.TrimSpace(r.Donor.Email)
	r.Donor.Phone = strings.TrimSpace(r.Donor.Phone)
	r.Notes = strings.TrimSpace(r.Notes)
}

// ToModel applies the schema defaults the validator leaves optional:
// INR, one-time, general, country India, payment pending.
func (r *CreateDonationRequest) ToModel(ipAddress, userAgent string) model.DonationModel {
	m := model.DonationModel{
		Donor: model.Donor{
			FirstName: r.Donor.FirstName,
			LastName:  r.Donor.LastName,
			Email:     r.Donor.Email,
			Address: model.DonorAddress{
				Street:  r.Donor.Address.Street,
				City:    r.Donor.Address.City,
				State:   r.Donor.Address.State,
				ZipCode: r.Donor.Address.ZipCode,
				Country: defaultString(r.Donor.Address.Country, "India"),
			},
		},
		Donation: model.DonationDetails{
			Amount:    r.Donation.Amount,
			Currency:  defaultString(r.Donation.Currency, "INR"),
			Type:      defaultString(r.Donation.Type, "one-time"),
			Category:  defaultString(r.Donation.Category, "general"),
			Anonymous: r.Donation.Anonymous,
		},
		Payment: model.Payment{
			Method: r.Payment.Method,
			Status: model.PaymentStatusPending,
		},
	}

	if r.Donor.Phone != "" {
		m.Donor.Phone = &r.Donor.Phone
	}
	if r.Notes != "" {
		m.DonationNotes = &r.Notes
	}
	if ipAddress != "" {
		m.DonationIPAddress = &ipAddress
	}
	if userAgent != "" {
		m.DonationUserAgent = &userAgent
	}
	return m
}

type UpdateDonationRequest struct {
	Status          *string        `json:"status"`
	TransactionID   *string        `json:"transactionId"`
	GatewayResponse datatypes.JSON `json:"gatewayResponse"`
	Notes           *string        `json:"notes"`
}

type CompletePaymentRequest struct {
	TransactionID   string         `json:"transactionId"`
	GatewayResponse datatypes.JSON `json:"gatewayResponse"`
	Amount          *float64       `json:"amount"`
}

type DonorAddressResponse struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

type DonorResponse struct {
	FirstName string               `json:"firstName"`
	LastName  string               `json:"lastName"`
	FullName  string               `json:"fullName"`
	Email     string               `json:"email"`
	Phone     *string              `json:"phone,omitempty"`
	Address   DonorAddressResponse `json:"address"`
}

type DonationDetailsResponse struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Type      string  `json:"type"`
	Category  string  `json:"category"`
	Anonymous bool    `json:"anonymous"`
}

type PaymentResponse struct {
	Method          string         `json:"method"`
	Status          string         `json:"status"`
	TransactionID   *string        `json:"transactionId,omitempty"`
	GatewayResponse datatypes.JSON `json:"gatewayResponse,omitempty"`
}

type ReceiptResponse struct {
	Number *string    `json:"number,omitempty"`
	Sent   bool       `json:"sent"`
	SentAt *time.Time `json:"sentAt,omitempty"`
}

type DonationResponse struct {
	ID              string                  `json:"id"`
	Donor           DonorResponse           `json:"donor"`
	Donation        DonationDetailsResponse `json:"donation"`
	Payment         PaymentResponse         `json:"payment"`
	Receipt         ReceiptResponse         `json:"receipt"`
	FormattedAmount string                  `json:"formattedAmount"`
	Notes           *string                 `json:"notes,omitempty"`
	IPAddress       *string                 `json:"ipAddress,omitempty"`
	UserAgent       *string                 `json:"userAgent,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func ToDonationResponse(m model.DonationModel) DonationResponse {
	return DonationResponse{
		ID: m.DonationID.String(),
		Donor: DonorResponse{
			FirstName: m.Donor.FirstName,
			LastName:  m.Donor.LastName,
			FullName:  m.Donor.FullName(),
			Email:     m.Donor.Email,
			Phone:     m.Donor.Phone,
			Address: DonorAddressResponse{
				Street:  m.Donor.Address.Street,
				City:    m.Donor.Address.City,
				State:   m.Donor.Address.State,
				ZipCode: m.Donor.Address.ZipCode,
				Country: m.Donor.Address.Country,
			},
		},
		Donation: DonationDetailsResponse{
			Amount:    m.Donation.Amount,
			Currency:  m.Donation.Currency,
			Type:      m.Donation.Type,
			Category:  m.Donation.Category,
			Anonymous: m.Donation.Anonymous,
		},
		Payment: PaymentResponse{
			Method:          m.Payment.Method,
			Status:          m.Payment.Status,
			TransactionID:   m.Payment.TransactionID,
			GatewayResponse: m.Payment.GatewayResponse,
		},
		Receipt: ReceiptResponse{
			Number: m.Receipt.Number,
			Sent:   m.Receipt.Sent,
			SentAt: m.Receipt.SentAt,
		},
		FormattedAmount: m.FormattedAmount(),
		Notes:           m.DonationNotes,
		IPAddress:       m.DonationIPAddress,
		UserAgent:       m.DonationUserAgent,
		CreatedAt:       m.DonationCreatedAt,
		UpdatedAt:       m.DonationUpdatedAt,
	}
}

func ToDonationResponses(ms []model.DonationModel) []DonationResponse {
	out := make([]DonationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToDonationResponse(m))
	}
	return out
}

func defaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
