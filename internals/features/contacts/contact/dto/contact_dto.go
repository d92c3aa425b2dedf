package dto

import (
	"strings"
	"time"

	"ranglapunjab_backend/internals/features/contacts/contact/model"
)

type CreateContactRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Subject   string `json:"subject" validate:"required,oneof=general partnership volunteer donation other"`
	Message   string `json:"message" validate:"required,min=10,max=1000"`
}

// Normalize trims the submitted fields before validation, mirroring the
// schema's trim rules.
func (r *CreateContactRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

func (r *CreateContactRequest) ToModel(ipAddress, userAgent string) model.ContactModel {
	m := model.ContactModel{
		ContactFirstName: r.FirstName,
		ContactLastName:  r.LastName,
		ContactEmail:     r.Email,
		ContactSubject:   r.Subject,
		ContactMessage:   r.Message,
		ContactStatus:    model.ContactStatusPending,
	}
	if ipAddress != "" {
		m.ContactIPAddress = &ipAddress
	}
	if userAgent != "" {
		m.ContactUserAgent = &userAgent
	}
	return m
}

type UpdateContactRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type ContactResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	IPAddress *string   `json:"ipAddress,omitempty"`
	UserAgent *string   `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToContactResponse(m model.ContactModel) ContactResponse {
	return ContactResponse{
		ID:        m.ContactID.String(),
		FirstName: m.ContactFirstName,
		LastName:  m.ContactLastName,
		FullName:  m.FullName(),
		Email:     m.ContactEmail,
		Subject:   m.ContactSubject,
		Message:   m.ContactMessage,
		Status:    m.ContactStatus,
		Notes:     m.ContactNotes,
		IPAddress: m.ContactIPAddress,
		UserAgent: m.ContactUserAgent,
		CreatedAt: m.ContactCreatedAt,
		UpdatedAt: m.ContactUpdatedAt,
	}
}

func ToContactResponses(ms []model.ContactModel) []ContactResponse {
	out := make([]ContactResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToContactResponse(m))
	}
	return out
}
