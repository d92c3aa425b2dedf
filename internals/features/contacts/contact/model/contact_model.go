package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContactStatusPending = "pending"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
	ContactStatusClosed  = "closed"
)

var ContactSubjects = []string{"general", "partnership", "volunteer", "donation", "other"}
var ContactStatuses = []string{ContactStatusPending, ContactStatusRead, ContactStatusReplied, ContactStatusClosed}

func IsValidContactStatus(s string) bool {
	for _, v := range ContactStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type ContactModel struct {
	ContactID uuid.UUID `gorm:"column:contact_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	ContactFirstName string `gorm:"column:contact_first_name;type:varchar(50);not null" json:"firstName"`
	ContactLastName  string `gorm:"column:contact_last_name;type:varchar(50);not null" json:"lastName"`
	ContactEmail     string `gorm:"column:contact_email;type:varchar(255);not null;index:idx_contacts_email" json:"email"`

	ContactSubject string `gorm:"column:contact_subject;type:varchar(20);not null;default:'general'" json:"subject"`
	ContactMessage string `gorm:"column:contact_message;type:text;not null" json:"message"`

	ContactStatus string  `gorm:"column:contact_status;type:varchar(10);not null;default:'pending';index:idx_contacts_status" json:"status"`
	ContactNotes  *string `gorm:"column:contact_notes;type:varchar(1000)" json:"notes,omitempty"`

	ContactIPAddress *string `gorm:"column:contact_ip_address;type:varchar(45)" json:"ipAddress,omitempty"`
	ContactUserAgent *string `gorm:"column:contact_user_agent;type:text" json:"userAgent,omitempty"`

	ContactCreatedAt time.Time `gorm:"column:contact_created_at;autoCreateTime" json:"createdAt"`
	ContactUpdatedAt time.Time `gorm:"column:contact_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (ContactModel) TableName() string {
	return "contacts"
}

// BeforeSave normalizes the record the same way on every save:
// capitalized names, lowercase email.
func (m *ContactModel) BeforeSave(tx *gorm.DB) error {
	m.ContactFirstName = CapitalizeName(m.ContactFirstName)
	m.ContactLastName = CapitalizeName(m.ContactLastName)
	m.ContactEmail = strings.ToLower(strings.TrimSpace(m.ContactEmail))
	return nil
}

func (m *ContactModel) FullName() string {
	return m.ContactFirstName + " " + m.ContactLastName
}

// CapitalizeName uppercases the first letter and lowercases the rest.
// Idempotent across repeated saves.
func CapitalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
