package model

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
	PaymentStatusFailed     = "failed"
	PaymentStatusRefunded   = "refunded"
)

var (
	Currencies      = []string{"INR", "USD", "EUR", "GBP"}
	DonationTypes   = []string{"one-time", "monthly", "yearly"}
	Categories      = []string{"education", "healthcare", "infrastructure", "cultural", "general", "emergency"}
	PaymentMethods  = []string{"razorpay", "paypal", "stripe", "bank-transfer", "cash", "cheque"}
	PaymentStatuses = []string{PaymentStatusPending, PaymentStatusProcessing, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded}
)

func IsValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type DonorAddress struct {
	Street  string `gorm:"column:street;type:varchar(255)" json:"street,omitempty"`
	City    string `gorm:"column:city;type:varchar(100)" json:"city,omitempty"`
	State   string `gorm:"column:state;type:varchar(100)" json:"state,omitempty"`
	ZipCode string `gorm:"column:zip_code;type:varchar(20)" json:"zipCode,omitempty"`
	Country string `gorm:"column:country;type:varchar(100);default:'India'" json:"country,omitempty"`
}

type Donor struct {
	FirstName string       `gorm:"column:first_name;type:varchar(50);not null" json:"firstName"`
	LastName  string       `gorm:"column:last_name;type:varchar(50);not null" json:"lastName"`
	Email     string       `gorm:"column:email;type:varchar(255);not null;index:idx_donations_donor_email" json:"email"`
	Phone     *string      `gorm:"column:phone;type:varchar(20)" json:"phone,omitempty"`
	Address   DonorAddress `gorm:"embedded;embeddedPrefix:address_" json:"address"`
}

func (d Donor) FullName() string {
	return d.FirstName + " " + d.LastName
}

type DonationDetails struct {
	Amount    float64 `gorm:"column:amount;type:numeric(12,2);not null;check:donation_amount >= 1 AND donation_amount <= 1000000" json:"amount"`
	Currency  string  `gorm:"column:currency;type:varchar(3);not null;default:'INR'" json:"currency"`
	Type      string  `gorm:"column:type;type:varchar(10);not null;default:'one-time'" json:"type"`
	Category  string  `gorm:"column:category;type:varchar(20);not null;default:'general';index:idx_donations_category" json:"category"`
	Anonymous bool    `gorm:"column:anonymous;not null;default:false" json:"anonymous"`
}

type Payment struct {
	Method string `gorm:"column:method;type:varchar(20);not null" json:"method"`
	Status string `gorm:"column:status;type:varchar(15);not null;default:'pending';index:idx_donations_payment_status" json:"status"`

	// NULL does not collide; Postgres unique indexes are sparse over
	// nullable columns.
	TransactionID   *string        `gorm:"column:transaction_id;type:varchar(100);uniqueIndex:uq_donations_transaction_id" json:"transactionId,omitempty"`
	GatewayResponse datatypes.JSON `gorm:"column:gateway_response;type:jsonb" json:"gatewayResponse,omitempty"`
}

type Receipt struct {
	Number *string    `gorm:"column:number;type:varchar(30);uniqueIndex:uq_donations_receipt_number" json:"number,omitempty"`
	Sent   bool       `gorm:"column:sent;not null;default:false" json:"sent"`
	SentAt *time.Time `gorm:"column:sent_at" json:"sentAt,omitempty"`
}

type DonationModel struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Donor    Donor           `gorm:"embedded;embeddedPrefix:donor_" json:"donor"`
	Donation DonationDetails `gorm:"embedded;embeddedPrefix:donation_" json:"donation"`
	Payment  Payment         `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	Receipt  Receipt         `gorm:"embedded;embeddedPrefix:receipt_" json:"receipt"`

	DonationNotes     *string `gorm:"column:notes;type:varchar(500)" json:"notes,omitempty"`
	DonationIPAddress *string `gorm:"column:ip_address;type:varchar(45)" json:"ipAddress,omitempty"`
	DonationUserAgent *string `gorm:"column:user_agent;type:text" json:"userAgent,omitempty"`

	DonationCreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	DonationUpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (DonationModel) TableName() string {
	return "donations"
}

// BeforeSave normalizes donor names/email and generates the receipt
// number exactly once, when the payment completes.
func (m *DonationModel) BeforeSave(tx *gorm.DB) error {
	m.Donor.FirstName = CapitalizeName(m.Donor.FirstName)
	m.Donor.LastName = CapitalizeName(m.Donor.LastName)
	m.Donor.Email = strings.ToLower(strings.TrimSpace(m.Donor.Email))

	if m.Payment.Status == PaymentStatusCompleted && (m.Receipt.Number == nil || *m.Receipt.Number == "") {
		number := GenerateReceiptNumber(time.Now())
		m.Receipt.Number = &number
	}
	return nil
}

// GenerateReceiptNumber builds RPS-YYYYMMDD-NNNN with a random 4-digit
// suffix. Not collision-proof under same-day concurrent completions;
// the sparse-unique index is the authority and a collision surfaces as
// a save failure without retry.
func GenerateReceiptNumber(t time.Time) string {
	return fmt.Sprintf("RPS-%s-%04d", t.Format("20060102"), rand.Intn(10000))
}

// FormattedAmount renders the amount with en-IN digit grouping and the
// donation's own currency symbol (e.g. ₹1,00,000.00).
func (m *DonationModel) FormattedAmount() string {
	return FormatAmount(m.Donation.Amount, m.Donation.Currency)
}

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

func FormatAmount(amount float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	fixed := strconv.FormatFloat(amount, 'f', 2, 64)
	parts := strings.SplitN(fixed, ".", 2)
	return symbol + groupIndian(parts[0]) + "." + parts[1]
}

// groupIndian inserts en-IN thousands separators: last 3 digits, then
// groups of 2 (1,00,000).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

// CapitalizeName uppercases the first letter and lowercases the rest.
func CapitalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
