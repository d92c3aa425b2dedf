package seeds

import (
	"log"

	"gorm.io/gorm"

	contactModel "ranglapunjab_backend/internals/features/contacts/contact/model"
	donationModel "ranglapunjab_backend/internals/features/donations/donation/model"
)

// Run inserts a handful of sample records for local development.
// Only fires on empty tables, and only when SEED=true.
func Run(db *gorm.DB) {
	seedContacts(db)
	seedDonations(db)
}

func seedContacts(db *gorm.DB) {
	var count int64
	if err := db.Model(&contactModel.ContactModel{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	contacts := []contactModel.ContactModel{
		{
			ContactFirstName: "amit",
			ContactLastName:  "kumar",
			ContactEmail:     "amit.kumar@example.com",
			ContactSubject:   "volunteer",
			ContactMessage:   "I would like to volunteer for the next cultural event.",
			ContactStatus:    contactModel.ContactStatusPending,
		},
		{
			ContactFirstName: "priya",
			ContactLastName:  "singh",
			ContactEmail:     "priya.singh@example.com",
			ContactSubject:   "general",
			ContactMessage:   "Where can I find more information about your programs?",
			ContactStatus:    contactModel.ContactStatusRead,
		},
	}

	if err := db.Create(&contacts).Error; err != nil {
		log.Printf("seed contacts err: %v", err)
		return
	}
	log.Printf("✅ Seeded %d contacts", len(contacts))
}

func seedDonations(db *gorm.DB) {
	var count int64
	if err := db.Model(&donationModel.DonationModel{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	donations := []donationModel.DonationModel{
		{
			Donor: donationModel.Donor{
				FirstName: "harpreet",
				LastName:  "kaur",
				Email:     "harpreet.kaur@example.com",
				Address:   donationModel.DonorAddress{City: "Amritsar", State: "Punjab", Country: "India"},
			},
			Donation: donationModel.DonationDetails{
				Amount:   500,
				Currency: "INR",
				Type:     "one-time",
				Category: "education",
			},
			Payment: donationModel.Payment{
				Method: "cash",
				Status: donationModel.PaymentStatusPending,
			},
		},
		{
			Donor: donationModel.Donor{
				FirstName: "gurdeep",
				LastName:  "sandhu",
				Email:     "gurdeep.sandhu@example.com",
				Address:   donationModel.DonorAddress{Country: "India"},
			},
			Donation: donationModel.DonationDetails{
				Amount:   2500,
				Currency: "INR",
				Type:     "monthly",
				Category: "healthcare",
			},
			Payment: donationModel.Payment{
				Method: "bank-transfer",
				Status: donationModel.PaymentStatusCompleted,
			},
		},
	}

	if err := db.Create(&donations).Error; err != nil {
		log.Printf("seed donations err: %v", err)
		return
	}
	log.Printf("✅ Seeded %d donations", len(donations))
}
