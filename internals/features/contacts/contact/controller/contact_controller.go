package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ranglapunjab_backend/internals/features/contacts/contact/dto"
	"ranglapunjab_backend/internals/features/contacts/contact/model"
	helper "ranglapunjab_backend/internals/helpers"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// =============================
// ➕ Submit contact form
// =============================
func (ctrl *ContactController) CreateContact(c *fiber.Ctx) error {
	var body dto.CreateContactRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	body.Normalize()
	if err := helper.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, "Validation error", helper.TranslateValidationErrors(err))
	}

	info := helper.GetClientInfo(c)
	contact := body.ToModel(info.IPAddress, info.UserAgent)

	if err := ctrl.DB.Create(&contact).Error; err != nil {
		log.Printf("contact submission error: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error. Please try again later.")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Thank you! Your message has been sent successfully.",
		fiber.Map{
			"id":          contact.ContactID,
			"fullName":    contact.FullName(),
			"subject":     contact.ContactSubject,
			"submittedAt": contact.ContactCreatedAt,
		})
}

// =============================
// 📄 List contact submissions
// =============================
func (ctrl *ContactController) GetContacts(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	q := ctrl.DB.Model(&model.ContactModel{})

	if status := c.Query("status"); status != "" {
		q = q.Where("contact_status = ?", status)
	}
	if subject := c.Query("subject"); subject != "" {
		q = q.Where("contact_subject = ?", subject)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"contact_first_name ILIKE ? OR contact_last_name ILIKE ? OR contact_email ILIKE ? OR contact_message ILIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var contacts []model.ContactModel
	if err := q.Order("contact_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&contacts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       dto.ToContactResponses(contacts),
		"pagination": helper.BuildPageMeta(total, p),
	})
}

// =============================
// 📊 Contact statistics
// =============================

type contactOverview struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
	Read    int64 `json:"read"`
	Replied int64 `json:"replied"`
	Closed  int64 `json:"closed"`
}

type subjectBucket struct {
	Subject string `json:"subject"`
	Count   int64  `json:"count"`
}

type monthBucket struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

func (ctrl *ContactController) GetContactStats(c *fiber.Ctx) error {
	var overview contactOverview
	if err := ctrl.DB.Model(&model.ContactModel{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE contact_status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE contact_status = 'read') AS read,
			COUNT(*) FILTER (WHERE contact_status = 'replied') AS replied,
			COUNT(*) FILTER (WHERE contact_status = 'closed') AS closed`).
		Scan(&overview).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var bySubject []subjectBucket
	if err := ctrl.DB.Model(&model.ContactModel{}).
		Select("contact_subject AS subject, COUNT(*) AS count").
		Group("contact_subject").
		Order("count DESC").
		Scan(&bySubject).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	// Most recent 12 year+month buckets.
	var byMonth []monthBucket
	if err := ctrl.DB.Model(&model.ContactModel{}).
		Select("EXTRACT(YEAR FROM contact_created_at)::int AS year, EXTRACT(MONTH FROM contact_created_at)::int AS month, COUNT(*) AS count").
		Group("1, 2").
		Order("year DESC, month DESC").
		Limit(12).
		Scan(&byMonth).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "", fiber.Map{
		"overview":  overview,
		"bySubject": bySubject,
		"byMonth":   byMonth,
	})
}

// =============================
// 🔍 Get contact by id
// =============================
func (ctrl *ContactController) GetContactByID(c *fiber.Ctx) error {
	contact, err := ctrl.findByID(c.Params("id"))
	if err != nil {
		return ctrl.notFoundOr500(c, err)
	}
	return helper.Success(c, "", dto.ToContactResponse(*contact))
}

// =============================
// 🔄 Update contact status/notes
// =============================
func (ctrl *ContactController) UpdateContact(c *fiber.Ctx) error {
	var body dto.UpdateContactRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if body.Status != nil && !model.IsValidContactStatus(*body.Status) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid status value")
	}

	contact, err := ctrl.findByID(c.Params("id"))
	if err != nil {
		return ctrl.notFoundOr500(c, err)
	}

	if body.Status != nil {
		contact.ContactStatus = *body.Status
	}
	if body.Notes != nil {
		contact.ContactNotes = body.Notes
	}

	// Save re-runs the model hooks, keeping the store-level
	// normalization in force on updates too.
	if err := ctrl.DB.Save(contact).Error; err != nil {
		log.Printf("update contact error: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Contact updated successfully", dto.ToContactResponse(*contact))
}

// =============================
// 🗑️ Delete contact
// =============================
func (ctrl *ContactController) DeleteContact(c *fiber.Ctx) error {
	contact, err := ctrl.findByID(c.Params("id"))
	if err != nil {
		return ctrl.notFoundOr500(c, err)
	}

	if err := ctrl.DB.Delete(contact).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Contact deleted successfully", nil)
}

func (ctrl *ContactController) findByID(raw string) (*model.ContactModel, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var contact model.ContactModel
	if err := ctrl.DB.First(&contact, "contact_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (ctrl *ContactController) notFoundOr500(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Contact submission not found")
	}
	log.Printf("contact lookup error: %v", err)
	return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
}
