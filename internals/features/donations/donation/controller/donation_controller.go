package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ranglapunjab_backend/internals/features/donations/donation/dto"
	"ranglapunjab_backend/internals/features/donations/donation/model"
	helper "ranglapunjab_backend/internals/helpers"
)

type DonationController struct {
	DB *gorm.DB
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db}
}

// =============================
// ➕ Create donation
// =============================
func (ctrl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	body.Normalize()
	if err := helper.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, "Please fix the following errors:", helper.TranslateValidationErrors(err))
	}

	info := helper.GetClientInfo(c)
	donation := body.ToModel(info.IPAddress, info.UserAgent)

	if err := ctrl.DB.Create(&donation).Error; err != nil {
		log.Printf("donation creation error: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error. Please try again later.")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donation created successfully", fiber.Map{
		"id":        donation.DonationID,
		"donorName": donation.Donor.FullName(),
		"amount":    donation.FormattedAmount(),
		"category":  donation.Donation.Category,
		"status":    donation.Payment.Status,
		"createdAt": donation.DonationCreatedAt,
	})
}

// =============================
// 📄 List donations
// =============================
func (ctrl *DonationController) GetDonations(c *fiber.Ctx) error {
	p := helper.ParsePagination(c)

	q := ctrl.DB.Model(&model.DonationModel{})

	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("donation_category = ?", category)
	}
	if dtype := c.Query("type"); dtype != "" {
		q = q.Where("donation_type = ?", dtype)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"donor_first_name ILIKE ? OR donor_last_name ILIKE ? OR donor_email ILIKE ?",
			like, like, like,
		)
	}

	if start, ok := parseDate(c.Query("startDate")); ok {
		q = q.Where("created_at >= ?", start)
	}
	if end, ok := parseDate(c.Query("endDate")); ok {
		q = q.Where("created_at <= ?", end)
	}

	if min, err := strconv.ParseFloat(c.Query("minAmount"), 64); err == nil {
		q = q.Where("donation_amount >= ?", min)
	}
	if max, err := strconv.ParseFloat(c.Query("maxAmount"), 64); err == nil {
		q = q.Where("donation_amount <= ?", max)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var donations []model.DonationModel
	if err := q.Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&donations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       dto.ToDonationResponses(donations),
		"pagination": helper.BuildPageMeta(total, p),
	})
}

// =============================
// 📊 Donation statistics
// =============================

type categoryBucket struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int64   `json:"count"`
}

type monthBucket struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int64   `json:"count"`
}

type methodBucket struct {
	Method      string  `json:"method"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int64   `json:"count"`
}

func (ctrl *DonationController) GetDonationStats(c *fiber.Ctx) error {
	overview, err := model.GetStats(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	completed := func() *gorm.DB {
		return ctrl.DB.Model(&model.DonationModel{}).
			Where("payment_status = ?", model.PaymentStatusCompleted)
	}

	var byCategory []categoryBucket
	if err := completed().
		Select("donation_category AS category, COALESCE(SUM(donation_amount), 0) AS total_amount, COUNT(*) AS count").
		Group("donation_category").
		Order("total_amount DESC").
		Scan(&byCategory).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var byMonth []monthBucket
	if err := completed().
		Select("EXTRACT(YEAR FROM created_at)::int AS year, EXTRACT(MONTH FROM created_at)::int AS month, COALESCE(SUM(donation_amount), 0) AS total_amount, COUNT(*) AS count").
		Group("1, 2").
		Order("year DESC, month DESC").
		Limit(12).
		Scan(&byMonth).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var byPaymentMethod []methodBucket
	if err := completed().
		Select("payment_method AS method, COALESCE(SUM(donation_amount), 0) AS total_amount, COUNT(*) AS count").
		Group("payment_method").
		Order("total_amount DESC").
		Scan(&byPaymentMethod).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "", fiber.Map{
		"overview":        overview,
		"byCategory":      byCategory,
		"byMonth":         byMonth,
		"byPaymentMethod": byPaymentMethod,
	})
}

// =============================
// 🔍 Get donation by id
// =============================
func (ctrl *DonationController) GetDonationByID(c *fiber.Ctx) error {
	donation, err := ctrl.findByID(c.Params("id"))
	if err != nil {
		return ctrl.notFoundOr500(c, err)
	}
	return helper.Success(c, "", dto.ToDonationResponse(*donation))
}

// =============================
// 🔄 Update payment status/notes
// =============================
func (ctrl *DonationController) UpdateDonation(c *fiber.Ctx) error {
	var body dto.UpdateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if body.Status != nil && !model.IsValidPaymentStatus(*body.Status) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid status value")
	}

	donation, err := ctrl.findByID(c.Params("id"))
	if err != nil {
		return ctrl.notFoundOr500(c, err)
	}

	if body.Status != nil {
		donation.Payment.Status = *body.Status
	}
	// Empty string is not NULL and would occupy the sparse-unique
	// index; treat it as absent.
	if body.TransactionID != nil && *body.TransactionID != "" {
		donation.Payment.TransactionID = body.TransactionID
	}
	if len(body.GatewayResponse) > 0 {
		donation.Payment.GatewayResponse = body.GatewayResponse
	}
	if body.Notes != nil {
		donation.DonationNotes = body.Notes
	}

	// Save re-runs the hooks, so a direct status update to "completed"
	// also triggers receipt generation.
	if err := ctrl.DB.Save(donation).Error; err != nil {
		log.Printf("update donation error: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Donation updated successfully", dto.ToDonationResponse(*donation))
}

// =============================
// 🗑️ Delete donation
// =============================
func (ctrl *DonationController) DeleteDonation(c *fiber.Ctx) error {
	donation, err := ctrl.findByID(c.Params("id"))
	if err != nil {
		return ctrl.notFoundOr500(c, err)
	}

	if err := ctrl.DB.Delete(donation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Donation deleted successfully", nil)
}

// =============================
// 💳 Complete payment (gateway callback stub)
// =============================
func (ctrl *DonationController) CompletePayment(c *fiber.Ctx) error {
	var body dto.CompletePaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	donation, err := ctrl.findByID(c.Params("id"))
	if err != nil {
		return ctrl.notFoundOr500(c, err)
	}

	if body.Amount != nil && *body.Amount != donation.Donation.Amount {
		return helper.Error(c, fiber.StatusBadRequest, "Amount mismatch")
	}

	donation.Payment.Status = model.PaymentStatusCompleted
	if body.TransactionID != "" {
		donation.Payment.TransactionID = &body.TransactionID
	}
	if len(body.GatewayResponse) > 0 {
		donation.Payment.GatewayResponse = body.GatewayResponse
	}

	// Receipt number is generated by the save hook.
	if err := ctrl.DB.Save(donation).Error; err != nil {
		if isUniqueViolation(err) {
			log.Printf("complete payment conflict: %v", err)
		} else {
			log.Printf("complete payment error: %v", err)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "Payment completed successfully", fiber.Map{
		"id":            donation.DonationID,
		"receiptNumber": donation.Receipt.Number,
		"amount":        donation.FormattedAmount(),
		"status":        donation.Payment.Status,
	})
}

func (ctrl *DonationController) findByID(raw string) (*model.DonationModel, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var donation model.DonationModel
	if err := ctrl.DB.First(&donation, "donation_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (ctrl *DonationController) notFoundOr500(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Donation not found")
	}
	log.Printf("donation lookup error: %v", err)
	return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
}

// parseDate accepts RFC3339 or plain dates from the query string.
func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
