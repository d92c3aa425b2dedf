package model

import (
	"gorm.io/gorm"
)

type DonationStats struct {
	TotalAmount    float64 `json:"totalAmount"`
	TotalDonations int64   `json:"totalDonations"`
	AvgAmount      float64 `json:"avgAmount"`
}

// GetStats aggregates over completed donations only. Returns zeroed
// defaults when nothing has completed yet.
func GetStats(db *gorm.DB) (DonationStats, error) {
	var stats DonationStats
	err := db.Model(&DonationModel{}).
		Select(`COALESCE(SUM(donation_amount), 0) AS total_amount,
			COUNT(*) AS total_donations,
			COALESCE(AVG(donation_amount), 0) AS avg_amount`).
		Where("payment_status = ?", PaymentStatusCompleted).
		Scan(&stats).Error
	return stats, err
}
