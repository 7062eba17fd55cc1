package models

import (
	"time"

	"gorm.io/gorm"
)

// Alert is one entry of the append-only notification feed.
type Alert struct {
	DefaultModel
	Type      string    `json:"type" example:"budget_warning"`
	Title     string    `json:"title" example:"Budget Alert"`
	Message   string    `json:"message" example:"Approaching monthly limit"`
	Severity  string    `json:"severity" example:"warning"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T18:43:00Z"`
	IsRead    bool      `json:"isRead" example:"false"`
}

// Alerts returns all alerts ordered by timestamp, most recent first.
func Alerts(db *gorm.DB) ([]Alert, error) {
	alerts := make([]Alert, 0)
	err := db.Order("datetime(alerts.timestamp) DESC").Find(&alerts).Error
	return alerts, err
}
