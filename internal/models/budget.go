package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending envelope with a limit for a date range.
//
// Spent is not reconciled against transactions by the backend. It is
// maintained by seeding only.
type Budget struct {
	DefaultModel
	Name      string          `json:"name" example:"Groceries"`
	Limit     decimal.Decimal `json:"limit" gorm:"type:DECIMAL(20,8)" example:"300"`
	Spent     decimal.Decimal `json:"spent" gorm:"type:DECIMAL(20,8)" example:"187.12"`
	Color     string          `json:"color" example:"#22c55e"`
	StartDate time.Time       `json:"startDate" example:"2024-01-01T00:00:00Z"`
	EndDate   time.Time       `json:"endDate" example:"2024-01-31T00:00:00Z"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)

	return nil
}
