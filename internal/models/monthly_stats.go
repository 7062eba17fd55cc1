package models

import (
	"errors"

	"github.com/campusfin/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyStats is the derived income/expense aggregate for one month.
//
// It is upserted incrementally by the transaction ingestion flow and never
// recomputed from scratch. The per-category sums live in MonthlyCategory
// rows so that user-supplied category text never becomes a field name;
// they are rendered into Categories for the API.
type MonthlyStats struct {
	Month    types.Month     `json:"month" gorm:"primaryKey" example:"2024-01"`
	Income   decimal.Decimal `json:"income" gorm:"type:DECIMAL(20,8)" example:"2317.34"`
	Expenses decimal.Decimal `json:"expenses" gorm:"type:DECIMAL(20,8)" example:"1133.70"`

	Categories map[string]decimal.Decimal `json:"categories" gorm:"-"`
}

// MonthlyCategory is the spending sum for one category in one month.
//
// The amount mixes sign semantics on purpose: income and expense
// transactions both add their absolute amount to the category bucket.
// This mirrors what the dashboard expects.
type MonthlyCategory struct {
	Month    types.Month     `json:"month" gorm:"primaryKey"`
	Category string          `json:"category" gorm:"primaryKey"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}

// StatsForMonth returns the aggregate for a month with its category sums.
// The second return value reports whether an aggregate exists for the
// month, which is not an error condition.
func StatsForMonth(db *gorm.DB, month types.Month) (MonthlyStats, bool, error) {
	var stats MonthlyStats
	err := db.First(&stats, "month = ?", month).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return MonthlyStats{}, false, nil
		}

		return MonthlyStats{}, false, err
	}

	var categories []MonthlyCategory
	err = db.Where("month = ?", month).Find(&categories).Error
	if err != nil {
		return MonthlyStats{}, false, err
	}

	stats.Categories = make(map[string]decimal.Decimal, len(categories))
	for _, c := range categories {
		stats.Categories[c.Category] = c.Amount
	}

	return stats, true, nil
}
