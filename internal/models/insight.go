package models

import (
	"github.com/shopspring/decimal"
)

// Insight is an externally produced spending insight. The backend only
// reads them, they are created by seeding.
type Insight struct {
	DefaultModel
	Type             string          `json:"type" example:"savings_opportunity"`
	Category         string          `json:"category" example:"Food"`
	Title            string          `json:"title" example:"Cook more at home"`
	Description      string          `json:"description" example:"You spent 40% more on dining out than last month"`
	PotentialSavings decimal.Decimal `json:"potentialSavings" gorm:"type:DECIMAL(20,8)" example:"85"`
}
