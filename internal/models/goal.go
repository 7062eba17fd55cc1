package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings goal. IsCompleted is a stored flag, not derived from
// the amounts.
type Goal struct {
	DefaultModel
	Name          string          `json:"name" example:"New Laptop"`
	TargetAmount  decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"1200"`
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,8)" example:"450"`
	TargetDate    time.Time       `json:"targetDate" example:"2024-08-01T00:00:00Z"`
	Priority      string          `json:"priority" example:"high"`
	IsCompleted   bool            `json:"isCompleted" example:"false"`
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)

	return nil
}
