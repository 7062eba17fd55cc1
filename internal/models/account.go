package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents an asset account, e.g. a bank account.
//
// The balance equals the seed balance plus the sum of all transaction
// amounts ever applied to the account. It is only mutated by the
// transaction ingestion flow, see CreateTransaction.
type Account struct {
	DefaultModel
	Name    string          `json:"name" example:"Checking"`
	Type    string          `json:"type" example:"checking"`
	Balance decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)" example:"1497.23"`
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)

	return nil
}
