package models

import (
	"time"

	"github.com/campusfin/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Transaction is a single booking on an account. Negative amounts are
// expenses. Transactions are immutable once created.
type Transaction struct {
	DefaultModel
	AccountID   string          `json:"accountId" example:"acc1"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"-25.50"`
	Description string          `json:"description" example:"Lunch"`
	Category    string          `json:"category" example:"Food"`
	Date        time.Time       `json:"date" example:"2024-01-15T00:00:00Z"`
	Merchant    string          `json:"merchant" example:"Campus Cafe"`
	Status      string          `json:"status" example:"completed"`
	CreatedAt   time.Time       `json:"createdAt" example:"2024-01-15T18:43:00.271152Z"`
}

// BeforeSave sets the timezone for the date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
// We already store them in UTC, but reading them from the database
// returns them as +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	t.CreatedAt = t.CreatedAt.In(time.UTC)

	return nil
}

// CreateTransaction persists a transaction and keeps the derived
// aggregates in sync with it: the owning account's balance and the
// owning month's income/expense/category sums.
//
// All four writes run in a single database transaction, so a failing
// aggregate update rolls back the insert and the stored state never
// diverges from the transaction log. The aggregate updates are plain
// SQL increments, which commute, so concurrent submissions against the
// same account or month do not lose updates.
func CreateTransaction(db *gorm.DB, transaction *Transaction) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		// Increment the account balance by the signed amount. An unknown
		// account is not an error here, the update simply matches nothing.
		err := tx.Model(&Account{}).
			Where("id = ?", transaction.AccountID).
			Update("balance", gorm.Expr("balance + ?", transaction.Amount)).
			Error
		if err != nil {
			return err
		}

		month := types.MonthOf(transaction.Date)
		abs := transaction.Amount.Abs()

		// Income for positive amounts, expenses otherwise. The category sum
		// always gets the absolute amount, regardless of sign.
		stats := MonthlyStats{Month: month, Expenses: abs}
		column := "expenses"
		if transaction.Amount.IsPositive() {
			stats = MonthlyStats{Month: month, Income: abs}
			column = "income"
		}

		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}},
			DoUpdates: clause.Assignments(map[string]interface{}{column: gorm.Expr(column+" + ?", abs)}),
		}).Create(&stats).Error
		if err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}, {Name: "category"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"amount": gorm.Expr("amount + ?", abs)}),
		}).Create(&MonthlyCategory{Month: month, Category: transaction.Category, Amount: abs}).Error
	})
}

// Transactions returns transactions ordered by date, most recent first.
// A non-empty accountID restricts the result to that account.
func Transactions(db *gorm.DB, accountID string) ([]Transaction, error) {
	transactions := make([]Transaction, 0)

	q := db.Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC")
	if accountID != "" {
		q = q.Where(&Transaction{AccountID: accountID})
	}

	err := q.Find(&transactions).Error
	return transactions, err
}
