// Package seed loads a JSON fixture into the database.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/campusfin/backend/internal/models"
	"github.com/campusfin/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fixture is the JSON document the database is seeded from.
//
// Monthly statistics are keyed by their YYYY-MM month in the fixture and
// split into aggregate and per-category rows on load.
type Fixture struct {
	User         *models.User                 `json:"user"`
	Accounts     []models.Account             `json:"accounts"`
	Transactions []models.Transaction         `json:"transactions"`
	Budgets      []models.Budget              `json:"budgets"`
	Goals        []models.Goal                `json:"goals"`
	Alerts       []models.Alert               `json:"alerts"`
	Insights     []models.Insight             `json:"insights"`
	MonthlyStats map[string]FixtureMonthStats `json:"monthlyStats"`
}

type FixtureMonthStats struct {
	Income     decimal.Decimal            `json:"income"`
	Expenses   decimal.Decimal            `json:"expenses"`
	Categories map[string]decimal.Decimal `json:"categories"`
}

// Read parses a fixture file.
func Read(path string) (Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("cannot read fixture: %w", err)
	}

	var fixture Fixture
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("cannot parse fixture: %w", err)
	}

	return fixture, nil
}

// Load wipes all collections and inserts the fixture contents.
func Load(db *gorm.DB, fixture Fixture) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.User{}, &models.Account{}, &models.Transaction{}, &models.Budget{},
			&models.Goal{}, &models.Alert{}, &models.Insight{},
			&models.MonthlyStats{}, &models.MonthlyCategory{},
		} {
			err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error
			if err != nil {
				return err
			}
		}

		if fixture.User != nil {
			if err := tx.Create(fixture.User).Error; err != nil {
				return err
			}
		}

		if len(fixture.Accounts) > 0 {
			if err := tx.Create(&fixture.Accounts).Error; err != nil {
				return err
			}
		}

		if len(fixture.Transactions) > 0 {
			if err := tx.Create(&fixture.Transactions).Error; err != nil {
				return err
			}
		}

		if len(fixture.Budgets) > 0 {
			if err := tx.Create(&fixture.Budgets).Error; err != nil {
				return err
			}
		}

		if len(fixture.Goals) > 0 {
			if err := tx.Create(&fixture.Goals).Error; err != nil {
				return err
			}
		}

		if len(fixture.Alerts) > 0 {
			if err := tx.Create(&fixture.Alerts).Error; err != nil {
				return err
			}
		}

		if len(fixture.Insights) > 0 {
			if err := tx.Create(&fixture.Insights).Error; err != nil {
				return err
			}
		}

		for key, stats := range fixture.MonthlyStats {
			month, err := types.ParseMonth(key)
			if err != nil {
				return fmt.Errorf("invalid month key %q in fixture: %w", key, err)
			}

			err = tx.Create(&models.MonthlyStats{
				Month:    month,
				Income:   stats.Income,
				Expenses: stats.Expenses,
			}).Error
			if err != nil {
				return err
			}

			for category, amount := range stats.Categories {
				err = tx.Create(&models.MonthlyCategory{
					Month:    month,
					Category: category,
					Amount:   amount,
				}).Error
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
}
