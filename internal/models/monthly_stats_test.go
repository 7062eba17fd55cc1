package models_test

import (
	"time"

	"github.com/campusfin/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestStatsForMonthAbsent() {
	_, found, err := models.StatsForMonth(models.DB, mustMonth("1999-01"))
	suite.Assert().NoError(err)
	suite.Assert().False(found)
}

// A category named like a struct field stays a plain map key.
func (suite *TestSuiteStandard) TestStatsForMonthHostileCategory() {
	account := suite.createTestAccount(models.Account{})

	suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(-7),
		Category:  "income",
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	stats, found, err := models.StatsForMonth(models.DB, mustMonth("2024-05"))
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Assert().True(stats.Income.IsZero(), "income is %s", stats.Income)
	suite.Assert().True(stats.Expenses.Equal(decimal.NewFromInt(7)), "expenses are %s", stats.Expenses)
	suite.Assert().True(stats.Categories["income"].Equal(decimal.NewFromInt(7)), "category sum is %s", stats.Categories["income"])
}
