package client_test

import (
	"context"

	"github.com/campusfin/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestUserAbsent() {
	user, err := suite.client().User(context.Background())
	suite.Require().NoError(err)
	suite.Assert().Nil(user)
}

func (suite *TestSuiteStandard) TestUser() {
	err := models.DB.Create(&models.User{Name: "Alex Chen"}).Error
	suite.Require().NoError(err)

	user, err := suite.client().User(context.Background())
	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Assert().Equal("Alex Chen", user.Name)
}

func (suite *TestSuiteStandard) TestCreateAndListTransactions() {
	c := suite.client()

	created, err := c.CreateTransaction(context.Background(), map[string]any{
		"accountId": "acc1",
		"amount":    -25.50,
		"date":      "2024-01-15",
		"category":  "Food",
	})
	suite.Require().NoError(err)
	suite.Assert().NotEmpty(created.ID)
	suite.Assert().True(created.Amount.Equal(decimal.RequireFromString("-25.50")))

	transactions, err := c.Transactions(context.Background(), "acc1")
	suite.Require().NoError(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(created.ID, transactions[0].ID)

	none, err := c.Transactions(context.Background(), "acc2")
	suite.Require().NoError(err)
	suite.Assert().Empty(none)
}

// Error bodies of the API surface as errors with the server's message.
func (suite *TestSuiteStandard) TestCreateTransactionError() {
	_, err := suite.client().CreateTransaction(context.Background(), map[string]any{
		"date": "2024-01-15",
	})
	suite.Require().Error(err)
	suite.Assert().Contains(err.Error(), "amount")
}

func (suite *TestSuiteStandard) TestMonthlyStats() {
	c := suite.client()

	stats, err := c.MonthlyStats(context.Background(), mustMonth("1999-01"))
	suite.Require().NoError(err)
	suite.Assert().Nil(stats)

	_, err = c.CreateTransaction(context.Background(), map[string]any{
		"amount":   -10,
		"date":     "2024-01-15",
		"category": "Food",
	})
	suite.Require().NoError(err)

	stats, err = c.MonthlyStats(context.Background(), mustMonth("2024-01"))
	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.Assert().True(stats.Expenses.Equal(decimal.NewFromInt(10)), "expenses are %s", stats.Expenses)
	suite.Assert().True(stats.Categories["Food"].Equal(decimal.NewFromInt(10)))
}
