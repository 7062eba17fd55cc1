package finance_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/campusfin/backend/internal/models"
	"github.com/campusfin/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestCollectionOptions verifies the HTTP OPTIONS responses for all
// read-only collections.
func (suite *TestSuiteStandard) TestCollectionOptions() {
	paths := []string{
		"/api/finance/user",
		"/api/finance/accounts",
		"/api/finance/budgets",
		"/api/finance/goals",
		"/api/finance/alerts",
		"/api/finance/insights",
		"/api/finance/monthly-stats/2024-01",
	}

	for _, path := range paths {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}

// Collections respond with an empty array, not null, when nothing is
// stored yet.
func (suite *TestSuiteStandard) TestCollectionsEmpty() {
	paths := []string{
		"/api/finance/accounts",
		"/api/finance/transactions",
		"/api/finance/budgets",
		"/api/finance/goals",
		"/api/finance/alerts",
		"/api/finance/insights",
	}

	for _, path := range paths {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			assert.Equal(t, "[]", r.Body.String())
		})
	}
}

// The user endpoint responds with a JSON null before seeding and with the
// user object afterwards.
func (suite *TestSuiteStandard) TestGetUser() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/finance/user", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("null", r.Body.String())

	err := models.DB.Create(&models.User{Name: "Alex Chen", Email: "alex.chen@university.edu"}).Error
	suite.Require().NoError(err)

	var user models.User
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/finance/user", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &user)
	suite.Assert().Equal("Alex Chen", user.Name)
}

func (suite *TestSuiteStandard) TestGetCollections() {
	err := models.DB.Create(&models.Budget{
		Name:      "Food & Dining",
		Limit:     decimal.NewFromInt(300),
		Spent:     decimal.RequireFromString("187.12"),
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}).Error
	suite.Require().NoError(err)

	err = models.DB.Create(&models.Goal{
		Name:         "Emergency Fund",
		TargetAmount: decimal.NewFromInt(1000),
		Priority:     "high",
	}).Error
	suite.Require().NoError(err)

	err = models.DB.Create(&models.Insight{
		Type:             "savings_opportunity",
		Category:         "Food & Dining",
		Title:            "Cook more at home",
		PotentialSavings: decimal.NewFromInt(85),
	}).Error
	suite.Require().NoError(err)

	var budgets []models.Budget
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/finance/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &budgets)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal("Food & Dining", budgets[0].Name)

	var goals []models.Goal
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/finance/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &goals)
	suite.Require().Len(goals, 1)
	suite.Assert().Equal("high", goals[0].Priority)

	var insights []models.Insight
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/finance/insights", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &insights)
	suite.Require().Len(insights, 1)
	suite.Assert().Equal("Cook more at home", insights[0].Title)
}

func (suite *TestSuiteStandard) TestGetAlertsOrder() {
	for _, alert := range []models.Alert{
		{Type: "budget_warning", Title: "Old", Timestamp: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)},
		{Type: "goal_milestone", Title: "Recent", Timestamp: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)},
	} {
		suite.Require().NoError(models.DB.Create(&alert).Error)
	}

	var alerts []models.Alert
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/finance/alerts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &alerts)
	suite.Require().Len(alerts, 2)
	suite.Assert().Equal("Recent", alerts[0].Title)
	suite.Assert().Equal("Old", alerts[1].Title)
}

func (suite *TestSuiteStandard) TestGetMonthlyStats() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/finance/monthly-stats/NotAMonth", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/finance/monthly-stats/1999-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("null", r.Body.String())
}
