package client_test

import (
	"context"
	"time"

	"github.com/campusfin/backend/internal/client"
	"github.com/campusfin/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestRefresh() {
	err := models.DB.Create(&models.User{Name: "Alex Chen"}).Error
	suite.Require().NoError(err)
	err = models.DB.Create(&models.Account{DefaultModel: models.DefaultModel{ID: "acc1"}, Name: "Student Checking"}).Error
	suite.Require().NoError(err)

	cache := client.NewCache(suite.client(), client.WithStatsMonth(mustMonth("2024-01")))
	suite.Assert().True(cache.Snapshot().IsLoading)

	cache.Refresh(context.Background())

	snapshot := cache.Snapshot()
	suite.Assert().False(snapshot.IsLoading)
	suite.Assert().Empty(snapshot.ErrMsg)
	suite.Require().NotNil(snapshot.User)
	suite.Assert().Equal("Alex Chen", snapshot.User.Name)
	suite.Require().Len(snapshot.Accounts, 1)
	suite.Assert().Nil(snapshot.MonthlyStats, "no transactions yet, the aggregate must be null")
}

// When the backend is unreachable the cache serves the bundled data and
// records the error.
func (suite *TestSuiteStandard) TestRefreshFallback() {
	url := suite.server.URL
	suite.server.Close()

	cache := client.NewCache(client.NewClient(url+"/api/finance"), client.WithStatsMonth(mustMonth("2024-03")))
	cache.Refresh(context.Background())

	snapshot := cache.Snapshot()
	suite.Assert().NotEmpty(snapshot.ErrMsg)
	suite.Require().NotNil(snapshot.User, "fallback data has a user")
	suite.Assert().NotEmpty(snapshot.Transactions)
	suite.Require().NotNil(snapshot.MonthlyStats)
	suite.Assert().Equal("2024-03", snapshot.MonthlyStats.Month.String())
}

// Locally applied events are visible until the next refresh overwrites
// them.
func (suite *TestSuiteStandard) TestApplyEvents() {
	cache := client.NewCache(suite.client())
	cache.Refresh(context.Background())

	events := &client.Events{}
	cache.AttachEvents(events)

	events.EmitTransaction(models.Transaction{
		DefaultModel: models.DefaultModel{ID: "sim_1"},
		Amount:       decimal.NewFromInt(-5),
	})
	events.EmitAlert(models.Alert{
		DefaultModel: models.DefaultModel{ID: "sim_2"},
		Title:        "Budget Alert",
	})

	snapshot := cache.Snapshot()
	suite.Require().NotEmpty(snapshot.Transactions)
	suite.Assert().Equal("sim_1", snapshot.Transactions[0].ID)
	suite.Require().NotEmpty(snapshot.Alerts)
	suite.Assert().Equal("sim_2", snapshot.Alerts[0].ID)

	cache.Refresh(context.Background())

	snapshot = cache.Snapshot()
	suite.Assert().Empty(snapshot.Transactions, "simulated transaction must not survive a refresh")
	suite.Assert().Empty(snapshot.Alerts, "simulated alert must not survive a refresh")
}

func (suite *TestSuiteStandard) TestApplyGoalProgress() {
	// The unreachable backend makes the cache fall back to the bundled
	// data, which contains goal1.
	url := suite.server.URL
	suite.server.Close()

	cache := client.NewCache(client.NewClient(url + "/api/finance"))
	cache.Refresh(context.Background())

	cache.ApplyGoalProgress(client.GoalProgress{
		GoalID:    "goal1",
		NewAmount: decimal.NewFromInt(999),
		Timestamp: time.Now(),
	})

	for _, goal := range cache.Snapshot().Goals {
		if goal.ID == "goal1" {
			suite.Assert().True(goal.CurrentAmount.Equal(decimal.NewFromInt(999)), "current amount is %s", goal.CurrentAmount)
			return
		}
	}

	suite.Assert().Fail("goal1 not found in fallback data")
}

// Run polls until the context is cancelled.
func (suite *TestSuiteStandard) TestRun() {
	cache := client.NewCache(suite.client(), client.WithInterval(10*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	cache.Run(ctx)

	suite.Assert().False(cache.Snapshot().IsLoading)
}
