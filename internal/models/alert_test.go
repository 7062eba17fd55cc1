package models_test

import (
	"time"

	"github.com/campusfin/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAlertsOrder() {
	old := suite.createTestAlert(models.Alert{
		Type:      "budget_warning",
		Timestamp: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
	})
	recent := suite.createTestAlert(models.Alert{
		Type:      "goal_milestone",
		Timestamp: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
	})

	alerts, err := models.Alerts(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(alerts, 2)
	suite.Assert().Equal(recent.ID, alerts[0].ID)
	suite.Assert().Equal(old.ID, alerts[1].ID)
}
