package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/campusfin/backend/internal/client"
	"github.com/campusfin/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExportCSV() {
	_, err := suite.client().CreateTransaction(context.Background(), map[string]any{
		"accountId":   "acc1",
		"amount":      -25.50,
		"date":        "2024-01-15",
		"category":    "Food",
		"description": "Lunch, with friends",
	})
	suite.Require().NoError(err)

	cache := client.NewCache(suite.client())
	cache.Refresh(context.Background())

	var buf bytes.Buffer
	suite.Require().NoError(cache.ExportCSV(context.Background(), &buf))

	out := buf.String()
	suite.Assert().True(strings.HasPrefix(out, "\uFEFF"), "output does not start with a byte order mark")

	lines := strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\r\n")
	if len(lines) == 1 {
		lines = strings.Split(lines[0], "\n")
	}
	suite.Require().GreaterOrEqual(len(lines), 2)
	suite.Assert().Equal("Date,Description,Category,Amount,Account", lines[0])
	// The account column carries the accountId, not a display name.
	suite.Assert().Equal(`2024-01-15,"Lunch, with friends",Food,-25.5,acc1`, lines[1])
}

// An empty cache fetches the transactions before exporting.
func (suite *TestSuiteStandard) TestExportCSVUnrefreshed() {
	_, err := suite.client().CreateTransaction(context.Background(), map[string]any{
		"amount": -1,
		"date":   "2024-01-15",
	})
	suite.Require().NoError(err)

	cache := client.NewCache(suite.client())

	var buf bytes.Buffer
	suite.Require().NoError(cache.ExportCSV(context.Background(), &buf))
	suite.Assert().Contains(buf.String(), "2024-01-15,,Other,-1,acc1")
}

func (suite *TestSuiteStandard) TestExportJSON() {
	err := models.DB.Create(&models.User{Name: "Alex Chen"}).Error
	suite.Require().NoError(err)
	err = models.DB.Create(&models.Goal{Name: "Emergency Fund", TargetAmount: decimal.NewFromInt(1000)}).Error
	suite.Require().NoError(err)

	cache := client.NewCache(suite.client())

	var buf bytes.Buffer
	suite.Require().NoError(cache.ExportJSON(context.Background(), &buf))

	var doc struct {
		User       *models.User  `json:"user"`
		Goals      []models.Goal `json:"goals"`
		ExportDate time.Time     `json:"exportDate"`
	}
	suite.Require().NoError(json.Unmarshal(buf.Bytes(), &doc))
	suite.Require().NotNil(doc.User)
	suite.Assert().Equal("Alex Chen", doc.User.Name)
	suite.Require().Len(doc.Goals, 1)
	suite.Assert().False(doc.ExportDate.IsZero())
}
