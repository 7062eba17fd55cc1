package models_test

import (
	"github.com/campusfin/backend/internal/models"
	"github.com/google/uuid"
)

// Resources without an ID get a generated UUID, seeded resources keep
// their readable identifier.
func (suite *TestSuiteStandard) TestDefaultModelID() {
	generated := suite.createTestAccount(models.Account{})
	_, err := uuid.Parse(generated.ID)
	suite.Assert().NoError(err, "generated ID %q is not a UUID", generated.ID)

	seeded := suite.createTestAccount(models.Account{DefaultModel: models.DefaultModel{ID: "acc1"}})
	suite.Assert().Equal("acc1", seeded.ID)
}

func (suite *TestSuiteStandard) TestConnectInvalidDSN() {
	err := models.Connect("/proc/this/path/cannot/exist/db.sqlite")
	suite.Assert().Error(err)
}
