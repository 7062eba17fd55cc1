package models_test

import (
	"github.com/campusfin/backend/internal/models"
)

func (suite *TestSuiteStandard) TestFirstUserAbsent() {
	_, found, err := models.FirstUser(models.DB)
	suite.Assert().NoError(err)
	suite.Assert().False(found)
}

func (suite *TestSuiteStandard) TestFirstUser() {
	user := models.User{Name: " Alex Chen ", Email: "alex.chen@university.edu "}
	suite.Require().NoError(models.DB.Create(&user).Error)

	stored, found, err := models.FirstUser(models.DB)
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Assert().Equal("Alex Chen", stored.Name, "name is not trimmed")
	suite.Assert().Equal("alex.chen@university.edu", stored.Email, "email is not trimmed")
}
