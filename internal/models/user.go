package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// User is the profile of the person using the app. There is exactly one
// user per deployment, created by seeding.
type User struct {
	DefaultModel
	Name       string `json:"name" example:"Jordan Lee"`
	Email      string `json:"email" example:"jordan@example.com"`
	Level      int    `json:"level" example:"3"`
	XP         int    `json:"xp" gorm:"column:xp" example:"1250"`
	University string `json:"university" example:"State University"`
	Major      string `json:"major" example:"Computer Science"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	return nil
}

// FirstUser returns the stored user. The second return value reports
// whether a user exists at all, which is not an error condition.
func FirstUser(db *gorm.DB) (User, bool, error) {
	var user User
	err := db.First(&user).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, false, nil
		}

		return User{}, false, err
	}

	return user, true, nil
}
