package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all resources.
//
// IDs are strings: seed fixtures use readable identifiers like "acc1",
// server-created resources get a generated UUID.
type DefaultModel struct {
	ID string `json:"id" gorm:"primaryKey" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the resource
}

// BeforeCreate generates an ID for resources that do not bring their own.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	return nil
}
