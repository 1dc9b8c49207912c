package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Organization struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name          string `gorm:"size:100;not null" json:"name"`
	ContactPerson string `gorm:"size:100" json:"contact_person"`
	PhoneNumber   string `gorm:"size:30" json:"phone_number"`

	IsDeleted bool `gorm:"default:false;index" json:"is_deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
