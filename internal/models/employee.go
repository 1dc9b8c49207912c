package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee carries two independent flags: IsActive governs availability
// for new bookings, IsDeleted hides the record from selection lists
// entirely. Historical appointments keep referencing hidden employees.
type Employee struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`

	IsActive  bool `gorm:"default:true" json:"is_active"`
	IsDeleted bool `gorm:"default:false;index" json:"is_deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
