package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is the live catalog entry. Appointments keep their own
// snapshot of name/price, so editing or soft-deleting a service never
// rewrites history.
type Service struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`

	IsDeleted bool `gorm:"default:false;index" json:"is_deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
