package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification is an append-only ledger entry. The only mutations ever
// applied are flipping IsRead and bulk delete.
type Notification struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:255" json:"message"`
	Type    string `gorm:"size:20;default:'info'" json:"type"`

	IsRead    bool      `gorm:"default:false;index" json:"is_read"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
