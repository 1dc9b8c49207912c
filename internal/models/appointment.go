package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentService is a snapshot of a catalog service taken at booking
// time. Name and price are copied on purpose: renaming, repricing or
// deleting the catalog entry must not change historical reports.
type AppointmentService struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ServiceSnapshots is stored as a single jsonb column.
type ServiceSnapshots []AppointmentService

func (s ServiceSnapshots) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *ServiceSnapshots) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	}
	return errors.New("unsupported type for ServiceSnapshots")
}

// Total sums price * quantity over the snapshots.
func (s ServiceSnapshots) Total() float64 {
	var sum float64
	for _, item := range s {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// StringIDs is stored as a jsonb array of entity ids.
type StringIDs []string

func (ids StringIDs) Value() (driver.Value, error) {
	return json.Marshal(ids)
}

func (ids *StringIDs) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, ids)
	case string:
		return json.Unmarshal([]byte(v), ids)
	case nil:
		*ids = nil
		return nil
	}
	return errors.New("unsupported type for StringIDs")
}

func (ids StringIDs) Contains(id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Date time.Time `gorm:"not null;index" json:"date"`

	ClientType string `gorm:"size:20;default:'individual'" json:"client_type"`

	// OrganizationID is persisted as an explicit NULL for individual
	// clients so the stored shape stays uniform for queries.
	OrganizationID *string `gorm:"size:36" json:"organization_id"`

	CarNumber   string `gorm:"size:20" json:"car_number"`
	PhoneNumber string `gorm:"size:30" json:"phone_number"`
	CarModel    string `gorm:"size:100" json:"car_model"`
	Notes       string `gorm:"size:255" json:"notes"`

	Services ServiceSnapshots `gorm:"type:jsonb" json:"services"`

	// Stored total, summed from the snapshots at creation time.
	TotalPrice float64 `json:"total_price"`

	EmployeeIDs StringIDs `gorm:"type:jsonb" json:"employee_ids"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
