package handlers

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/aquareyes/carwash-admin/internal/models"
)

func writeAudit(
	db *gorm.DB,
	userID *string,
	action string,
	entity string,
	entityID *string,
	meta any,
) {

	var payload string
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			payload = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: payload,
	}

	db.Create(&entry)
}
