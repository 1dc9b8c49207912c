package appointment

import (
	"time"

	"github.com/aquareyes/carwash-admin/internal/httperr"
	"github.com/aquareyes/carwash-admin/internal/models"
)

// ===============================
// Patch (partial update)
// ===============================

// Patch is a shallow partial update. Nil means "leave unchanged".
// Services and EmployeeIDs replace wholesale, never element-wise.
type Patch struct {
	Date           *time.Time
	ClientType     *ClientType
	OrganizationID *string

	CarNumber   *string
	PhoneNumber *string
	CarModel    *string
	Notes       *string

	Services    *models.ServiceSnapshots
	EmployeeIDs *models.StringIDs

	Status *Status
}

func (p *Patch) Validate() error {
	if p.ClientType != nil && !p.ClientType.Valid() {
		return httperr.ErrBusiness("invalid_client_type")
	}
	if p.Status != nil && !p.Status.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if p.Services != nil && len(*p.Services) == 0 {
		return httperr.ErrBusiness("missing_services")
	}
	return nil
}

// Apply merges the patch onto the record. A services replacement also
// recomputes the stored total, keeping it consistent with the snapshot.
func (p *Patch) Apply(ap *models.Appointment) {
	if p.Date != nil {
		ap.Date = *p.Date
	}
	if p.ClientType != nil {
		ap.ClientType = string(*p.ClientType)
	}
	if p.OrganizationID != nil {
		ap.OrganizationID = p.OrganizationID
	}
	if ap.ClientType == string(ClientIndividual) {
		ap.OrganizationID = nil
	}
	if p.CarNumber != nil {
		ap.CarNumber = *p.CarNumber
	}
	if p.PhoneNumber != nil {
		ap.PhoneNumber = *p.PhoneNumber
	}
	if p.CarModel != nil {
		ap.CarModel = *p.CarModel
	}
	if p.Notes != nil {
		ap.Notes = *p.Notes
	}
	if p.Services != nil {
		ap.Services = *p.Services
		ap.TotalPrice = ap.Services.Total()
	}
	if p.EmployeeIDs != nil {
		ap.EmployeeIDs = *p.EmployeeIDs
	}
	if p.Status != nil {
		ap.Status = string(*p.Status)
	}
}
