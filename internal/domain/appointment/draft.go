package appointment

import (
	"time"

	"github.com/aquareyes/carwash-admin/internal/httperr"
	"github.com/aquareyes/carwash-admin/internal/models"
)

// ===============================
// Draft (create input)
// ===============================

type Draft struct {
	Date           time.Time
	ClientType     ClientType
	OrganizationID *string

	CarNumber   string
	PhoneNumber string
	CarModel    string
	Notes       string

	Services    models.ServiceSnapshots
	EmployeeIDs models.StringIDs

	Status Status
}

// Validate runs before any storage call. The error code names the
// missing field.
func (d *Draft) Validate() error {
	if d.Date.IsZero() {
		return httperr.ErrBusiness("missing_date")
	}
	if len(d.Services) == 0 {
		return httperr.ErrBusiness("missing_services")
	}
	if d.ClientType != "" && !d.ClientType.Valid() {
		return httperr.ErrBusiness("invalid_client_type")
	}
	if d.Status != "" && !d.Status.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

// ToModel applies defaults and normalizes the draft into a persistable
// record. OrganizationID becomes an explicit null for individual
// clients; the total is summed from the service snapshots.
func (d *Draft) ToModel() *models.Appointment {
	clientType := d.ClientType
	if clientType == "" {
		clientType = ClientIndividual
	}

	status := d.Status
	if status == "" {
		status = InitialStatus()
	}

	var orgID *string
	if clientType == ClientOrganization && d.OrganizationID != nil && *d.OrganizationID != "" {
		orgID = d.OrganizationID
	}

	employeeIDs := d.EmployeeIDs
	if employeeIDs == nil {
		employeeIDs = models.StringIDs{}
	}

	return &models.Appointment{
		Date:           d.Date,
		ClientType:     string(clientType),
		OrganizationID: orgID,
		CarNumber:      d.CarNumber,
		PhoneNumber:    d.PhoneNumber,
		CarModel:       d.CarModel,
		Notes:          d.Notes,
		Services:       d.Services,
		TotalPrice:     d.Services.Total(),
		EmployeeIDs:    employeeIDs,
		Status:         string(status),
	}
}
