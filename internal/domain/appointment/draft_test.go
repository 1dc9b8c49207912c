package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquareyes/carwash-admin/internal/httperr"
	"github.com/aquareyes/carwash-admin/internal/models"
)

func validDraft() Draft {
	return Draft{
		Date: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		Services: models.ServiceSnapshots{
			{ServiceID: "wash", Name: "Мойка кузова", Price: 15, Quantity: 2},
			{ServiceID: "vacuum", Name: "Пылесос", Price: 5, Quantity: 1},
		},
	}
}

func TestDraftValidateMissingDate(t *testing.T) {
	d := validDraft()
	d.Date = time.Time{}

	err := d.Validate()
	assert.True(t, httperr.IsBusiness(err, "missing_date"))
}

func TestDraftValidateMissingServices(t *testing.T) {
	d := validDraft()
	d.Services = nil

	err := d.Validate()
	assert.True(t, httperr.IsBusiness(err, "missing_services"))
}

func TestDraftValidateBadEnums(t *testing.T) {
	d := validDraft()
	d.ClientType = "company"
	assert.True(t, httperr.IsBusiness(d.Validate(), "invalid_client_type"))

	d = validDraft()
	d.Status = "done"
	assert.True(t, httperr.IsBusiness(d.Validate(), "invalid_status"))
}

func TestDraftToModelDefaults(t *testing.T) {
	d := validDraft()
	ap := d.ToModel()

	assert.Equal(t, string(ClientIndividual), ap.ClientType)
	assert.Equal(t, string(StatusPending), ap.Status)
	assert.Nil(t, ap.OrganizationID)
	require.NotNil(t, ap.EmployeeIDs)
	assert.Empty(t, ap.EmployeeIDs)

	// 15*2 + 5*1
	assert.Equal(t, 35.0, ap.TotalPrice)
}

func TestDraftToModelOrganizationNormalization(t *testing.T) {
	orgID := "org-1"

	// An individual draft carrying an org id must still persist null.
	d := validDraft()
	d.ClientType = ClientIndividual
	d.OrganizationID = &orgID
	assert.Nil(t, d.ToModel().OrganizationID)

	d = validDraft()
	d.ClientType = ClientOrganization
	d.OrganizationID = &orgID
	got := d.ToModel().OrganizationID
	require.NotNil(t, got)
	assert.Equal(t, "org-1", *got)
}

func TestPatchWholesaleReplace(t *testing.T) {
	d := validDraft()
	ap := d.ToModel()

	newServices := models.ServiceSnapshots{
		{ServiceID: "polish", Name: "Полировка", Price: 40, Quantity: 1},
	}
	newEmployees := models.StringIDs{"e5"}

	p := Patch{
		Services:    &newServices,
		EmployeeIDs: &newEmployees,
	}
	require.NoError(t, p.Validate())
	p.Apply(ap)

	// Replaced wholesale, not merged, and the total follows.
	assert.Equal(t, newServices, ap.Services)
	assert.Equal(t, newEmployees, ap.EmployeeIDs)
	assert.Equal(t, 40.0, ap.TotalPrice)
}

func TestPatchEmptyServicesRejected(t *testing.T) {
	empty := models.ServiceSnapshots{}
	p := Patch{Services: &empty}

	assert.True(t, httperr.IsBusiness(p.Validate(), "missing_services"))
}

func TestPatchSwitchToIndividualClearsOrganization(t *testing.T) {
	orgID := "org-1"
	d := validDraft()
	d.ClientType = ClientOrganization
	d.OrganizationID = &orgID
	ap := d.ToModel()
	require.NotNil(t, ap.OrganizationID)

	ind := ClientIndividual
	p := Patch{ClientType: &ind}
	p.Apply(ap)

	assert.Nil(t, ap.OrganizationID)
}

func TestStatusCountsTowardEarnings(t *testing.T) {
	assert.True(t, StatusCompleted.CountsTowardEarnings())
	assert.False(t, StatusPending.CountsTowardEarnings())
	assert.False(t, StatusCancelled.CountsTowardEarnings())
}
