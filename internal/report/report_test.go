package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquareyes/carwash-admin/internal/models"
)

var minsk *time.Location

func init() {
	var err error
	minsk, err = time.LoadLocation("Europe/Minsk")
	if err != nil {
		panic(err)
	}
}

func day(y int, m time.Month, d, hh int) time.Time {
	return time.Date(y, m, d, hh, 0, 0, 0, minsk)
}

func TestCompletedInRangeIsInclusive(t *testing.T) {
	start := day(2024, 1, 10, 0)
	end := day(2024, 1, 12, 0)

	apps := []models.Appointment{
		{ID: "at-start", Date: start, Status: "completed"},
		{ID: "at-end", Date: end, Status: "completed"},
		{ID: "before", Date: start.Add(-time.Second), Status: "completed"},
		{ID: "after", Date: end.Add(time.Second), Status: "completed"},
		{ID: "pending-inside", Date: day(2024, 1, 11, 12), Status: "pending"},
	}

	got := CompletedInRange(apps, start, end)

	require.Len(t, got, 2)
	assert.Equal(t, "at-start", got[0].ID)
	assert.Equal(t, "at-end", got[1].ID)
}

func TestDailyReportScenario(t *testing.T) {
	apps := []models.Appointment{
		{Date: day(2024, 1, 10, 9), Status: "completed", TotalPrice: 50},
		{Date: day(2024, 1, 10, 15), Status: "completed", TotalPrice: 30},
		{Date: day(2024, 1, 11, 9), Status: "pending", TotalPrice: 40},
	}

	r := Daily(apps, day(2024, 1, 10, 0), minsk)

	assert.Equal(t, 2, r.Count)
	assert.Equal(t, 80.0, r.TotalEarnings)
}

func TestEmployeeReportEvenSplit(t *testing.T) {
	e1 := models.Employee{ID: "e1", FirstName: "Иван", LastName: "Иванов"}

	apps := []models.Appointment{
		{
			ID:          "a1",
			Date:        day(2024, 1, 10, 10),
			Status:      "completed",
			TotalPrice:  100,
			EmployeeIDs: models.StringIDs{"e1", "e2"},
		},
	}

	r := ForEmployee(e1, apps, day(2024, 1, 1, 0), day(2024, 1, 31, 23))

	assert.Equal(t, 50.0, r.TotalEarnings)
	assert.Equal(t, 1, r.AppointmentsCount)
	require.Len(t, r.AppointmentDetails, 1)
	assert.Equal(t, "a1", r.AppointmentDetails[0].ID)
	assert.Equal(t, 50.0, r.AppointmentDetails[0].Earnings)
}

func TestSplitConservationAcrossEmployees(t *testing.T) {
	e1 := models.Employee{ID: "e1"}
	e2 := models.Employee{ID: "e2"}
	e3 := models.Employee{ID: "e3"}

	apps := []models.Appointment{
		{
			ID:          "a1",
			Date:        day(2024, 1, 10, 10),
			Status:      "completed",
			TotalPrice:  90,
			EmployeeIDs: models.StringIDs{"e1", "e2", "e3"},
		},
	}

	start, end := day(2024, 1, 1, 0), day(2024, 1, 31, 23)

	var total float64
	for _, e := range []models.Employee{e1, e2, e3} {
		total += ForEmployee(e, apps, start, end).TotalEarnings
	}

	assert.InDelta(t, 90.0, total, 1e-9)
}

func TestGeneralReportDropsZeroRowEmployees(t *testing.T) {
	employees := []models.Employee{
		{ID: "e1", FirstName: "Иван", LastName: "Иванов"},
		{ID: "idle", FirstName: "Пётр", LastName: "Петров"},
	}

	apps := []models.Appointment{
		{
			ID:          "a1",
			Date:        day(2024, 1, 10, 10),
			Status:      "completed",
			TotalPrice:  60,
			EmployeeIDs: models.StringIDs{"e1"},
		},
	}

	r := General(apps, employees, day(2024, 1, 1, 0), day(2024, 1, 31, 23))

	require.Len(t, r.EmployeeStats, 1)
	assert.Equal(t, "e1", r.EmployeeStats[0].EmployeeID)
	assert.Equal(t, "Иван Иванов", r.EmployeeStats[0].EmployeeName)
	assert.Equal(t, 60.0, r.EmployeeStats[0].Earnings)
	assert.Equal(t, 60.0, r.TotalEarnings)
	assert.Equal(t, 1, r.AppointmentsCount)
}

func TestGeneralReportServiceStatsFromSnapshots(t *testing.T) {
	// The snapshot carries the booking-time name/price; the live
	// catalog (renamed, repriced, or deleted since) must never leak in.
	apps := []models.Appointment{
		{
			ID:     "a1",
			Date:   day(2024, 1, 10, 10),
			Status: "completed",
			Services: models.ServiceSnapshots{
				{ServiceID: "wash", Name: "Мойка кузова", Price: 10, Quantity: 2},
			},
			TotalPrice: 20,
		},
		{
			ID:     "a2",
			Date:   day(2024, 1, 11, 10),
			Status: "completed",
			Services: models.ServiceSnapshots{
				{ServiceID: "wash", Name: "Мойка кузова", Price: 10, Quantity: 1},
				{ServiceID: "polish", Name: "Полировка", Price: 40, Quantity: 1},
			},
			TotalPrice: 50,
		},
	}

	r := General(apps, nil, day(2024, 1, 1, 0), day(2024, 1, 31, 23))

	require.Len(t, r.ServiceStats, 2)

	byID := map[string]ServiceStat{}
	for _, s := range r.ServiceStats {
		byID[s.ServiceID] = s
	}

	assert.Equal(t, 3, byID["wash"].Count)
	assert.Equal(t, 30.0, byID["wash"].Earnings)
	assert.Equal(t, "Мойка кузова", byID["wash"].ServiceName)

	assert.Equal(t, 1, byID["polish"].Count)
	assert.Equal(t, 40.0, byID["polish"].Earnings)
}

func TestGeneralReportPeriodEcho(t *testing.T) {
	start, end := day(2024, 2, 1, 0), day(2024, 2, 29, 23)

	r := General(nil, nil, start, end)

	assert.Equal(t, start, r.Period.StartDate)
	assert.Equal(t, end, r.Period.EndDate)
	assert.Zero(t, r.TotalEarnings)
	assert.Zero(t, r.AppointmentsCount)
}

func TestEmployeeWithoutCreditIsExcluded(t *testing.T) {
	e := models.Employee{ID: "e9"}

	apps := []models.Appointment{
		{
			ID:          "a1",
			Date:        day(2024, 1, 10, 10),
			Status:      "completed",
			TotalPrice:  100,
			EmployeeIDs: models.StringIDs{"e1"},
		},
	}

	r := ForEmployee(e, apps, day(2024, 1, 1, 0), day(2024, 1, 31, 23))

	assert.Zero(t, r.TotalEarnings)
	assert.Zero(t, r.AppointmentsCount)
	assert.Empty(t, r.AppointmentDetails)
}
