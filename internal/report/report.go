package report

import (
	"time"

	domain "github.com/aquareyes/carwash-admin/internal/domain/appointment"
	"github.com/aquareyes/carwash-admin/internal/models"
	"github.com/aquareyes/carwash-admin/internal/timezone"
)

// CompletedInRange keeps completed appointments with
// start <= date <= end, inclusive on both ends.
func CompletedInRange(
	appointments []models.Appointment,
	start time.Time,
	end time.Time,
) []models.Appointment {

	var out []models.Appointment
	for _, ap := range appointments {
		if !domain.Status(ap.Status).CountsTowardEarnings() {
			continue
		}
		if ap.Date.Before(start) || ap.Date.After(end) {
			continue
		}
		out = append(out, ap)
	}
	return out
}

// split is the even earnings split: the whole job's price divided by
// the number of employees credited on it.
func split(ap models.Appointment) float64 {
	if len(ap.EmployeeIDs) == 0 {
		return 0
	}
	return ap.TotalPrice / float64(len(ap.EmployeeIDs))
}

// General builds the period report. Employee earnings use the even
// split rule; employees with no matching appointments are dropped.
// Service stats accumulate from the snapshots stored on each
// appointment, never from the live catalog.
func General(
	appointments []models.Appointment,
	employees []models.Employee,
	start time.Time,
	end time.Time,
) GeneralReport {

	period := CompletedInRange(appointments, start, end)

	r := GeneralReport{
		Period:            Period{StartDate: start, EndDate: end},
		AppointmentsCount: len(period),
	}

	for _, ap := range period {
		r.TotalEarnings += ap.TotalPrice
	}

	for _, emp := range employees {
		var earnings float64
		var count int
		for _, ap := range period {
			if !ap.EmployeeIDs.Contains(emp.ID) {
				continue
			}
			earnings += split(ap)
			count++
		}
		if count == 0 {
			continue
		}
		r.EmployeeStats = append(r.EmployeeStats, EmployeeStat{
			EmployeeID:        emp.ID,
			EmployeeName:      emp.FullName(),
			Earnings:          earnings,
			AppointmentsCount: count,
		})
	}

	byService := make(map[string]*ServiceStat)
	var order []string
	for _, ap := range period {
		for _, svc := range ap.Services {
			stat, ok := byService[svc.ServiceID]
			if !ok {
				stat = &ServiceStat{
					ServiceID:   svc.ServiceID,
					ServiceName: svc.Name,
				}
				byService[svc.ServiceID] = stat
				order = append(order, svc.ServiceID)
			}
			stat.Count += svc.Quantity
			stat.Earnings += svc.Price * float64(svc.Quantity)
		}
	}
	for _, id := range order {
		r.ServiceStats = append(r.ServiceStats, *byService[id])
	}

	return r
}

// ForEmployee builds a single employee's itemized report over the
// period, using the same even split rule.
func ForEmployee(
	employee models.Employee,
	appointments []models.Appointment,
	start time.Time,
	end time.Time,
) EmployeeReport {

	r := EmployeeReport{
		EmployeeID: employee.ID,
		Employee:   employee,
	}

	for _, ap := range CompletedInRange(appointments, start, end) {
		if !ap.EmployeeIDs.Contains(employee.ID) {
			continue
		}
		earnings := split(ap)
		r.TotalEarnings += earnings
		r.AppointmentsCount++
		r.AppointmentDetails = append(r.AppointmentDetails, AppointmentDetail{
			ID:       ap.ID,
			Date:     ap.Date,
			Services: ap.Services,
			Earnings: earnings,
		})
	}

	return r
}

// Daily totals the completed appointments in the calendar day of date.
func Daily(
	appointments []models.Appointment,
	date time.Time,
	loc *time.Location,
) DailyReport {

	start, end := timezone.DayWindow(date, loc)
	// DayWindow's end is exclusive; the shared filter is inclusive.
	period := CompletedInRange(appointments, start, end.Add(-time.Nanosecond))

	r := DailyReport{Count: len(period)}
	for _, ap := range period {
		r.TotalEarnings += ap.TotalPrice
	}
	return r
}
