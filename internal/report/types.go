package report

import (
	"time"

	"github.com/aquareyes/carwash-admin/internal/models"
)

type Period struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type EmployeeStat struct {
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	Earnings          float64 `json:"earnings"`
	AppointmentsCount int     `json:"appointments_count"`
}

type ServiceStat struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Count       int     `json:"count"`
	Earnings    float64 `json:"earnings"`
}

// GeneralReport aggregates a period across all employees and services.
// Neither stat slice carries an ordering guarantee; callers sort for
// display.
type GeneralReport struct {
	Period            Period         `json:"period"`
	TotalEarnings     float64        `json:"total_earnings"`
	AppointmentsCount int            `json:"appointments_count"`
	EmployeeStats     []EmployeeStat `json:"employee_stats"`
	ServiceStats      []ServiceStat  `json:"service_stats"`
}

type AppointmentDetail struct {
	ID       string                  `json:"id"`
	Date     time.Time               `json:"date"`
	Services models.ServiceSnapshots `json:"services"`
	Earnings float64                 `json:"earnings"`
}

type EmployeeReport struct {
	EmployeeID         string              `json:"employee_id"`
	Employee           models.Employee     `json:"employee"`
	TotalEarnings      float64             `json:"total_earnings"`
	AppointmentsCount  int                 `json:"appointments_count"`
	AppointmentDetails []AppointmentDetail `json:"appointment_details"`
}

type DailyReport struct {
	Count         int     `json:"count"`
	TotalEarnings float64 `json:"total_earnings"`
}
