package appointment

import (
	"context"
	"time"

	"github.com/aquareyes/carwash-admin/internal/models"
)

type Repository interface {
	// -------- Appointment (read) --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// GetAppointment reports a missing id as a BusinessError coded
	// "appointment_not_found". Any other error is a storage failure
	// and must carry its original cause.
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error
}
