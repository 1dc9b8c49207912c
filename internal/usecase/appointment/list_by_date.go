package appointment

import (
	"context"
	"time"

	domain "github.com/aquareyes/carwash-admin/internal/domain/appointment"
	"github.com/aquareyes/carwash-admin/internal/models"
	"github.com/aquareyes/carwash-admin/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

// Execute returns every appointment (any status) in the local calendar
// day containing date.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
	loc *time.Location,
) ([]models.Appointment, error) {

	start, end := timezone.DayWindow(date, loc)
	return uc.repo.ListAppointmentsForDay(ctx, start, end)
}
