package appointment

import (
	"context"
	"log"

	"github.com/aquareyes/carwash-admin/internal/audit"
	domain "github.com/aquareyes/carwash-admin/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	stats StatsRecomputer
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	stats StatsRecomputer,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		stats: stats,
		audit: audit,
	}
}

// Execute hard-deletes the record. Appointments are not soft-deleted;
// only reference data is.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	userID string,
	appointmentID string,
) (string, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return "", err
	}

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return "", err
	}

	// Removing a completed record changes totals; removing anything
	// else cannot.
	if domain.Status(ap.Status).CountsTowardEarnings() {
		if _, err := uc.stats.Recompute(ctx); err != nil {
			log.Println("stats recompute after delete:", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return appointmentID, nil
}
