package appointment

import (
	"context"
	"fmt"
	"log"

	"github.com/aquareyes/carwash-admin/internal/audit"
	domain "github.com/aquareyes/carwash-admin/internal/domain/appointment"
	"github.com/aquareyes/carwash-admin/internal/models"
)

type UpdateAppointment struct {
	repo  domain.Repository
	stats StatsRecomputer
	notes Notifier
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	stats StatsRecomputer,
	notes Notifier,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		stats: stats,
		notes: notes,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	userID string,
	appointmentID string,
	patch domain.Patch,
) (*models.Appointment, error) {

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	// A miss arrives as the not-found business error; anything else is
	// a storage failure and propagates with its cause intact.
	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	prev := domain.Status(ap.Status)
	patch.Apply(ap)
	next := domain.Status(ap.Status)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	completedNow := next == domain.StatusCompleted && prev != domain.StatusCompleted
	if completedNow {
		// Exactly one completion notification per transition; updating
		// an already-completed job must not emit another.
		_, err := uc.notes.Append(
			ctx,
			"Запись выполнена",
			fmt.Sprintf("Сумма %.2f BYN добавлена в статистику.", ap.TotalPrice),
			models.NotificationSuccess,
		)
		if err != nil {
			log.Println("completion notification:", err)
		}
	}

	// A pending→cancelled edit never moves earnings, so the snapshot
	// is left alone unless a completed record was involved.
	if prev.CountsTowardEarnings() || next.CountsTowardEarnings() {
		if _, err := uc.stats.Recompute(ctx); err != nil {
			log.Println("stats recompute after update:", err)
		}
	}

	action := "appointment_updated"
	if completedNow {
		action = "appointment_completed"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
