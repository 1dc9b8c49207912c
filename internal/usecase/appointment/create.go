package appointment

import (
	"context"
	"log"

	"github.com/aquareyes/carwash-admin/internal/audit"
	domain "github.com/aquareyes/carwash-admin/internal/domain/appointment"
	"github.com/aquareyes/carwash-admin/internal/models"
)

type CreateAppointment struct {
	repo  domain.Repository
	stats StatsRecomputer
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	stats StatsRecomputer,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		stats: stats,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	userID string,
	draft domain.Draft,
) (*models.Appointment, error) {

	// Validation runs before any storage call; nothing is written on
	// failure.
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	ap := draft.ToModel()

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if _, err := uc.stats.Recompute(ctx); err != nil {
		// The record is already persisted; a stale snapshot is
		// corrected on the next recompute.
		log.Println("stats recompute after create:", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
