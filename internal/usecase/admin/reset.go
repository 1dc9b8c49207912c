package admin

import (
	"context"
	"log"

	"github.com/aquareyes/carwash-admin/internal/audit"
	"github.com/aquareyes/carwash-admin/internal/models"
	"github.com/aquareyes/carwash-admin/internal/stats"
)

// Wiper removes every record from every collection in one shot.
type Wiper interface {
	WipeAllData(ctx context.Context) error
}

type StatsRecomputer interface {
	Recompute(ctx context.Context) (stats.Statistics, error)
}

type Notifier interface {
	Append(
		ctx context.Context,
		title string,
		message string,
		typ string,
	) (*models.Notification, error)
}

// ResetData is the settings-page danger zone: it wipes appointments,
// reference data and the notification ledger, then leaves a single
// warning entry behind so the reset itself is visible.
type ResetData struct {
	wiper Wiper
	stats StatsRecomputer
	notes Notifier
	audit *audit.Dispatcher
}

func NewResetData(
	wiper Wiper,
	stats StatsRecomputer,
	notes Notifier,
	audit *audit.Dispatcher,
) *ResetData {
	return &ResetData{
		wiper: wiper,
		stats: stats,
		notes: notes,
		audit: audit,
	}
}

func (uc *ResetData) Execute(ctx context.Context, userID string) error {
	if err := uc.wiper.WipeAllData(ctx); err != nil {
		return err
	}

	if _, err := uc.stats.Recompute(ctx); err != nil {
		log.Println("stats recompute after reset:", err)
	}

	if _, err := uc.notes.Append(
		ctx,
		"Сброс данных",
		"Все данные приложения были успешно удалены",
		models.NotificationWarning,
	); err != nil {
		log.Println("reset notification:", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "data_reset",
		Entity: "all",
	})

	return nil
}
