package appointment

import (
	"context"

	"github.com/aquareyes/carwash-admin/internal/models"
	"github.com/aquareyes/carwash-admin/internal/stats"
)

// StatsRecomputer re-derives the statistics snapshot from the full
// appointment set. Use cases call it after each earnings-affecting
// mutation resolves.
type StatsRecomputer interface {
	Recompute(ctx context.Context) (stats.Statistics, error)
}

// Notifier appends an entry to the notification ledger.
type Notifier interface {
	Append(
		ctx context.Context,
		title string,
		message string,
		typ string,
	) (*models.Notification, error)
}
