package notification

import (
	"context"
	"time"

	"github.com/aquareyes/carwash-admin/internal/models"
)

// Ledger is the append-only system event log. Entries are never edited
// after the fact; the only mutations are flipping the read flag and
// bulk delete.
type Ledger struct {
	repo Repository
}

func NewLedger(repo Repository) *Ledger {
	return &Ledger{repo: repo}
}

func (l *Ledger) Append(
	ctx context.Context,
	title string,
	message string,
	typ string,
) (*models.Notification, error) {

	if typ == "" {
		typ = models.NotificationInfo
	}

	n := &models.Notification{
		Title:     title,
		Message:   message,
		Type:      typ,
		IsRead:    false,
		Timestamp: time.Now(),
	}

	if err := l.repo.AppendNotification(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (l *Ledger) List(ctx context.Context) ([]models.Notification, error) {
	return l.repo.ListNotifications(ctx)
}

func (l *Ledger) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	return l.repo.MarkNotificationRead(ctx, id)
}

func (l *Ledger) MarkAllRead(ctx context.Context) (int64, error) {
	return l.repo.MarkAllNotificationsRead(ctx)
}

// ClearAll hard-deletes every entry. There is no archive.
func (l *Ledger) ClearAll(ctx context.Context) (int64, error) {
	return l.repo.DeleteAllNotifications(ctx)
}

func (l *Ledger) UnreadCount(ctx context.Context) (int64, error) {
	return l.repo.CountUnreadNotifications(ctx)
}
