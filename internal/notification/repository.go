package notification

import (
	"context"

	"github.com/aquareyes/carwash-admin/internal/models"
)

type Repository interface {
	// ListNotifications returns entries most recent first.
	ListNotifications(
		ctx context.Context,
	) ([]models.Notification, error)

	AppendNotification(
		ctx context.Context,
		n *models.Notification,
	) error

	MarkNotificationRead(
		ctx context.Context,
		id string,
	) (*models.Notification, error)

	MarkAllNotificationsRead(
		ctx context.Context,
	) (int64, error)

	DeleteAllNotifications(
		ctx context.Context,
	) (int64, error)

	CountUnreadNotifications(
		ctx context.Context,
	) (int64, error)
}
