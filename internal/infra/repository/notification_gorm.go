package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aquareyes/carwash-admin/internal/httperr"
	"github.com/aquareyes/carwash-admin/internal/models"
	"github.com/aquareyes/carwash-admin/internal/notification"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) ListNotifications(
	ctx context.Context,
) ([]models.Notification, error) {

	var notes []models.Notification
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NotificationGormRepository) AppendNotification(
	ctx context.Context,
	n *models.Notification,
) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationGormRepository) MarkNotificationRead(
	ctx context.Context,
	id string,
) (*models.Notification, error) {

	var n models.Notification
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("notification_not_found")
	}
	if err != nil {
		return nil, err
	}

	n.IsRead = true
	if err := r.db.WithContext(ctx).Save(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationGormRepository) MarkAllNotificationsRead(
	ctx context.Context,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *NotificationGormRepository) DeleteAllNotifications(
	ctx context.Context,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}

func (r *NotificationGormRepository) CountUnreadNotifications(
	ctx context.Context,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}

// Compile-time check
var _ notification.Repository = (*NotificationGormRepository)(nil)
