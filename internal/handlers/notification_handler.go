package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aquareyes/carwash-admin/internal/httperr"
	"github.com/aquareyes/carwash-admin/internal/httpresp"
	"github.com/aquareyes/carwash-admin/internal/notification"
)

type NotificationHandler struct {
	ledger *notification.Ledger
}

func NewNotificationHandler(ledger *notification.Ledger) *NotificationHandler {
	return &NotificationHandler{ledger: ledger}
}

func (h *NotificationHandler) List(c *gin.Context) {
	notes, err := h.ledger.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Ошибка при загрузке уведомлений.")
		return
	}
	httpresp.List(c, notes)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.ledger.UnreadCount(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_count_notifications", "Ошибка при подсчёте уведомлений.")
		return
	}
	httpresp.OK(c, gin.H{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	n, err := h.ledger.MarkRead(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "notification_not_found") {
			httperr.NotFound(c, "notification_not_found", "Уведомление не найдено.")
			return
		}
		httperr.Internal(c, "failed_to_mark_notification", "Ошибка при обновлении уведомления.")
		return
	}
	httpresp.OK(c, n)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	count, err := h.ledger.MarkAllRead(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_mark_notifications", "Ошибка при обновлении уведомлений.")
		return
	}
	httpresp.OK(c, gin.H{"count": count})
}

func (h *NotificationHandler) ClearAll(c *gin.Context) {
	count, err := h.ledger.ClearAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_clear_notifications", "Ошибка при удалении уведомлений.")
		return
	}
	httpresp.OK(c, gin.H{"count": count})
}
