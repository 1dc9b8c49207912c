package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aquareyes/carwash-admin/internal/httperr"
	"github.com/aquareyes/carwash-admin/internal/httpresp"
	"github.com/aquareyes/carwash-admin/internal/middleware"
	ucAdmin "github.com/aquareyes/carwash-admin/internal/usecase/admin"
)

type AdminHandler struct {
	resetUC *ucAdmin.ResetData
}

func NewAdminHandler(resetUC *ucAdmin.ResetData) *AdminHandler {
	return &AdminHandler{resetUC: resetUC}
}

// ResetData wipes every collection. The client shows a confirmation
// dialog before calling this; the API itself asks no questions.
func (h *AdminHandler) ResetData(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.resetUC.Execute(c.Request.Context(), userID); err != nil {
		httperr.Internal(c, "failed_to_reset_data", "Ошибка при удалении данных.")
		return
	}

	httpresp.OK(c, gin.H{"status": "reset"})
}
