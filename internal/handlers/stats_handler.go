package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aquareyes/carwash-admin/internal/httpresp"
	"github.com/aquareyes/carwash-admin/internal/stats"
)

type StatsHandler struct {
	tracker *stats.Tracker
}

func NewStatsHandler(tracker *stats.Tracker) *StatsHandler {
	return &StatsHandler{tracker: tracker}
}

// Get serves the current snapshot. It is recomputed after every
// earnings-affecting mutation, so no rescan happens here.
func (h *StatsHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.tracker.Current())
}

func (h *StatsHandler) Today(c *gin.Context) {
	earnings, count := h.tracker.Today()
	httpresp.OK(c, gin.H{"earnings": earnings, "count": count})
}

func (h *StatsHandler) AllTime(c *gin.Context) {
	earnings, count := h.tracker.AllTime()
	httpresp.OK(c, gin.H{"earnings": earnings, "count": count})
}
