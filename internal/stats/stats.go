package stats

import (
	"math"
	"time"

	domain "github.com/aquareyes/carwash-admin/internal/domain/appointment"
	"github.com/aquareyes/carwash-admin/internal/models"
	"github.com/aquareyes/carwash-admin/internal/timezone"
)

type DayStat struct {
	Earnings float64 `json:"earnings"`
	Count    int     `json:"count"`
}

// Statistics is derived in full from the appointment set; nothing here
// is updated incrementally, so it can never drift from the true totals.
type Statistics struct {
	TotalEarnings              float64            `json:"total_earnings"`
	CompletedAppointments      int                `json:"completed_appointments"`
	TodayEarnings              float64            `json:"today_earnings"`
	TodayCompletedAppointments int                `json:"today_completed_appointments"`
	DailyStats                 map[string]DayStat `json:"daily_stats"`
}

// Compute runs a single pass over the full appointment set. Only
// completed appointments contribute. "Today" is the fixed 24-hour
// window anchored to local midnight around ref, not a rolling window.
func Compute(
	appointments []models.Appointment,
	ref time.Time,
	loc *time.Location,
) Statistics {

	s := Statistics{
		DailyStats: make(map[string]DayStat),
	}

	todayStart, todayEnd := timezone.DayWindow(ref, loc)

	for _, ap := range appointments {
		if !domain.Status(ap.Status).CountsTowardEarnings() {
			continue
		}

		price := ap.TotalPrice
		if math.IsNaN(price) {
			// Malformed totals count as zero so the dashboard keeps
			// rendering; the record itself still counts.
			price = 0
		}

		s.TotalEarnings += price
		s.CompletedAppointments++

		key := timezone.DayKey(ap.Date, loc)
		day := s.DailyStats[key]
		day.Earnings += price
		day.Count++
		s.DailyStats[key] = day

		if !ap.Date.Before(todayStart) && ap.Date.Before(todayEnd) {
			s.TodayEarnings += price
			s.TodayCompletedAppointments++
		}
	}

	return s
}
