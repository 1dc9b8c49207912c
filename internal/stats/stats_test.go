package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquareyes/carwash-admin/internal/models"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Minsk")
	require.NoError(t, err)
	return loc
}

func completed(date time.Time, price float64) models.Appointment {
	return models.Appointment{
		Date:       date,
		TotalPrice: price,
		Status:     "completed",
	}
}

func TestComputeBasicTotals(t *testing.T) {
	loc := mustLoc(t)
	ref := time.Date(2024, 1, 10, 12, 0, 0, 0, loc)

	apps := []models.Appointment{
		completed(time.Date(2024, 1, 10, 9, 0, 0, 0, loc), 50),
		completed(time.Date(2024, 1, 10, 15, 0, 0, 0, loc), 30),
		completed(time.Date(2024, 1, 9, 11, 0, 0, 0, loc), 20),
		{Date: time.Date(2024, 1, 10, 16, 0, 0, 0, loc), TotalPrice: 40, Status: "pending"},
		{Date: time.Date(2024, 1, 10, 17, 0, 0, 0, loc), TotalPrice: 25, Status: "cancelled"},
	}

	s := Compute(apps, ref, loc)

	assert.Equal(t, 100.0, s.TotalEarnings)
	assert.Equal(t, 3, s.CompletedAppointments)
	assert.Equal(t, 80.0, s.TodayEarnings)
	assert.Equal(t, 2, s.TodayCompletedAppointments)

	assert.Equal(t, DayStat{Earnings: 80, Count: 2}, s.DailyStats["2024-01-10"])
	assert.Equal(t, DayStat{Earnings: 20, Count: 1}, s.DailyStats["2024-01-09"])
}

func TestComputeIsIdempotent(t *testing.T) {
	loc := mustLoc(t)
	ref := time.Date(2024, 3, 1, 8, 30, 0, 0, loc)

	apps := []models.Appointment{
		completed(time.Date(2024, 2, 28, 10, 0, 0, 0, loc), 12.5),
		completed(time.Date(2024, 3, 1, 9, 0, 0, 0, loc), 7.25),
	}

	first := Compute(apps, ref, loc)
	second := Compute(apps, ref, loc)

	assert.Equal(t, first, second)
}

func TestComputeConservation(t *testing.T) {
	loc := mustLoc(t)
	ref := time.Date(2024, 5, 20, 12, 0, 0, 0, loc)

	apps := []models.Appointment{
		completed(time.Date(2024, 5, 18, 9, 0, 0, 0, loc), 10),
		completed(time.Date(2024, 5, 19, 9, 0, 0, 0, loc), 20),
		completed(time.Date(2024, 5, 19, 14, 0, 0, 0, loc), 30),
		completed(time.Date(2024, 5, 20, 9, 0, 0, 0, loc), 40),
		{Date: time.Date(2024, 5, 20, 10, 0, 0, 0, loc), TotalPrice: 99, Status: "pending"},
	}

	s := Compute(apps, ref, loc)

	var earnings float64
	var count int
	for _, day := range s.DailyStats {
		earnings += day.Earnings
		count += day.Count
	}

	assert.Equal(t, s.TotalEarnings, earnings)
	assert.Equal(t, s.CompletedAppointments, count)

	assert.LessOrEqual(t, s.TodayEarnings, s.TotalEarnings)
	assert.LessOrEqual(t, s.TodayCompletedAppointments, s.CompletedAppointments)
}

func TestComputeTodayIsMidnightAnchored(t *testing.T) {
	loc := mustLoc(t)
	// Reference late in the evening: a rolling 24h window would catch
	// yesterday afternoon, the midnight-anchored one must not.
	ref := time.Date(2024, 1, 10, 23, 0, 0, 0, loc)

	apps := []models.Appointment{
		completed(time.Date(2024, 1, 9, 23, 30, 0, 0, loc), 100),
		completed(time.Date(2024, 1, 10, 0, 0, 0, 0, loc), 50),
		completed(time.Date(2024, 1, 10, 23, 59, 0, 0, loc), 25),
		completed(time.Date(2024, 1, 11, 0, 0, 0, 0, loc), 10),
	}

	s := Compute(apps, ref, loc)

	assert.Equal(t, 75.0, s.TodayEarnings)
	assert.Equal(t, 2, s.TodayCompletedAppointments)
}

func TestComputeNaNPriceCountsAsZero(t *testing.T) {
	loc := mustLoc(t)
	ref := time.Date(2024, 1, 10, 12, 0, 0, 0, loc)

	apps := []models.Appointment{
		completed(time.Date(2024, 1, 10, 9, 0, 0, 0, loc), math.NaN()),
		completed(time.Date(2024, 1, 10, 10, 0, 0, 0, loc), 30),
	}

	s := Compute(apps, ref, loc)

	assert.Equal(t, 30.0, s.TotalEarnings)
	assert.Equal(t, 2, s.CompletedAppointments)
	assert.Equal(t, DayStat{Earnings: 30, Count: 2}, s.DailyStats["2024-01-10"])
}

func TestComputeEmptySet(t *testing.T) {
	loc := mustLoc(t)

	s := Compute(nil, time.Date(2024, 1, 1, 0, 0, 0, 0, loc), loc)

	assert.Zero(t, s.TotalEarnings)
	assert.Zero(t, s.CompletedAppointments)
	assert.Empty(t, s.DailyStats)
}
