package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "America/Sao_Paulo", Location("America/Sao_Paulo").String())
}

func TestDayKey(t *testing.T) {
	loc, err := time.LoadLocation(DefaultTimezone)
	require.NoError(t, err)

	// 23:30 UTC on Jan 1 is already Jan 2 in Minsk (UTC+3).
	utc := time.Date(2025, 1, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-02", DayKey(utc, loc))
	assert.Equal(t, "2025-01-01", DayKey(utc, time.UTC))
}

func TestDayWindow(t *testing.T) {
	loc, err := time.LoadLocation(DefaultTimezone)
	require.NoError(t, err)

	ref := time.Date(2025, 3, 15, 14, 45, 12, 0, loc)
	start, end := DayWindow(ref, loc)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, loc), start)
	assert.Equal(t, start.Add(24*time.Hour), end)

	// The window is half-open: midnight belongs to the day, the next
	// midnight does not.
	assert.False(t, start.After(ref))
	assert.True(t, ref.Before(end))
}

func TestDayWindowConvertsToLocal(t *testing.T) {
	loc, err := time.LoadLocation(DefaultTimezone)
	require.NoError(t, err)

	// 22:00 UTC Jan 1 = 01:00 Jan 2 in Minsk, so the window anchors
	// to Jan 2 local midnight.
	utc := time.Date(2025, 1, 1, 22, 0, 0, 0, time.UTC)
	start, _ := DayWindow(utc, loc)
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, loc), start)
}
