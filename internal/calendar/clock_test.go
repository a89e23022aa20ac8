package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-hijri/internal/calendar"
)

func TestToday(t *testing.T) {
	clock := calendar.FixedClock(time.Date(2024, 7, 8, 9, 30, 0, 0, time.UTC))

	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 7, Day: 8}, calendar.TodayGregorian(clock))

	h, err := calendar.TodayHijri(clock)
	require.NoError(t, err)
	assert.Equal(t, calendar.HijriDate{Year: 1446, Month: 1, Day: 1}, h)

	d, err := calendar.Today(clock, calendar.Hijri)
	require.NoError(t, err)
	assert.Equal(t, h, d)

	d, err = calendar.Today(clock, calendar.Gregorian)
	require.NoError(t, err)
	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 7, Day: 8}, d)
}

// TestToday_LocalDate verifies that "today" is the calendar date of the
// clock's own location, not the UTC date.
func TestToday_LocalDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	// 23:30 UTC on 7 July is already 8 July in Tokyo.
	instant := time.Date(2024, 7, 7, 23, 30, 0, 0, time.UTC)

	utc, err := calendar.TodayHijri(calendar.FixedClock(instant))
	require.NoError(t, err)
	local, err := calendar.TodayHijri(calendar.FixedClock(instant.In(tokyo)))
	require.NoError(t, err)

	assert.Equal(t, calendar.HijriDate{Year: 1445, Month: 12, Day: 30}, utc)
	assert.Equal(t, calendar.HijriDate{Year: 1446, Month: 1, Day: 1}, local)
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	now := calendar.RealClock{}.Now()
	assert.False(t, now.Before(before))
}
