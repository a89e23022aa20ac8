package calendar_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-hijri/internal/calendar"
)

func TestAddDays(t *testing.T) {
	tests := []struct {
		name  string
		start calendar.HijriDate
		n     int
		want  calendar.HijriDate
	}{
		{"Zero", calendar.HijriDate{Year: 1446, Month: 3, Day: 10}, 0, calendar.HijriDate{Year: 1446, Month: 3, Day: 10}},
		{"Within month", calendar.HijriDate{Year: 1446, Month: 3, Day: 10}, 5, calendar.HijriDate{Year: 1446, Month: 3, Day: 15}},
		{"30-day month rollover", calendar.HijriDate{Year: 1446, Month: 1, Day: 30}, 1, calendar.HijriDate{Year: 1446, Month: 2, Day: 1}},
		{"29-day month rollover", calendar.HijriDate{Year: 1446, Month: 2, Day: 29}, 1, calendar.HijriDate{Year: 1446, Month: 3, Day: 1}},
		// 1445 is a leap year of the cycle: Dhu al-Hijjah has 30 days.
		{"Leap Dhu al-Hijjah 29 -> 30", calendar.HijriDate{Year: 1445, Month: 12, Day: 29}, 1, calendar.HijriDate{Year: 1445, Month: 12, Day: 30}},
		{"Leap Dhu al-Hijjah 30 -> new year", calendar.HijriDate{Year: 1445, Month: 12, Day: 30}, 1, calendar.HijriDate{Year: 1446, Month: 1, Day: 1}},
		{"Common Dhu al-Hijjah -> new year", calendar.HijriDate{Year: 1446, Month: 12, Day: 29}, 1, calendar.HijriDate{Year: 1447, Month: 1, Day: 1}},
		{"Full leap year", calendar.HijriDate{Year: 1445, Month: 1, Day: 1}, 355, calendar.HijriDate{Year: 1446, Month: 1, Day: 1}},
		{"Full common year", calendar.HijriDate{Year: 1446, Month: 1, Day: 1}, 354, calendar.HijriDate{Year: 1447, Month: 1, Day: 1}},
		{"Full 30-year cycle", calendar.HijriDate{Year: 1441, Month: 1, Day: 1}, 10631, calendar.HijriDate{Year: 1471, Month: 1, Day: 1}},
		{"Negative", calendar.HijriDate{Year: 1446, Month: 1, Day: 1}, -1, calendar.HijriDate{Year: 1445, Month: 12, Day: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calendar.AddDays(tt.start, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestAddDays_MatchesJDN compares repeated single-day steps with one large
// jump and with the JDN arithmetic, across several leap years.
func TestAddDays_MatchesJDN(t *testing.T) {
	start := calendar.HijriDate{Year: 1440, Month: 11, Day: 20}
	startJDN, err := calendar.HijriToJDN(start)
	require.NoError(t, err)

	d := start
	for i := 1; i <= 3000; i++ {
		d, err = calendar.AddDays(d, 1)
		require.NoError(t, err)
		require.Equal(t, calendar.JDNToHijri(startJDN+calendar.JDN(i)), d, "step %d", i)
	}

	jump, err := calendar.AddDays(start, 3000)
	require.NoError(t, err)
	assert.Equal(t, d, jump)
}

func TestAddDays_Errors(t *testing.T) {
	_, err := calendar.AddDays(calendar.HijriDate{Year: 1446, Month: 2, Day: 30}, 1)
	assert.ErrorIs(t, err, calendar.ErrDomain)

	_, err = calendar.AddDays(calendar.HijriDate{Year: 2000, Month: 12, Day: 29}, 1)
	assert.ErrorIs(t, err, calendar.ErrRange)

	_, err = calendar.AddDays(calendar.HijriDate{Year: 1, Month: 1, Day: 1}, -1)
	assert.ErrorIs(t, err, calendar.ErrRange)
}

func TestAddDays_HugeOffsets(t *testing.T) {
	start := calendar.HijriDate{Year: 1446, Month: 1, Day: 1}
	for _, n := range []int{math.MaxInt, math.MinInt, math.MaxInt32, math.MinInt32, 6148914691236359512} {
		got, err := calendar.AddDays(start, n)
		require.Error(t, err, "offset %d", n)
		assert.ErrorIs(t, err, calendar.ErrRange)
		assert.Zero(t, got)

		var rangeErr *calendar.RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, calendar.Hijri, rangeErr.Calendar)
		if n > 0 {
			assert.Equal(t, int64(calendar.MaxHijriYear+1), rangeErr.Year)
		} else {
			assert.Equal(t, int64(calendar.MinYear-1), rangeErr.Year)
		}
	}

	g := calendar.GregorianDate{Year: 2025, Month: 3, Day: 1}
	for _, n := range []int{math.MaxInt, math.MinInt} {
		_, err := calendar.AddGregorianDays(g, n)
		assert.ErrorIs(t, err, calendar.ErrRange, "offset %d", n)
	}
}

func TestAddDays_WindowEdges(t *testing.T) {
	first := calendar.HijriDate{Year: 1, Month: 1, Day: 1}
	last := calendar.HijriDate{Year: calendar.MaxHijriYear, Month: 12, Day: calendar.HijriMonthLength(calendar.MaxHijriYear, 12)}

	span, err := calendar.DaysBetween(first, last)
	require.NoError(t, err)

	got, err := calendar.AddDays(first, int(span))
	require.NoError(t, err)
	assert.Equal(t, last, got)

	got, err = calendar.AddDays(last, -int(span))
	require.NoError(t, err)
	assert.Equal(t, first, got)

	_, err = calendar.AddDays(first, int(span)+1)
	assert.ErrorIs(t, err, calendar.ErrRange)

	end := calendar.GregorianDate{Year: calendar.MaxGregorianYear, Month: 12, Day: 31}
	_, err = calendar.AddGregorianDays(end, 1)
	assert.ErrorIs(t, err, calendar.ErrRange)
	back, err := calendar.AddGregorianDays(end, -365)
	require.NoError(t, err)
	assert.Equal(t, calendar.GregorianDate{Year: 9998, Month: 12, Day: 31}, back)
}


func TestAddGregorianDays(t *testing.T) {
	got, err := calendar.AddGregorianDays(calendar.GregorianDate{Year: 2024, Month: 2, Day: 28}, 1)
	require.NoError(t, err)
	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 2, Day: 29}, got)

	got, err = calendar.AddGregorianDays(calendar.GregorianDate{Year: 2023, Month: 12, Day: 31}, 1)
	require.NoError(t, err)
	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 1, Day: 1}, got)

	_, err = calendar.AddGregorianDays(calendar.GregorianDate{Year: 9999, Month: 12, Day: 31}, 1)
	assert.ErrorIs(t, err, calendar.ErrRange)
}

func TestDaysBetween(t *testing.T) {
	n, err := calendar.DaysBetween(
		calendar.GregorianDate{Year: 2000, Month: 1, Day: 1},
		calendar.HijriDate{Year: 1420, Month: 9, Day: 24},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = calendar.DaysBetween(
		calendar.HijriDate{Year: 1446, Month: 1, Day: 1},
		calendar.HijriDate{Year: 1445, Month: 1, Day: 1},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(-355), n)

	_, err = calendar.DaysBetween(calendar.GregorianDate{Year: 2023, Month: 2, Day: 29}, calendar.HijriDate{Year: 1445, Month: 1, Day: 1})
	assert.ErrorIs(t, err, calendar.ErrDomain)
}

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		date calendar.GregorianDate
		want calendar.Weekday
	}{
		{calendar.GregorianDate{Year: 2024, Month: 1, Day: 1}, calendar.Monday},
		{calendar.GregorianDate{Year: 2000, Month: 1, Day: 1}, calendar.Saturday},
		{calendar.GregorianDate{Year: 1970, Month: 1, Day: 1}, calendar.Thursday},
		{calendar.GregorianDate{Year: 2024, Month: 7, Day: 8}, calendar.Monday},
		{calendar.GregorianDate{Year: 622, Month: 7, Day: 19}, calendar.Friday},
		// Before any epoch: JDN 0 was a Monday.
		{calendar.GregorianDate{Year: -4713, Month: 11, Day: 24}, calendar.Monday},
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.WeekdayOf(tt.date).Weekday)
		})
	}
}

// TestWeekdayOf_MatchesTimePackage compares against the standard library
// for ten years of consecutive days.
func TestWeekdayOf_MatchesTimePackage(t *testing.T) {
	day := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3653; i++ {
		d := day.AddDate(0, 0, i)
		got := calendar.WeekdayOf(calendar.GregorianFromTime(d))
		require.Equal(t, d.Weekday(), got.Weekday.TimeWeekday(), "date %s", d.Format(time.DateOnly))
		require.Equal(t, d.Weekday().String(), got.Name)
	}
}

func TestWeekdayInfo(t *testing.T) {
	w := calendar.WeekdayOf(calendar.GregorianDate{Year: 2024, Month: 1, Day: 5})
	assert.Equal(t, calendar.Friday, w.Weekday)
	assert.Equal(t, "Friday", w.Name)
	assert.Equal(t, "الجمعة", w.SecondaryName)
	assert.Equal(t, "Fri", w.Short())
	assert.Equal(t, "Friday", calendar.Friday.String())
	assert.Equal(t, "weekday(9)", calendar.Weekday(9).String())
}

// TestUpcoming reproduces the two-week listing and checks it against a
// listing crossing the 30-day Dhu al-Hijjah of a leap year.
func TestUpcoming(t *testing.T) {
	days, err := calendar.Upcoming(calendar.HijriDate{Year: 1445, Month: 12, Day: 25}, 14)
	require.NoError(t, err)
	require.Len(t, days, 14)

	assert.Equal(t, calendar.HijriDate{Year: 1445, Month: 12, Day: 25}, days[0].Hijri)
	assert.Equal(t, calendar.HijriDate{Year: 1445, Month: 12, Day: 30}, days[5].Hijri)
	assert.Equal(t, calendar.HijriDate{Year: 1446, Month: 1, Day: 1}, days[6].Hijri)
	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 7, Day: 8}, days[6].Gregorian)
	assert.Equal(t, calendar.Monday, days[6].Weekday.Weekday)

	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].JDN+1, days[i].JDN)
	}

	empty, err := calendar.Upcoming(calendar.HijriDate{Year: 1446, Month: 1, Day: 1}, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = calendar.Upcoming(calendar.HijriDate{Year: 1446, Month: 1, Day: 1}, -1)
	assert.ErrorIs(t, err, calendar.ErrDomain)

	_, err = calendar.Upcoming(calendar.HijriDate{Year: 2000, Month: 12, Day: 28}, 5)
	assert.ErrorIs(t, err, calendar.ErrRange)
}

func TestMonthGrid(t *testing.T) {
	view, err := calendar.MonthGrid(1445, 12)
	require.NoError(t, err)

	assert.Equal(t, "Dhu al-Hijjah", view.Month.Name)
	assert.Equal(t, 30, view.Length)
	assert.True(t, view.Leap)
	assert.Len(t, view.Days, 30)
	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 6, Day: 8}, view.First)
	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 7, Day: 7}, view.Last)
	assert.Equal(t, calendar.Saturday, view.Days[0].Weekday.Weekday)

	_, err = calendar.MonthGrid(1445, 13)
	assert.ErrorIs(t, err, calendar.ErrDomain)
}

// TestAnniversary covers the only month whose length varies: a birth on
// 30 Dhu al-Hijjah recurs on 1 Muharram in common years.
func TestAnniversary(t *testing.T) {
	conv := calendar.Converter{}
	birth := calendar.HijriDate{Year: 1445, Month: 12, Day: 30}

	tests := []struct {
		year int
		want calendar.HijriDate
	}{
		{1445, calendar.HijriDate{Year: 1445, Month: 12, Day: 30}},
		{1446, calendar.HijriDate{Year: 1447, Month: 1, Day: 1}},
		{1447, calendar.HijriDate{Year: 1447, Month: 12, Day: 30}},
	}
	for _, tt := range tests {
		got, err := conv.Anniversary(birth, tt.year)
		require.NoError(t, err, tt.year)
		assert.Equal(t, tt.want, got, tt.year)
	}

	got, err := conv.Anniversary(calendar.HijriDate{Year: 1410, Month: 9, Day: 30}, 1446)
	require.NoError(t, err)
	assert.Equal(t, calendar.HijriDate{Year: 1446, Month: 9, Day: 30}, got)

	_, err = conv.Anniversary(birth, 2001)
	assert.ErrorIs(t, err, calendar.ErrRange)

	_, err = conv.Anniversary(calendar.HijriDate{Year: 2000, Month: 12, Day: 29}, 2000)
	require.NoError(t, err)

	_, err = conv.Anniversary(calendar.HijriDate{Year: 1446, Month: 12, Day: 30}, 1447)
	assert.ErrorIs(t, err, calendar.ErrDomain, "the birth date itself must be valid")
}

func TestNextAnniversary(t *testing.T) {
	conv := calendar.Converter{}
	birth := calendar.HijriDate{Year: 1445, Month: 12, Day: 30}

	date, year, err := conv.NextAnniversary(birth, calendar.HijriDate{Year: 1446, Month: 5, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, calendar.HijriDate{Year: 1447, Month: 1, Day: 1}, date)
	assert.Equal(t, 1446, year)

	date, year, err = conv.NextAnniversary(birth, calendar.HijriDate{Year: 1447, Month: 1, Day: 2})
	require.NoError(t, err)
	assert.Equal(t, calendar.HijriDate{Year: 1447, Month: 12, Day: 30}, date)
	assert.Equal(t, 1447, year)

	ramadan := calendar.HijriDate{Year: 1410, Month: 9, Day: 1}
	date, year, err = conv.NextAnniversary(ramadan, calendar.HijriDate{Year: 1446, Month: 9, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, calendar.HijriDate{Year: 1446, Month: 9, Day: 1}, date, "today counts as the next anniversary")
	assert.Equal(t, 1446, year)
}
