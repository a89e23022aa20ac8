package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-hijri/internal/calendar"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name  string
		cal   calendar.Calendar
		y     int
		m     int
		d     int
		valid bool
	}{
		{"Gregorian 30 February", calendar.Gregorian, 2023, 2, 30, false},
		{"Gregorian 29 February common year", calendar.Gregorian, 2023, 2, 29, false},
		{"Gregorian 29 February leap year", calendar.Gregorian, 2024, 2, 29, true},
		{"Gregorian 29 February 1900", calendar.Gregorian, 1900, 2, 29, false},
		{"Gregorian 29 February 2000", calendar.Gregorian, 2000, 2, 29, true},
		{"Gregorian 31 April", calendar.Gregorian, 2024, 4, 31, false},
		{"Gregorian 31 December", calendar.Gregorian, 2024, 12, 31, true},
		{"Gregorian month 13", calendar.Gregorian, 2024, 13, 1, false},
		{"Gregorian day 0", calendar.Gregorian, 2024, 1, 0, false},
		{"Gregorian year 0", calendar.Gregorian, 0, 1, 1, false},
		{"Gregorian year 10000", calendar.Gregorian, 10000, 1, 1, false},
		{"Hijri 31 Muharram", calendar.Hijri, 1445, 1, 31, false},
		{"Hijri 30 Muharram", calendar.Hijri, 1445, 1, 30, true},
		{"Hijri 30 Safar", calendar.Hijri, 1445, 2, 30, false},
		{"Hijri 30 Dhu al-Hijjah leap year", calendar.Hijri, 1445, 12, 30, true},
		{"Hijri 30 Dhu al-Hijjah common year", calendar.Hijri, 1446, 12, 30, false},
		{"Hijri month 0", calendar.Hijri, 1446, 0, 1, false},
		{"Hijri year 0", calendar.Hijri, 0, 1, 1, false},
		{"Hijri year 2001", calendar.Hijri, 2001, 1, 1, false},
		{"Unknown calendar", calendar.Calendar(0), 2024, 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, calendar.IsValidDate(tt.cal, tt.y, tt.m, tt.d))
		})
	}
}

func TestValidate_ErrorTypes(t *testing.T) {
	err := calendar.Validate(calendar.HijriDate{Year: 1445, Month: 1, Day: 31})
	require.Error(t, err)

	var domainErr *calendar.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "day", domainErr.Field)
	assert.Equal(t, 30, domainErr.Max)
	assert.ErrorIs(t, err, calendar.ErrDomain)
	assert.NotErrorIs(t, err, calendar.ErrRange)
	assert.Equal(t, "calendar: invalid hijri day 31 for 1445-01 (want 1..30)", err.Error())

	err = calendar.Validate(calendar.GregorianDate{Year: 2024, Month: 13, Day: 1})
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "month", domainErr.Field)
	assert.Equal(t, "calendar: invalid gregorian month 13 for 2024 (want 1..12)", err.Error())

	err = calendar.Validate(calendar.HijriDate{Year: 5000, Month: 1, Day: 1})
	var rangeErr *calendar.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, calendar.MaxHijriYear, rangeErr.Max)
	assert.ErrorIs(t, err, calendar.ErrRange)

	assert.Error(t, calendar.Validate(nil))
}

// TestValidatorAgreesWithConverter checks that the day bound accepted by the
// validator is exactly the set of days the converter walks through.
func TestValidatorAgreesWithConverter(t *testing.T) {
	for y := 1400; y <= 1500; y++ {
		start, err := calendar.HijriToJDN(calendar.HijriDate{Year: y, Month: 1, Day: 1})
		require.NoError(t, err)
		next, err := calendar.HijriToJDN(calendar.HijriDate{Year: y + 1, Month: 1, Day: 1})
		require.NoError(t, err)
		assert.Equal(t, calendar.JDN(calendar.HijriYearLength(y)), next-start, "year %d", y)
		assert.Equal(t, calendar.IsHijriLeapYear(y), calendar.IsValidDate(calendar.Hijri, y, 12, 30), "year %d", y)
	}
}

func TestIsValidHijriDayApprox(t *testing.T) {
	//nolint:staticcheck // exercising the deprecated check on purpose
	approx := calendar.IsValidHijriDayApprox

	assert.True(t, approx(1, 30))
	assert.False(t, approx(1, 31))
	assert.False(t, approx(2, 30))
	assert.False(t, approx(13, 1))
	assert.False(t, approx(1, 0))

	// The approximation accepts 30 Dhu al-Hijjah in every year; the tabular
	// cycle only in leap years.
	assert.True(t, approx(12, 30))
	assert.False(t, calendar.IsValidDate(calendar.Hijri, 1446, 12, 30))
}

func TestMonthLength(t *testing.T) {
	assert.Equal(t, 29, calendar.MonthLength(calendar.Gregorian, 2024, 2))
	assert.Equal(t, 28, calendar.MonthLength(calendar.Gregorian, 2100, 2))
	assert.Equal(t, 30, calendar.MonthLength(calendar.Hijri, 1445, 12))
	assert.Equal(t, 29, calendar.MonthLength(calendar.Hijri, 1446, 12))
	assert.Equal(t, 0, calendar.MonthLength(calendar.Hijri, 1446, 0))
	assert.Equal(t, 0, calendar.MonthLength(calendar.Calendar(7), 1446, 1))
}
