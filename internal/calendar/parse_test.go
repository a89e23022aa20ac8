package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-hijri/internal/calendar"
)

func TestParseGregorian(t *testing.T) {
	d, err := calendar.ParseGregorian("2024-07-08")
	require.NoError(t, err)
	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 7, Day: 8}, d)

	d, err = calendar.ParseGregorian(" 2024/7/8 ")
	require.NoError(t, err)
	assert.Equal(t, calendar.GregorianDate{Year: 2024, Month: 7, Day: 8}, d)

	_, err = calendar.ParseGregorian("2023-02-30")
	assert.ErrorIs(t, err, calendar.ErrDomain)

	var parseErr *calendar.ParseError
	_, err = calendar.ParseGregorian("yesterday")
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, calendar.Gregorian, parseErr.Calendar)

	_, err = calendar.ParseGregorian("2024-xx-01")
	assert.Error(t, err)
}

func TestParseHijri(t *testing.T) {
	tests := []struct {
		in   string
		want calendar.HijriDate
	}{
		{"1446-01-01", calendar.HijriDate{Year: 1446, Month: 1, Day: 1}},
		{"1420-09-24 AH", calendar.HijriDate{Year: 1420, Month: 9, Day: 24}},
		{"1445-12-30 ah", calendar.HijriDate{Year: 1445, Month: 12, Day: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := calendar.ParseHijri(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := calendar.ParseHijri("1446-12-30")
	assert.ErrorIs(t, err, calendar.ErrDomain, "1446 is not a leap year")

	_, err = calendar.ParseHijri("2500-01-01")
	assert.ErrorIs(t, err, calendar.ErrRange)
}

func TestParse_ByCalendar(t *testing.T) {
	d, err := calendar.Parse(calendar.Hijri, "1446-01-01")
	require.NoError(t, err)
	assert.Equal(t, calendar.Hijri, d.Calendar())

	d, err = calendar.Parse(calendar.Gregorian, "2024-07-08")
	require.NoError(t, err)
	assert.Equal(t, calendar.Gregorian, d.Calendar())

	_, err = calendar.Parse(calendar.Calendar(0), "2024-07-08")
	assert.Error(t, err)
}

func TestParseHijriMonth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"9", 9},
		{"Ramadan", 9},
		{"RAMADAN", 9},
		{"rabi al-awwal", 3},
		{"Rabīʿ al-Awwal", 3},
		{"Rabi' al-Thani", 4},
		{"Sha'ban", 8},
		{"shaban", 8},
		{"Dhul Hijjah", 12},
		{"Dhu al-Qi'dah", 11},
		{"رمضان", 9},
		{"ربيع الأول", 3},
		{"ذو الحجة", 12},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := calendar.ParseHijriMonth(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHijriMonth_Errors(t *testing.T) {
	_, err := calendar.ParseHijriMonth("13")
	assert.ErrorIs(t, err, calendar.ErrDomain)

	var nameErr *calendar.MonthNameError
	_, err = calendar.ParseHijriMonth("Ramadn")
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "Ramadan", nameErr.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "Ramadan"?`)

	_, err = calendar.ParseHijriMonth("Thermidor")
	require.ErrorAs(t, err, &nameErr)
	assert.Empty(t, nameErr.Suggestion)

	_, err = calendar.ParseHijriMonth("  ")
	assert.Error(t, err)
}
