package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-hijri/internal/calendar"
)

// TestParseDate covers the BDAY forms found in exported address books.
func TestParseDate(t *testing.T) {
	tests := []struct {
		value     string
		want      calendar.GregorianDate
		yearKnown bool
	}{
		{"1990-05-15", calendar.GregorianDate{Year: 1990, Month: 5, Day: 15}, true},
		{"19900515", calendar.GregorianDate{Year: 1990, Month: 5, Day: 15}, true},
		{"1990-05-15T00:00:00Z", calendar.GregorianDate{Year: 1990, Month: 5, Day: 15}, true},
		// The written date wins over the offset.
		{"1990-05-15T23:30:00+05:00", calendar.GregorianDate{Year: 1990, Month: 5, Day: 15}, true},
		{"--05-15", calendar.GregorianDate{Month: 5, Day: 15}, false},
		{"--0229", calendar.GregorianDate{Month: 2, Day: 29}, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, yearKnown, err := parseDate(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.yearKnown, yearKnown)
		})
	}

	for _, bad := range []string{"", "15/05/1990", "1990-13-01", "--13-01"} {
		_, _, err := parseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestEventUID(t *testing.T) {
	a := eventUID("month", "09", 1446)
	assert.Equal(t, a, eventUID("month", "09", 1446), "UIDs are deterministic")
	assert.NotEqual(t, a, eventUID("month", "09", 1447))
	assert.NotEqual(t, a, eventUID("birthday", "09", 1446))
	assert.Regexp(t, `^[0-9a-f-]{36}@gohijri$`, a)
}

func TestFeedYears_ClippedToRange(t *testing.T) {
	f := &feed{today: calendar.HijriDate{Year: 2000, Month: 6, Day: 1}}
	assert.Equal(t, []int{1999, 2000}, f.feedYears())

	f.today = calendar.HijriDate{Year: 1, Month: 1, Day: 1}
	assert.Equal(t, []int{1, 2}, f.feedYears())

	f.today = calendar.HijriDate{Year: 1446, Month: 9, Day: 1}
	assert.Equal(t, []int{1445, 1446, 1447}, f.feedYears())
}
