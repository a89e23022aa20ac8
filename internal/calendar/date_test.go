package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-hijri/internal/calendar"
	"gopkg.in/yaml.v3"
)

type dayRecord struct {
	Calendar  calendar.Calendar      `json:"calendar" yaml:"calendar"`
	Hijri     calendar.HijriDate     `json:"hijri" yaml:"hijri"`
	Gregorian calendar.GregorianDate `json:"gregorian" yaml:"gregorian"`
}

// TestDates_Serialization checks the text form used by the CLI output
// documents: dates render as YYYY-MM-DD and the calendar by name.
func TestDates_Serialization(t *testing.T) {
	rec := dayRecord{
		Calendar:  calendar.Hijri,
		Hijri:     calendar.HijriDate{Year: 1446, Month: 1, Day: 1},
		Gregorian: calendar.GregorianDate{Year: 2024, Month: 7, Day: 8},
	}

	js, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"calendar":"hijri","hijri":"1446-01-01","gregorian":"2024-07-08"}`, string(js))

	var fromJSON dayRecord
	require.NoError(t, json.Unmarshal(js, &fromJSON))
	assert.Equal(t, rec, fromJSON)

	ys, err := yaml.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(ys), "1446-01-01")
	assert.Contains(t, string(ys), "calendar: hijri")

	var fromYAML dayRecord
	require.NoError(t, yaml.Unmarshal(ys, &fromYAML))
	assert.Equal(t, rec, fromYAML)
}

func TestDates_RejectInvalidText(t *testing.T) {
	var rec dayRecord
	err := json.Unmarshal([]byte(`{"hijri":"1446-12-30"}`), &rec)
	assert.ErrorIs(t, err, calendar.ErrDomain)

	err = yaml.Unmarshal([]byte("calendar: julian\n"), &rec)
	assert.Error(t, err)

	_, err = json.Marshal(dayRecord{Calendar: calendar.Hijri})
	assert.Error(t, err, "zero dates are not valid")
}

func TestCalendar_Names(t *testing.T) {
	assert.Equal(t, "gregorian", calendar.Gregorian.String())
	assert.Equal(t, "hijri", calendar.Hijri.String())
	assert.Equal(t, "calendar(0)", calendar.Calendar(0).String())

	for in, want := range map[string]calendar.Calendar{
		"Hijri":     calendar.Hijri,
		"islamic":   calendar.Hijri,
		"AH":        calendar.Hijri,
		"gregorian": calendar.Gregorian,
		" CE ":      calendar.Gregorian,
	} {
		got, err := calendar.ParseCalendar(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := calendar.ParseCalendar("julian")
	assert.Error(t, err)
}

func TestDates_Compare(t *testing.T) {
	a := calendar.HijriDate{Year: 1445, Month: 12, Day: 30}
	b := calendar.HijriDate{Year: 1446, Month: 1, Day: 1}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 1, b.Compare(a))

	g1 := calendar.GregorianDate{Year: 2024, Month: 2, Day: 29}
	g2 := calendar.GregorianDate{Year: 2024, Month: 3, Day: 1}
	assert.True(t, g1.Before(g2))
	assert.Equal(t, -1, g1.Compare(g2))
}

func TestGregorianDate_Time(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	d := calendar.GregorianDate{Year: 2024, Month: 7, Day: 8}
	tm := d.Time(loc)
	assert.Equal(t, time.Date(2024, 7, 8, 0, 0, 0, 0, loc), tm)
	assert.Equal(t, d, calendar.GregorianFromTime(tm))
}
