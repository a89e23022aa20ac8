package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// EraSuffix follows Hijri years in rendered dates.
const EraSuffix = "AH"

// FormatOptions selects the rendering of a date.
type FormatOptions struct {
	// IncludeSecondaryName adds the Arabic month and weekday names in
	// parentheses after the English ones.
	IncludeSecondaryName bool

	// IncludeWeekday prefixes the date with its day name.
	IncludeWeekday bool

	// Short renders the numeric YYYY-MM-DD form instead of month names.
	Short bool
}

// Format validates d and renders it according to opts.
func (c Converter) Format(d Date, opts FormatOptions) (string, error) {
	if err := Validate(d); err != nil {
		return "", err
	}
	switch v := d.(type) {
	case GregorianDate:
		return FormatGregorian(v, opts), nil
	case HijriDate:
		return c.FormatHijri(v, opts), nil
	default:
		return "", fmt.Errorf("calendar: unsupported date type %T", d)
	}
}

// FormatHijri renders d without validating it:
//
//	long:  "24 Ramadan 1420 AH", "24 Ramadan (رمضان) 1420 AH"
//	short: "1420-09-24 AH"
//
// With IncludeWeekday the day name and a comma are prepended.
func (c Converter) FormatHijri(d HijriDate, opts FormatOptions) string {
	var b strings.Builder
	if opts.IncludeWeekday {
		w := WeekdayOfJDN(c.hijriJDN(d.Year, d.Month, d.Day))
		writeWeekday(&b, w, opts.IncludeSecondaryName)
	}
	if opts.Short {
		b.WriteString(d.String())
		b.WriteByte(' ')
		b.WriteString(EraSuffix)
		return b.String()
	}
	b.WriteString(strconv.Itoa(d.Day))
	b.WriteByte(' ')
	if info, ok := HijriMonth(d.Month); ok {
		b.WriteString(info.Name)
		if opts.IncludeSecondaryName {
			b.WriteString(" (")
			b.WriteString(info.SecondaryName)
			b.WriteByte(')')
		}
	} else {
		b.WriteString(strconv.Itoa(d.Month))
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(d.Year))
	b.WriteByte(' ')
	b.WriteString(EraSuffix)
	return b.String()
}

// FormatGregorian renders d without validating it:
//
//	long:  "January 1, 2000"
//	short: "2000-01-01"
//
// With IncludeWeekday the day name and a comma are prepended. Gregorian
// months have no secondary name; IncludeSecondaryName only affects the
// weekday.
func FormatGregorian(d GregorianDate, opts FormatOptions) string {
	var b strings.Builder
	if opts.IncludeWeekday {
		writeWeekday(&b, WeekdayOf(d), opts.IncludeSecondaryName)
	}
	if opts.Short {
		b.WriteString(d.String())
		return b.String()
	}
	if info, ok := GregorianMonth(d.Month); ok {
		b.WriteString(info.Name)
	} else {
		b.WriteString(strconv.Itoa(d.Month))
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(d.Day))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(d.Year))
	return b.String()
}

func writeWeekday(b *strings.Builder, w WeekdayInfo, secondary bool) {
	b.WriteString(w.Name)
	if secondary {
		b.WriteString(" (")
		b.WriteString(w.SecondaryName)
		b.WriteByte(')')
	}
	b.WriteString(", ")
}

// Format renders d under the civil reckoning.
func Format(d Date, opts FormatOptions) (string, error) { return civil.Format(d, opts) }

// FormatHijri renders d under the civil reckoning.
func FormatHijri(d HijriDate, opts FormatOptions) string { return civil.FormatHijri(d, opts) }
