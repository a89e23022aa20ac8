package calendar

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// JDN is a Julian Day Number: the integer count of days since the start of
// the Julian Period. It is the exchange format between the two calendars.
type JDN int64

// Date is implemented by GregorianDate and HijriDate. It lets the
// calendar-generic functions (Convert, Validate, Format) accept either type
// while still checking the calendar tag at the boundary.
type Date interface {
	Calendar() Calendar
	YMD() (year, month, day int)
	String() string
}

// GregorianDate is a date in the proleptic Gregorian calendar.
type GregorianDate struct {
	Year  int
	Month int
	Day   int
}

// HijriDate is a date in the tabular Islamic calendar. It is structurally
// identical to GregorianDate but the two are never interchangeable: crossing
// calendars requires the Converter.
type HijriDate struct {
	Year  int
	Month int
	Day   int
}

var (
	_ Date = GregorianDate{}
	_ Date = HijriDate{}
)

// Calendar returns Gregorian.
func (GregorianDate) Calendar() Calendar { return Gregorian }

// YMD returns the date fields.
func (d GregorianDate) YMD() (int, int, int) { return d.Year, d.Month, d.Day }

// String returns the ISO form YYYY-MM-DD.
func (d GregorianDate) String() string { return isoTriple(d.Year, d.Month, d.Day) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d GregorianDate) Compare(other GregorianDate) int {
	return compareTriples(d.Year, d.Month, d.Day, other.Year, other.Month, other.Day)
}

// Before reports whether d is strictly before other.
func (d GregorianDate) Before(other GregorianDate) bool { return d.Compare(other) < 0 }

// Time returns midnight of d in loc.
func (d GregorianDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// GregorianFromTime returns the calendar date of t in t's own location.
// The clock part is discarded.
func GregorianFromTime(t time.Time) GregorianDate {
	y, m, d := t.Date()
	return GregorianDate{Year: y, Month: int(m), Day: d}
}

// Calendar returns Hijri.
func (HijriDate) Calendar() Calendar { return Hijri }

// YMD returns the date fields.
func (d HijriDate) YMD() (int, int, int) { return d.Year, d.Month, d.Day }

// String returns the numeric form YYYY-MM-DD, without an era suffix.
func (d HijriDate) String() string { return isoTriple(d.Year, d.Month, d.Day) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d HijriDate) Compare(other HijriDate) int {
	return compareTriples(d.Year, d.Month, d.Day, other.Year, other.Month, other.Day)
}

// Before reports whether d is strictly before other.
func (d HijriDate) Before(other HijriDate) bool { return d.Compare(other) < 0 }

// MarshalText implements encoding.TextMarshaler using the ISO form.
func (d GregorianDate) MarshalText() ([]byte, error) {
	if err := Validate(d); err != nil {
		return nil, fmt.Errorf("calendar: cannot marshal: %w", err)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must be a
// valid YYYY-MM-DD Gregorian date.
func (d *GregorianDate) UnmarshalText(text []byte) error {
	parsed, err := ParseGregorian(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d GregorianDate) MarshalYAML() (any, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *GregorianDate) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("calendar: cannot unmarshal YAML: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalText implements encoding.TextMarshaler using the numeric form.
func (d HijriDate) MarshalText() ([]byte, error) {
	if err := Validate(d); err != nil {
		return nil, fmt.Errorf("calendar: cannot marshal: %w", err)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An optional " AH"
// suffix is accepted.
func (d *HijriDate) UnmarshalText(text []byte) error {
	parsed, err := ParseHijri(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d HijriDate) MarshalYAML() (any, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *HijriDate) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("calendar: cannot unmarshal YAML: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

func isoTriple(y, m, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func compareTriples(y1, m1, d1, y2, m2, d2 int) int {
	switch {
	case y1 != y2:
		return sign(y1 - y2)
	case m1 != m2:
		return sign(m1 - m2)
	default:
		return sign(d1 - d2)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
