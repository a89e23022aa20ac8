package calendar

import (
	"errors"
	"fmt"
)

// ToJDN validates d and returns its Julian Day Number.
func (c Converter) ToJDN(d Date) (JDN, error) {
	switch v := d.(type) {
	case GregorianDate:
		return GregorianToJDN(v)
	case HijriDate:
		return c.HijriToJDN(v)
	case nil:
		return 0, errors.New("calendar: nil date")
	default:
		return 0, fmt.Errorf("calendar: unsupported date type %T", d)
	}
}

// FromJDN returns the date of j in cal, range-checked against cal's
// supported years.
func (c Converter) FromJDN(j JDN, cal Calendar) (Date, error) {
	switch cal {
	case Gregorian:
		if err := c.checkJDN("from jdn", Gregorian, j); err != nil {
			return nil, err
		}
		return JDNToGregorian(j), nil
	case Hijri:
		h, err := c.hijriFromJDN("from jdn", j)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, errors.New("calendar: unknown calendar " + cal.String())
	}
}

// Convert maps d into the calendar to. Converting into d's own calendar
// returns d after validation.
func (c Converter) Convert(d Date, to Calendar) (Date, error) {
	j, err := c.ToJDN(d)
	if err != nil {
		return nil, err
	}
	return c.FromJDN(j, to)
}

// ToJDN validates d and returns its Julian Day Number under the civil
// reckoning.
func ToJDN(d Date) (JDN, error) { return civil.ToJDN(d) }

// Convert maps d into the calendar to under the civil reckoning.
func Convert(d Date, to Calendar) (Date, error) { return civil.Convert(d, to) }
