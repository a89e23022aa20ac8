package calendar

import (
	"fmt"
	"strings"
)

// Reckoning selects the epoch of the tabular Islamic calendar. Both variants
// share the 30-year intercalation cycle; they differ by one day.
type Reckoning int

const (
	// Civil places 1 Muharram 1 AH on Friday 16 July 622 (Julian), JDN 1948440.
	Civil Reckoning = iota

	// Astronomical places 1 Muharram 1 AH on Thursday 15 July 622 (Julian),
	// JDN 1948439.
	Astronomical
)

const (
	civilEpoch        JDN = 1948440
	astronomicalEpoch JDN = 1948439

	// Length of the 30-year cycle in days: 30*354 + 11 leap days.
	cycleDays = 10631
)

// String returns the lower-case reckoning name.
func (r Reckoning) String() string {
	switch r {
	case Civil:
		return "civil"
	case Astronomical:
		return "astronomical"
	default:
		return fmt.Sprintf("reckoning(%d)", int(r))
	}
}

// ParseReckoning resolves a reckoning name, case-insensitively.
func ParseReckoning(s string) (Reckoning, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "civil", "friday":
		return Civil, nil
	case "astronomical", "thursday":
		return Astronomical, nil
	default:
		return 0, fmt.Errorf("calendar: unknown reckoning %q", s)
	}
}

// Epoch returns the JDN of 1 Muharram 1 AH under r.
func (r Reckoning) Epoch() JDN {
	if r == Astronomical {
		return astronomicalEpoch
	}
	return civilEpoch
}

// IsHijriLeapYear reports whether year is one of the 11 leap years of the
// 30-year cycle (positions 2, 5, 7, 10, 13, 16, 18, 21, 24, 26 and 29), in
// which Dhu al-Hijjah has 30 days.
func IsHijriLeapYear(year int) bool {
	return floorMod(14+11*int64(year), 30) < 11
}

// HijriMonthLength returns the number of days in month of year under the
// tabular rule, or 0 if month is outside 1..12. Odd months have 30 days,
// even months 29, and month 12 has 30 in a leap year.
func HijriMonthLength(year, month int) int {
	switch {
	case month < 1 || month > 12:
		return 0
	case month%2 == 1:
		return 30
	case month == 12 && IsHijriLeapYear(year):
		return 30
	default:
		return 29
	}
}

// HijriYearLength returns 355 for leap years and 354 otherwise.
func HijriYearLength(year int) int {
	if IsHijriLeapYear(year) {
		return 355
	}
	return 354
}

// Converter maps Hijri dates to and from Julian Day Numbers under a given
// Reckoning. The zero value uses the civil epoch. A Converter is an
// immutable value and safe for concurrent use.
type Converter struct {
	Reckoning Reckoning
}

// HijriToJDN returns the Julian Day Number of d. It fails with
// *DomainError or *RangeError when d is not a valid date.
func (c Converter) HijriToJDN(d HijriDate) (JDN, error) {
	if err := Validate(d); err != nil {
		return 0, err
	}
	return c.hijriJDN(d.Year, d.Month, d.Day), nil
}

// JDNToHijri returns the tabular Hijri date of j. It is total; JDNs before
// the epoch yield years below 1.
func (c Converter) JDNToHijri(j JDN) HijriDate {
	epoch := int64(c.Reckoning.Epoch())
	year := floorDiv(30*(int64(j)-epoch)+10646, cycleDays)
	offset := int64(j - c.hijriJDN(int(year), 1, 1))
	month := min(floorDiv(2*offset, 59)+1, 12)
	day := int64(j-c.hijriJDN(int(year), int(month), 1)) + 1
	return HijriDate{Year: int(year), Month: int(month), Day: int(day)}
}

// HijriToGregorian converts d through its Julian Day Number.
func (c Converter) HijriToGregorian(d HijriDate) (GregorianDate, error) {
	j, err := c.HijriToJDN(d)
	if err != nil {
		return GregorianDate{}, err
	}
	if err := c.checkJDN("hijri to gregorian", Gregorian, j); err != nil {
		return GregorianDate{}, err
	}
	return JDNToGregorian(j), nil
}

// GregorianToHijri converts d through its Julian Day Number. Dates before
// the Hijri epoch return *RangeError.
func (c Converter) GregorianToHijri(d GregorianDate) (HijriDate, error) {
	j, err := GregorianToJDN(d)
	if err != nil {
		return HijriDate{}, err
	}
	return c.hijriFromJDN("gregorian to hijri", j)
}

// hijriFromJDN range-checks j, then converts it.
func (c Converter) hijriFromJDN(op string, j JDN) (HijriDate, error) {
	if err := c.checkJDN(op, Hijri, j); err != nil {
		return HijriDate{}, err
	}
	return c.JDNToHijri(j), nil
}

// hijriJDN is the unchecked day-count formula: whole years of 354 days, the
// leap days accumulated by the cycle, and month starts at ceil(29.5*(m-1)).
func (c Converter) hijriJDN(year, month, day int) JDN {
	y := int64(year)
	m := int64(month)
	return JDN(int64(day)+
		floorDiv(59*(m-1)+1, 2)+
		(y-1)*354+
		floorDiv(3+11*y, 30)) + c.Reckoning.Epoch() - 1
}

var civil = Converter{Reckoning: Civil}

// HijriToJDN returns the Julian Day Number of d under the civil reckoning.
func HijriToJDN(d HijriDate) (JDN, error) { return civil.HijriToJDN(d) }

// JDNToHijri returns the civil tabular Hijri date of j.
func JDNToHijri(j JDN) HijriDate { return civil.JDNToHijri(j) }

// HijriToGregorian converts d under the civil reckoning.
func HijriToGregorian(d HijriDate) (GregorianDate, error) { return civil.HijriToGregorian(d) }

// GregorianToHijri converts d under the civil reckoning.
func GregorianToHijri(d GregorianDate) (HijriDate, error) { return civil.GregorianToHijri(d) }
