package calendar

import "errors"

// IsValidDate reports whether (year, month, day) is a legal date in cal
// within the supported year window. Hijri day bounds follow the 30-year
// tabular cycle.
func IsValidDate(cal Calendar, year, month, day int) bool {
	return validateTriple(cal, year, month, day) == nil
}

// Validate checks d against its own calendar. It returns *RangeError when
// the year is outside the supported window and *DomainError when the month
// or day is impossible.
func Validate(d Date) error {
	if d == nil {
		return errors.New("calendar: nil date")
	}
	y, m, day := d.YMD()
	return validateTriple(d.Calendar(), y, m, day)
}

func validateTriple(cal Calendar, year, month, day int) error {
	if !cal.Valid() {
		return errors.New("calendar: unknown calendar " + cal.String())
	}
	if err := checkYear("validate", cal, int64(year)); err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return &DomainError{Calendar: cal, Field: fieldMonth, Year: year, Value: month, Min: 1, Max: 12}
	}
	maxDay := monthLength(cal, year, month)
	if day < 1 || day > maxDay {
		return &DomainError{Calendar: cal, Field: fieldDay, Year: year, Month: month, Value: day, Min: 1, Max: maxDay}
	}
	return nil
}

// MonthLength returns the number of days in month of year in cal, or 0 for
// an unknown calendar or month.
func MonthLength(cal Calendar, year, month int) int {
	return monthLength(cal, year, month)
}

func monthLength(cal Calendar, year, month int) int {
	switch cal {
	case Gregorian:
		return GregorianMonthLength(year, month)
	case Hijri:
		return HijriMonthLength(year, month)
	default:
		return 0
	}
}

func checkYear(op string, cal Calendar, year int64) error {
	if year < MinYear || year > int64(cal.MaxYear()) {
		return &RangeError{Op: op, Calendar: cal, Year: year, Min: MinYear, Max: cal.MaxYear()}
	}
	return nil
}

// IsValidHijriDayApprox is the lenient day check: odd months allow 30 days,
// even months 29, and day 30 of month 12 is always allowed regardless of the
// year. It accepts 30 Dhu al-Hijjah in common years, which the tabular cycle
// rejects.
//
// Deprecated: use IsValidDate(Hijri, ...), which applies the 30-year cycle.
func IsValidHijriDayApprox(month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	maxDays := 29
	if month%2 == 1 {
		maxDays = 30
	}
	return day <= maxDays || (month == 12 && day == 30)
}

// jdnWindow returns the first and last JDN of cal's supported years.
func (c Converter) jdnWindow(cal Calendar) (lo, hi JDN) {
	if cal == Hijri {
		return c.hijriJDN(MinYear, 1, 1), c.hijriJDN(MaxHijriYear, 12, HijriMonthLength(MaxHijriYear, 12))
	}
	return gregorianJDN(MinYear, 1, 1), gregorianJDN(MaxGregorianYear, 12, 31)
}

// checkJDN rejects a JDN outside cal's window before any calendar
// arithmetic runs on it. The reported year is the nearest unsupported one.
func (c Converter) checkJDN(op string, cal Calendar, j JDN) error {
	lo, hi := c.jdnWindow(cal)
	switch {
	case j < lo:
		return &RangeError{Op: op, Calendar: cal, Year: MinYear - 1, Min: MinYear, Max: cal.MaxYear()}
	case j > hi:
		return &RangeError{Op: op, Calendar: cal, Year: int64(cal.MaxYear()) + 1, Min: MinYear, Max: cal.MaxYear()}
	}
	return nil
}

// shift adds n days to j, which must lie inside cal's window. The bound is
// tested before the addition so that no offset can wrap around.
func (c Converter) shift(op string, cal Calendar, j JDN, n int) (JDN, error) {
	lo, hi := c.jdnWindow(cal)
	if (n > 0 && int64(n) > int64(hi-j)) || (n < 0 && int64(n) < int64(lo-j)) {
		year := int64(MinYear - 1)
		if n > 0 {
			year = int64(cal.MaxYear()) + 1
		}
		return 0, &RangeError{Op: op, Calendar: cal, Year: year, Min: MinYear, Max: cal.MaxYear()}
	}
	return j + JDN(n), nil
}
