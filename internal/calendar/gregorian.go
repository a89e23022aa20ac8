package calendar

var gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsGregorianLeapYear applies the Gregorian rule: divisible by 4, except
// centuries not divisible by 400.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// GregorianMonthLength returns the number of days in month of year, or 0 if
// month is outside 1..12.
func GregorianMonthLength(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsGregorianLeapYear(year) {
		return 29
	}
	return gregorianMonthDays[month-1]
}

// GregorianToJDN returns the Julian Day Number of d. It fails with
// *DomainError or *RangeError when d is not a valid date.
func GregorianToJDN(d GregorianDate) (JDN, error) {
	if err := Validate(d); err != nil {
		return 0, err
	}
	return gregorianJDN(d.Year, d.Month, d.Day), nil
}

// JDNToGregorian returns the proleptic Gregorian date of j. It is total:
// every JDN, including ones before year 1, maps to a date.
func JDNToGregorian(j JDN) GregorianDate {
	a := int64(j) + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	return GregorianDate{
		Year:  int(100*b + d - 4800 + floorDiv(m, 10)),
		Month: int(m + 3 - 12*floorDiv(m, 10)),
		Day:   int(e - floorDiv(153*m+2, 5) + 1),
	}
}

// gregorianJDN is the unchecked day-count formula. The year is shifted to
// start in March so that the leap day falls at the end of the shifted year.
func gregorianJDN(year, month, day int) JDN {
	a := floorDiv(int64(14-month), 12)
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3
	return JDN(int64(day) + floorDiv(153*m+2, 5) + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045)
}

// floorDiv divides rounding towards negative infinity, so the day-count
// formulas stay exact for negative intermediates.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; the result has the sign of b.
func floorMod(a, b int64) int64 {
	return a - b*floorDiv(a, b)
}
