package calendar

// Day is one row of a day listing: the same day in both calendars.
type Day struct {
	JDN       JDN
	Hijri     HijriDate
	Gregorian GregorianDate
	Weekday   WeekdayInfo
}

// MonthView summarises one Hijri month.
type MonthView struct {
	Year   int
	Month  MonthInfo
	Length int
	Leap   bool

	// First and Last are the Gregorian dates of the first and last day.
	First, Last GregorianDate

	// Days lists every day of the month in order.
	Days []Day
}

// AddDays returns the date n days after d (before d when n is negative).
// The shift is done on the Julian Day Number, so month and year rollover,
// including the 30-day Dhu al-Hijjah of leap years, follow the converter.
func (c Converter) AddDays(d HijriDate, n int) (HijriDate, error) {
	j, err := c.HijriToJDN(d)
	if err != nil {
		return HijriDate{}, err
	}
	if j, err = c.shift("add days", Hijri, j, n); err != nil {
		return HijriDate{}, err
	}
	return c.JDNToHijri(j), nil
}

// DaysBetween returns the signed number of days from a to b. The two dates
// may belong to different calendars.
func (c Converter) DaysBetween(a, b Date) (int64, error) {
	ja, err := c.ToJDN(a)
	if err != nil {
		return 0, err
	}
	jb, err := c.ToJDN(b)
	if err != nil {
		return 0, err
	}
	return int64(jb - ja), nil
}

// DayOf returns the Day at j, range-checked in both calendars.
func (c Converter) DayOf(j JDN) (Day, error) {
	h, err := c.hijriFromJDN("day", j)
	if err != nil {
		return Day{}, err
	}
	if err := c.checkJDN("day", Gregorian, j); err != nil {
		return Day{}, err
	}
	return Day{JDN: j, Hijri: h, Gregorian: JDNToGregorian(j), Weekday: WeekdayOfJDN(j)}, nil
}

// Upcoming lists count consecutive days starting at start.
func (c Converter) Upcoming(start HijriDate, count int) ([]Day, error) {
	if count < 0 || count > MaxUpcomingDays {
		return nil, &DomainError{Calendar: Hijri, Field: "count", Year: start.Year, Value: count, Min: 0, Max: MaxUpcomingDays}
	}
	j, err := c.HijriToJDN(start)
	if err != nil {
		return nil, err
	}
	days := make([]Day, 0, count)
	for i := range count {
		day, err := c.DayOf(j + JDN(i))
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

// MonthGrid returns the view of Hijri month (year, month).
func (c Converter) MonthGrid(year, month int) (MonthView, error) {
	first := HijriDate{Year: year, Month: month, Day: 1}
	length := HijriMonthLength(year, month)
	days, err := c.Upcoming(first, length)
	if err != nil {
		return MonthView{}, err
	}
	info, _ := HijriMonth(month)
	return MonthView{
		Year:   year,
		Month:  info,
		Length: length,
		Leap:   IsHijriLeapYear(year),
		First:  days[0].Gregorian,
		Last:   days[len(days)-1].Gregorian,
		Days:   days,
	}, nil
}

// Anniversary returns the date on which birth recurs in the Hijri year
// year. A 30 Dhu al-Hijjah birth falls on 1 Muharram of the following year
// when year is not a leap year.
func (c Converter) Anniversary(birth HijriDate, year int) (HijriDate, error) {
	if err := Validate(birth); err != nil {
		return HijriDate{}, err
	}
	if err := checkYear("anniversary", Hijri, int64(year)); err != nil {
		return HijriDate{}, err
	}
	if n := HijriMonthLength(year, birth.Month); birth.Day > n {
		return c.hijriFromJDN("anniversary", c.hijriJDN(year, birth.Month, n)+1)
	}
	return HijriDate{Year: year, Month: birth.Month, Day: birth.Day}, nil
}

// NextAnniversary returns the first anniversary of birth on or after from,
// with the Hijri year it belongs to. The two differ only when the
// anniversary rolled into the next year.
func (c Converter) NextAnniversary(birth, from HijriDate) (HijriDate, int, error) {
	year := from.Year
	a, err := c.Anniversary(birth, year)
	if err != nil {
		return HijriDate{}, 0, err
	}
	if a.Before(from) {
		year++
		if a, err = c.Anniversary(birth, year); err != nil {
			return HijriDate{}, 0, err
		}
	}
	return a, year, nil
}

// MaxUpcomingDays bounds Upcoming listings.
const MaxUpcomingDays = 3660

// AddDays returns d shifted by n days under the civil reckoning.
func AddDays(d HijriDate, n int) (HijriDate, error) { return civil.AddDays(d, n) }

// AddGregorianDays returns d shifted by n days.
func AddGregorianDays(d GregorianDate, n int) (GregorianDate, error) {
	j, err := GregorianToJDN(d)
	if err != nil {
		return GregorianDate{}, err
	}
	if j, err = civil.shift("add days", Gregorian, j, n); err != nil {
		return GregorianDate{}, err
	}
	return JDNToGregorian(j), nil
}

// DaysBetween returns the signed number of days from a to b under the civil
// reckoning.
func DaysBetween(a, b Date) (int64, error) { return civil.DaysBetween(a, b) }

// Upcoming lists count days from start under the civil reckoning.
func Upcoming(start HijriDate, count int) ([]Day, error) { return civil.Upcoming(start, count) }

// MonthGrid returns the view of a Hijri month under the civil reckoning.
func MonthGrid(year, month int) (MonthView, error) { return civil.MonthGrid(year, month) }

// WeekdayOfJDN returns the weekday of j. JDN 0 was a Monday, so Sunday-first
// numbering is (j + 1) mod 7.
func WeekdayOfJDN(j JDN) WeekdayInfo {
	return weekdayTable[floorMod(int64(j)+1, 7)]
}

// WeekdayOf returns the weekday of the Gregorian date d. d is not range
// checked: any triple whose month is 1..12 yields the proleptic weekday.
func WeekdayOf(d GregorianDate) WeekdayInfo {
	return WeekdayOfJDN(gregorianJDN(d.Year, d.Month, d.Day))
}
