package calendar

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It is the only source of "today" in this package.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// TodayGregorian returns the local calendar date of clock.Now(). The
// location of the returned instant decides the date.
func TodayGregorian(clock Clock) GregorianDate {
	return GregorianFromTime(clock.Now())
}

// TodayHijri returns today's Hijri date under the reckoning of c.
func (c Converter) TodayHijri(clock Clock) (HijriDate, error) {
	return c.GregorianToHijri(TodayGregorian(clock))
}

// Today returns today's date in cal.
func (c Converter) Today(clock Clock, cal Calendar) (Date, error) {
	return c.Convert(TodayGregorian(clock), cal)
}

// TodayHijri returns today's Hijri date under the civil reckoning.
func TodayHijri(clock Clock) (HijriDate, error) { return civil.TodayHijri(clock) }

// Today returns today's date in cal under the civil reckoning.
func Today(clock Clock, cal Calendar) (Date, error) { return civil.Today(clock, cal) }
