package calendar

import (
	"errors"
	"strconv"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	// ErrDomain reports a date field outside the legal range of its calendar.
	ErrDomain = errors.New("calendar: date outside calendar domain")

	// ErrRange reports an input or result outside the supported year window.
	ErrRange = errors.New("calendar: date outside supported range")
)

// DomainError is returned when a date field (month or day) is outside the
// legal range for the stated calendar, for example 30 February or
// 31 Muharram.
//
// The message format is stable:
//
//	"calendar: invalid hijri day 31 for 1445-01 (want 1..30)"
type DomainError struct {
	// Calendar is the calendar the date was validated against.
	Calendar Calendar

	// Field names the offending field: "month" or "day".
	Field string

	// Year and Month locate the date; Month is zero when Field is "month".
	Year, Month int

	// Value is the rejected field value.
	Value int

	// Min and Max are the inclusive bounds the value violated.
	Min, Max int
}

func (e *DomainError) Error() string {
	where := strconv.Itoa(e.Year)
	if e.Field == fieldDay {
		where += "-" + pad2(e.Month)
	}
	return "calendar: invalid " + e.Calendar.String() + " " + e.Field + " " +
		strconv.Itoa(e.Value) + " for " + where +
		" (want " + strconv.Itoa(e.Min) + ".." + strconv.Itoa(e.Max) + ")"
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// RangeError is returned when a year, either supplied by the caller or
// produced by a conversion or an offset, falls outside the supported window
// [MinYear, MaxGregorianYear] or [MinYear, MaxHijriYear].
//
// The bounds are guards against absurd input, not calendar laws.
type RangeError struct {
	// Op is the operation that produced the out-of-range year.
	Op string

	// Calendar is the calendar whose bounds were exceeded.
	Calendar Calendar

	// Year is the offending year.
	Year int64

	// Min and Max are the inclusive supported bounds.
	Min, Max int
}

func (e *RangeError) Error() string {
	return "calendar: " + e.Op + ": " + e.Calendar.String() + " year " +
		strconv.FormatInt(e.Year, 10) + " outside supported range " +
		strconv.Itoa(e.Min) + ".." + strconv.Itoa(e.Max)
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

const (
	fieldMonth = "month"
	fieldDay   = "day"
)

func pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
