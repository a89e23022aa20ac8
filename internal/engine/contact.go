package engine

import "github.com/tartampluch/go-hijri/internal/calendar"

// BirthdayEntry is one contact's Hijri birthday, ready for listing.
type BirthdayEntry struct {
	// UID identifies the contact across refreshes.
	UID string `json:"uid" yaml:"uid"`

	// Name is the display name (Formatted Name or Structured Name).
	Name string `json:"name" yaml:"name"`

	// DateOfBirth is the Gregorian BDAY of the vCard.
	DateOfBirth calendar.GregorianDate `json:"date_of_birth" yaml:"date_of_birth"`

	// HijriBirth is DateOfBirth converted under the generator's reckoning.
	HijriBirth calendar.HijriDate `json:"hijri_birth" yaml:"hijri_birth"`

	// NextOccurrence is the next Hijri anniversary, today included.
	NextOccurrence calendar.HijriDate `json:"next" yaml:"next"`

	// NextGregorian is NextOccurrence in the Gregorian calendar.
	NextGregorian calendar.GregorianDate `json:"next_gregorian" yaml:"next_gregorian"`

	// AgeNext is the age in Hijri years reached at NextOccurrence.
	AgeNext int `json:"age_next" yaml:"age_next"`

	// DaysUntil counts the days from today to NextOccurrence.
	DaysUntil int `json:"days_until" yaml:"days_until"`
}
