// Package calendar converts civil dates between the proleptic Gregorian
// calendar and the tabular Islamic (Hijri) calendar.
//
// Every conversion goes through a Julian Day Number (JDN), a continuous
// integer day count. The Gregorian and Hijri rules each map a date triple to
// and from a JDN; cross-calendar conversion, day arithmetic and weekday
// lookup are all defined on top of that single pivot so that the leap rules
// live in exactly one place.
//
// The package is pure: it holds no mutable state, performs no I/O and every
// function is safe for concurrent use. Dates are plain value types.
//
// Callers validate first and convert second. The checked entry points
// (GregorianToJDN, HijriToJDN, Convert, AddDays, ...) validate for you and
// return *DomainError or *RangeError; the JDN → date direction is total.
package calendar

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Calendar identifies one of the two supported calendar systems.
type Calendar int

const (
	// Gregorian is the proleptic Gregorian calendar.
	Gregorian Calendar = iota + 1

	// Hijri is the tabular Islamic calendar (30-year intercalation cycle).
	Hijri
)

// Supported year window. The bounds reject absurd input; they carry no
// astronomical meaning.
const (
	MinYear          = 1
	MaxGregorianYear = 9999
	MaxHijriYear     = 2000
)

const (
	nameGregorian = "gregorian"
	nameHijri     = "hijri"
)

// String returns the lower-case calendar name.
func (c Calendar) String() string {
	switch c {
	case Gregorian:
		return nameGregorian
	case Hijri:
		return nameHijri
	default:
		return fmt.Sprintf("calendar(%d)", int(c))
	}
}

// Valid reports whether c is one of the declared calendars.
func (c Calendar) Valid() bool {
	return c == Gregorian || c == Hijri
}

// MaxYear returns the largest supported year of c.
func (c Calendar) MaxYear() int {
	if c == Hijri {
		return MaxHijriYear
	}
	return MaxGregorianYear
}

// ParseCalendar resolves a calendar name. Matching is case-insensitive and
// accepts the aliases "islamic" and "ah" for Hijri and "ce" for Gregorian.
func ParseCalendar(s string) (Calendar, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case nameGregorian, "ce", "g":
		return Gregorian, nil
	case nameHijri, "islamic", "ah", "h":
		return Hijri, nil
	default:
		return 0, fmt.Errorf("calendar: unknown calendar %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Calendar) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("calendar: cannot marshal invalid calendar %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Calendar) UnmarshalText(text []byte) error {
	parsed, err := ParseCalendar(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Calendar) MarshalYAML() (any, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Calendar) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("calendar: cannot unmarshal YAML: %w", err)
	}
	return c.UnmarshalText([]byte(s))
}
