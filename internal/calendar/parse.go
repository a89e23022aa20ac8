package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ParseError reports input that is not a date in the expected layout, or a
// well-formed date that fails validation (Err then wraps *DomainError or
// *RangeError).
type ParseError struct {
	Calendar Calendar
	Input    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("calendar: cannot parse %s date %q: %v", e.Calendar, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseGregorian parses a YYYY-MM-DD (or YYYY/MM/DD) Gregorian date and
// validates it.
func ParseGregorian(s string) (GregorianDate, error) {
	y, m, d, err := parseTriple(s)
	if err != nil {
		return GregorianDate{}, &ParseError{Calendar: Gregorian, Input: s, Err: err}
	}
	date := GregorianDate{Year: y, Month: m, Day: d}
	if err := Validate(date); err != nil {
		return GregorianDate{}, &ParseError{Calendar: Gregorian, Input: s, Err: err}
	}
	return date, nil
}

// ParseHijri parses a YYYY-MM-DD Hijri date, optionally followed by " AH",
// and validates it against the tabular cycle.
func ParseHijri(s string) (HijriDate, error) {
	trimmed := strings.TrimSpace(s)
	if n := len(trimmed) - len(EraSuffix); n > 0 && strings.EqualFold(trimmed[n:], EraSuffix) {
		trimmed = strings.TrimSpace(trimmed[:n])
	}
	y, m, d, err := parseTriple(trimmed)
	if err != nil {
		return HijriDate{}, &ParseError{Calendar: Hijri, Input: s, Err: err}
	}
	date := HijriDate{Year: y, Month: m, Day: d}
	if err := Validate(date); err != nil {
		return HijriDate{}, &ParseError{Calendar: Hijri, Input: s, Err: err}
	}
	return date, nil
}

// Parse parses s as a date of cal.
func Parse(cal Calendar, s string) (Date, error) {
	switch cal {
	case Gregorian:
		g, err := ParseGregorian(s)
		if err != nil {
			return nil, err
		}
		return g, nil
	case Hijri:
		h, err := ParseHijri(s)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("calendar: unknown calendar %s", cal)
	}
}

func parseTriple(s string) (int, int, int, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '-' || r == '/'
	})
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("want YYYY-MM-DD, got %d fields", len(fields))
	}
	var out [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = n
	}
	return out[0], out[1], out[2], nil
}

// MonthNameError is returned by ParseHijriMonth for an unknown name.
// Suggestion holds the closest month name, or is empty when nothing is close.
type MonthNameError struct {
	Input      string
	Suggestion string
}

func (e *MonthNameError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("calendar: unknown hijri month %q", e.Input)
	}
	return fmt.Sprintf("calendar: unknown hijri month %q (did you mean %q?)", e.Input, e.Suggestion)
}

// maxSuggestDistance bounds the edit distance of a suggested month name.
const maxSuggestDistance = 3

// Transliteration variants accepted besides the table names.
var hijriMonthAliases = map[string]int{
	"rabiulawwal":     3,
	"rabialawal":      3,
	"rabiulakhir":     4,
	"rabialakhir":     4,
	"rabiathani":      4,
	"jumadaula":       5,
	"jumadalula":      5,
	"jumadaalula":     5,
	"jumadaalakhira":  6,
	"jumadalakhira":   6,
	"jumadaakhirah":   6,
	"jumadaalakhirah": 6,
	"dhulqidah":       11,
	"dhulqadah":       11,
	"dhulhijjah":      12,
	"dhulhijja":       12,
}

// ParseHijriMonth resolves a Hijri month given by number, English
// transliteration or Arabic name. Matching ignores case, diacritics,
// apostrophes, hyphens and spaces, so "rabi al-awwal", "Rabīʿ al-Awwal" and
// "ربيع الأول" all resolve to 3.
func ParseHijriMonth(s string) (int, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if n < 1 || n > 12 {
			return 0, &DomainError{Calendar: Hijri, Field: fieldMonth, Value: n, Min: 1, Max: 12}
		}
		return n, nil
	}
	key := monthKey(s)
	if key == "" {
		return 0, &MonthNameError{Input: s}
	}
	for _, info := range hijriMonthTable {
		if key == monthKey(info.Name) || key == monthKey(info.SecondaryName) {
			return info.Number, nil
		}
	}
	if n, ok := hijriMonthAliases[key]; ok {
		return n, nil
	}
	return 0, &MonthNameError{Input: s, Suggestion: suggestHijriMonth(key)}
}

func suggestHijriMonth(key string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, info := range hijriMonthTable {
		if d := levenshtein.ComputeDistance(key, monthKey(info.Name)); d < bestDist {
			best, bestDist = info.Name, d
		}
	}
	return best
}

// monthKey folds s to a comparison key: decomposed, stripped of combining
// marks, case-folded, and reduced to letters and digits.
func monthKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.Map(func(r rune) rune {
		if (unicode.IsLetter(r) && !unicode.Is(unicode.Lm, r)) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, folded)
}
