package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tartampluch/go-hijri/internal/calendar"
	"github.com/tartampluch/go-hijri/internal/config"
	"gopkg.in/yaml.v3"
)

// noHighlight disables row highlighting in tables.
const noHighlight = -2

// dateView is one date rendered in its own calendar.
type dateView struct {
	Calendar calendar.Calendar `json:"calendar" yaml:"calendar"`
	Date     string            `json:"date" yaml:"date"`
	Text     string            `json:"text" yaml:"text"`
	Weekday  string            `json:"weekday" yaml:"weekday"`
	JDN      int64             `json:"jdn" yaml:"jdn"`
}

// dayView is one day in both calendars.
type dayView struct {
	JDN           int64                  `json:"jdn" yaml:"jdn"`
	Hijri         calendar.HijriDate     `json:"hijri" yaml:"hijri"`
	Gregorian     calendar.GregorianDate `json:"gregorian" yaml:"gregorian"`
	Weekday       string                 `json:"weekday" yaml:"weekday"`
	HijriText     string                 `json:"hijri_text" yaml:"hijri_text"`
	GregorianText string                 `json:"gregorian_text" yaml:"gregorian_text"`
}

type convertView struct {
	From dateView `json:"from" yaml:"from"`
	To   dateView `json:"to" yaml:"to"`
}

type monthView struct {
	Year          int                    `json:"year" yaml:"year"`
	Month         int                    `json:"month" yaml:"month"`
	Name          string                 `json:"name" yaml:"name"`
	SecondaryName string                 `json:"secondary_name,omitempty" yaml:"secondary_name,omitempty"`
	Length        int                    `json:"length" yaml:"length"`
	Leap          bool                   `json:"leap_year" yaml:"leap_year"`
	First         calendar.GregorianDate `json:"first" yaml:"first"`
	Last          calendar.GregorianDate `json:"last" yaml:"last"`
	Days          []dayView              `json:"days" yaml:"days"`
}

type validationView struct {
	Calendar calendar.Calendar `json:"calendar" yaml:"calendar"`
	Input    string            `json:"input" yaml:"input"`
	Valid    bool              `json:"valid" yaml:"valid"`
	Reason   string            `json:"reason,omitempty" yaml:"reason,omitempty"`
}

type versionView struct {
	App     string `json:"app" yaml:"app"`
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	OS      string `json:"os" yaml:"os"`
	Arch    string `json:"arch" yaml:"arch"`
}

// render writes v in the configured output format. text renders the
// human-readable form.
func render(w io.Writer, format string, v any, text func(w io.Writer) error) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText, "":
		return text(w)
	default:
		return fmt.Errorf("%s: %s", config.ErrOutputFormat, format)
	}
}

// weekdayName returns the day name, with the Arabic name when secondary is set.
func weekdayName(w calendar.WeekdayInfo, secondary bool) string {
	if secondary {
		return w.Name + " (" + w.SecondaryName + ")"
	}
	return w.Name
}

// writeField writes one aligned "label  value" line.
func (s styles) writeField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", s.label.Render(label), s.value.Render(value))
}

// table renders rows under headers. The row at index highlight is emphasized.
func (s styles) table(headers []string, rows [][]string, highlight int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return s.header
			case highlight:
				return s.today.Padding(0, 1)
			default:
				return s.cell
			}
		})
	return t.String()
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
