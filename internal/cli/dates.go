package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-hijri/internal/calendar"
	"github.com/tartampluch/go-hijri/internal/config"
)

// defaultFrom is the calendar of convert and validate input when unset.
const defaultFrom = "gregorian"

// Fallback labels, used when the catalogue lacks a key.
const (
	fallbackToday     = "Today"
	fallbackHijri     = "Hijri"
	fallbackGregorian = "Gregorian"
	fallbackWeekday   = "Weekday"
	fallbackLeap      = "leap year"
	fallbackDate      = "Date"
	fallbackHijriCol  = "Hijri date"
)

func (a *App) newTodayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's date in both calendars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed(config.FlagCalendar) {
				name, _ := cmd.Flags().GetString(config.FlagCalendar)
				cal, err := calendar.ParseCalendar(name)
				if err != nil {
					return err
				}
				d, err := a.conv.Today(a.Clock, cal)
				if err != nil {
					return fmt.Errorf("%s: %w", config.ErrDateConvert, err)
				}
				v, err := a.dateView(d)
				if err != nil {
					return err
				}
				return a.render(v, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "%s, %s\n", v.Weekday, a.styles.title.Render(v.Text))
					return err
				})
			}

			h, err := a.conv.TodayHijri(a.Clock)
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrDateConvert, err)
			}
			j, err := a.conv.HijriToJDN(h)
			if err != nil {
				return err
			}
			day, err := a.conv.DayOf(j)
			if err != nil {
				return err
			}
			v := a.dayView(day)
			return a.render(v, func(w io.Writer) error {
				fmt.Fprintln(w, a.styles.title.Render(a.label(config.TKeyLblToday, fallbackToday, nil)))
				a.styles.writeField(w, a.label(config.TKeyLblHijri, fallbackHijri, nil), v.HijriText)
				a.styles.writeField(w, a.label(config.TKeyLblGregorian, fallbackGregorian, nil), v.GregorianText)
				a.styles.writeField(w, a.label(config.TKeyLblWeekday, fallbackWeekday, nil), v.Weekday)
				return nil
			})
		},
	}
	cmd.Flags().String(config.FlagCalendar, "", config.FlagDescCalendar)
	return cmd
}

func (a *App) newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <date>",
		Short: "Convert a YYYY-MM-DD date to the other calendar",
		Example: `  go-hijri convert 2025-03-01
  go-hijri convert 1446-09-01 --from hijri`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString(config.FlagFrom)
			from, err := calendar.ParseCalendar(name)
			if err != nil {
				return err
			}
			src, err := calendar.Parse(from, args[0])
			if err != nil {
				return err
			}
			to := calendar.Hijri
			if from == calendar.Hijri {
				to = calendar.Gregorian
			}
			dst, err := a.conv.Convert(src, to)
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrDateConvert, err)
			}

			var v convertView
			if v.From, err = a.dateView(src); err != nil {
				return err
			}
			if v.To, err = a.dateView(dst); err != nil {
				return err
			}
			return a.render(v, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s = %s, %s\n",
					v.From.Text, v.To.Weekday, a.styles.title.Render(v.To.Text))
				return err
			})
		},
	}
	cmd.Flags().String(config.FlagFrom, defaultFrom, config.FlagDescFrom)
	return cmd
}

func (a *App) newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <hijri-date> <days>",
		Short: "Shift a Hijri date by a number of days",
		Example: `  go-hijri add 1446-12-29 1
  go-hijri add -- 1446-01-01 -30`,
		Args: exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			start, err := calendar.ParseHijri(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%s: %q", config.ErrArgDays, args[1])
			}
			h, err := a.conv.AddDays(start, n)
			if err != nil {
				return err
			}
			j, err := a.conv.HijriToJDN(h)
			if err != nil {
				return err
			}
			day, err := a.conv.DayOf(j)
			if err != nil {
				return err
			}
			v := a.dayView(day)
			return a.render(v, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s, %s (%s)\n",
					v.Weekday, a.styles.title.Render(v.HijriText), v.GregorianText)
				return err
			})
		},
	}
}

func (a *App) newUpcomingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List the coming days in both calendars",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			start, err := a.conv.TodayHijri(a.Clock)
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrDateConvert, err)
			}
			days, err := a.conv.Upcoming(start, a.settings.UpcomingDays)
			if err != nil {
				return err
			}
			views := make([]dayView, 0, len(days))
			for _, d := range days {
				views = append(views, a.dayView(d))
			}
			return a.render(views, func(w io.Writer) error {
				return a.writeDayTable(w, views, 0)
			})
		},
	}
	cmd.Flags().Int(config.FlagDays, config.DefaultUpcomingDays, config.FlagDescDays)
	return cmd
}

func (a *App) writeDayTable(w io.Writer, views []dayView, highlight int) error {
	headers := []string{
		a.label(config.TKeyLblWeekday, fallbackWeekday, nil),
		a.label(config.TKeyColHijri, fallbackHijriCol, nil),
		a.label(config.TKeyColDate, fallbackDate, nil),
	}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{v.Weekday, v.HijriText, v.GregorianText})
	}
	_, err := fmt.Fprintln(w, a.styles.table(headers, rows, highlight))
	return err
}

func (a *App) newMonthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "month [<year> <month>]",
		Short: "Show a Hijri month, the current one by default",
		Example: `  go-hijri month
  go-hijri month 1446 9
  go-hijri month 1446 ramadan`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("%s: want 0 or 2, got %d", config.ErrArgCount, len(args))
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			today, err := a.conv.TodayHijri(a.Clock)
			if err != nil {
				return fmt.Errorf("%s: %w", config.ErrDateConvert, err)
			}
			year, month := today.Year, today.Month
			if len(args) == 2 {
				if year, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("%s: year %q", config.ErrDateParse, args[0])
				}
				if month, err = calendar.ParseHijriMonth(args[1]); err != nil {
					return err
				}
			}

			grid, err := a.conv.MonthGrid(year, month)
			if err != nil {
				return err
			}
			v := monthView{
				Year:   grid.Year,
				Month:  grid.Month.Number,
				Name:   grid.Month.Name,
				Length: grid.Length,
				Leap:   grid.Leap,
				First:  grid.First,
				Last:   grid.Last,
				Days:   make([]dayView, 0, len(grid.Days)),
			}
			if a.settings.Arabic {
				v.SecondaryName = grid.Month.SecondaryName
			}
			highlight := noHighlight
			for i, d := range grid.Days {
				if d.Hijri == today {
					highlight = i
				}
				v.Days = append(v.Days, a.dayView(d))
			}
			return a.render(v, func(w io.Writer) error {
				return a.writeMonth(w, v, highlight)
			})
		},
	}
}

func (a *App) writeMonth(w io.Writer, v monthView, highlight int) error {
	name := v.Name
	if v.SecondaryName != "" {
		name += " (" + v.SecondaryName + ")"
	}
	leap := ""
	if v.Leap {
		leap = a.label(config.TKeyLblLeap, fallbackLeap, nil)
	}
	days := a.label(config.TKeyLblDays, fmt.Sprintf("%d days", v.Length), map[string]any{"Count": v.Length})

	fmt.Fprintln(w, a.styles.title.Render(fmt.Sprintf("%s %d %s", name, v.Year, calendar.EraSuffix)))
	fmt.Fprintln(w, a.styles.muted.Render(joinNonEmpty(" · ",
		calendar.FormatGregorian(v.First, a.formatOptions())+" – "+calendar.FormatGregorian(v.Last, a.formatOptions()),
		days,
		leap,
	)))
	return a.writeDayTable(w, v.Days, highlight)
}

func (a *App) newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <date>",
		Short: "Check that a YYYY-MM-DD date exists; exits 1 when it does not",
		Example: `  go-hijri validate 1446-12-30 --calendar hijri
  go-hijri validate 2023-02-29`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString(config.FlagCalendar)
			cal, err := calendar.ParseCalendar(name)
			if err != nil {
				return err
			}

			v := validationView{Calendar: cal, Input: args[0], Valid: true}
			if _, err := calendar.Parse(cal, args[0]); err != nil {
				v.Valid = false
				v.Reason = reason(err)
			}

			data := map[string]any{"Date": v.Input, "Calendar": cal.String(), "Reason": v.Reason}
			if err := a.render(v, func(w io.Writer) error {
				if v.Valid {
					msg := a.label(config.TKeyLblValid, fmt.Sprintf("%s is a valid %s date", v.Input, cal), data)
					_, err := fmt.Fprintln(w, a.styles.ok.Render(msg))
					return err
				}
				msg := a.label(config.TKeyLblInvalid, fmt.Sprintf("%s is not a valid %s date: %s", v.Input, cal, v.Reason), data)
				_, err := fmt.Fprintln(w, a.styles.bad.Render(msg))
				return err
			}); err != nil {
				return err
			}

			if !v.Valid {
				return fmt.Errorf("%s: %s", config.ErrInvalidDate, v.Input)
			}
			return nil
		},
	}
	cmd.Flags().String(config.FlagCalendar, defaultFrom, config.FlagDescCalendar)
	return cmd
}

// reason strips the parse wrapper so only the rule that failed is shown.
func reason(err error) string {
	var pe *calendar.ParseError
	if errors.As(err, &pe) && pe.Err != nil {
		return pe.Err.Error()
	}
	return err.Error()
}

// exactArgs is cobra.ExactArgs with the message constants of this module.
func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%s: want %d, got %d", config.ErrArgCount, n, len(args))
		}
		return nil
	}
}
