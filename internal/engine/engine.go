package engine

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	"github.com/tartampluch/go-hijri/internal/calendar"
	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/messages"
)

// SyncConfig contains all parameters required to build a feed.
type SyncConfig struct {
	Mode            string // config.SourceModeLocal, config.SourceModeWeb, or empty for no birthdays
	LocalPath       string // Path to the .vcf file
	WebURL          string // CardDAV or WebDAV URL
	WebUser         string // HTTP Basic Auth Username
	WebPass         string // HTTP Basic Auth Password
	ReminderTrigger string // ISO8601 duration string (e.g., "-P1D")
	MonthEvents     bool   // Add an event on the first day of every Hijri month
	SecondaryNames  bool   // Add Arabic month names to titles and descriptions
}

// Summarizer renders event titles and descriptions.
// *messages.Catalog implements it.
type Summarizer interface {
	Summary(name string, age int, yearKnown bool) string
	MonthStart(month string, year int) string
	BirthDescription(hijri, gregorian string) string
}

// Generator builds the Hijri iCalendar feed.
type Generator struct {
	Clock     calendar.Clock // Source of "today"; RealClock when nil.
	Fetcher   VCardFetcher   // Used in web mode.
	Reckoning calendar.Reckoning
	Summaries Summarizer // Built-in English fallbacks when nil.
}

// Result is the outcome of one generation.
type Result struct {
	ICS       []byte
	Birthdays []BirthdayEntry // Sorted by days until the next anniversary, then name.
	Today     int             // Birthdays falling on today's Hijri date.
	Months    int             // Month-start events written.
}

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(config.UIDNamespace))

// ReminderTrigger returns the VALARM trigger firing days before an event.
// Zero disables the alarm.
func ReminderTrigger(days int) (string, error) {
	if days < 0 {
		return "", fmt.Errorf("%s: %d", config.ErrReminderTrigger, days)
	}
	if days == 0 {
		return "", nil
	}
	return fmt.Sprintf("%s%d%s", config.ISONegativePrefix, days, config.ISODay), nil
}

// RunSync executes the fetching, conversion and encoding pipeline.
func (g *Generator) RunSync(ctx context.Context, cfg SyncConfig) (Result, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
		config.LogKeyReckoning, g.Reckoning.String(),
	)
	log.InfoContext(ctx, config.MsgSyncStarted)

	b, err := g.newFeed(cfg)
	if err != nil {
		return Result{}, err
	}

	if cfg.MonthEvents {
		b.addMonthStarts()
	}

	if cfg.Mode != "" {
		reader, err := g.acquireStream(ctx, cfg)
		if err != nil {
			if ctx.Err() != nil {
				return Result{}, ctx.Err()
			}
			return Result{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}
		// Best effort close. Errors in Close() for read-only files are rarely actionable here.
		defer func() { _ = reader.Close() }()

		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := b.addBirthdays(ctx, reader); err != nil {
			return Result{}, err
		}
	}

	res, err := b.encode()
	if err == nil {
		log.Debug("Sync finished", config.LogKeyDuration, time.Since(start).Milliseconds())
	}
	return res, err
}

// acquireStream opens the appropriate data source based on configuration.
func (g *Generator) acquireStream(ctx context.Context, cfg SyncConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if g.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return g.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// feed accumulates events for one generation.
type feed struct {
	cfg       SyncConfig
	conv      calendar.Converter
	summaries Summarizer
	now       time.Time
	today     calendar.HijriDate
	todayJDN  calendar.JDN
	cal       *ical.Calendar
	dtStamp   *ical.Prop
	birthdays []BirthdayEntry
	stats     struct{ processed, withBday, today, months int }
}

func (g *Generator) newFeed(cfg SyncConfig) (*feed, error) {
	var clock calendar.Clock = calendar.RealClock{}
	if g.Clock != nil {
		clock = g.Clock
	}
	var summaries Summarizer = (*messages.Catalog)(nil) // nil catalogue: config fallbacks
	if g.Summaries != nil {
		summaries = g.Summaries
	}

	// Birthdays follow the local calendar date, not the UTC one.
	now := clock.Now()
	conv := calendar.Converter{Reckoning: g.Reckoning}
	today, err := conv.GregorianToHijri(calendar.GregorianFromTime(now))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDateConvert, err)
	}
	todayJDN, err := conv.HijriToJDN(today)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDateConvert, err)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986 refresh hint.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())

	return &feed{
		cfg:       cfg,
		conv:      conv,
		summaries: summaries,
		now:       now,
		today:     today,
		todayJDN:  todayJDN,
		cal:       cal,
		dtStamp:   dtStamp,
	}, nil
}

// feedYears returns the Hijri years covered by the feed, clipped to the
// supported range.
func (f *feed) feedYears() []int {
	var years []int
	for y := f.today.Year - config.FeedYearsBefore; y <= f.today.Year+config.FeedYearsAfter; y++ {
		if y >= calendar.MinYear && y <= calendar.MaxHijriYear {
			years = append(years, y)
		}
	}
	return years
}

// addMonthStarts adds an all-day event on the 1st of every month of the
// feed years.
func (f *feed) addMonthStarts() {
	for _, y := range f.feedYears() {
		for m := 1; m <= 12; m++ {
			first := calendar.HijriDate{Year: y, Month: m, Day: 1}
			g, err := f.conv.HijriToGregorian(first)
			if err != nil {
				continue
			}

			info, _ := calendar.HijriMonth(m)
			label := info.Name
			if f.cfg.SecondaryNames {
				label = fmt.Sprintf("%s (%s)", info.Name, info.SecondaryName)
			}

			event := f.newEvent(eventUID(config.UIDKindMonth, fmt.Sprintf("%02d", m), y), g)
			event.Props.SetText(config.PropSummary, f.summaries.MonthStart(label, y))
			event.Props.SetText(config.PropDescription,
				calendar.FormatGregorian(g, calendar.FormatOptions{IncludeWeekday: true}))
			event.Props.SetText(config.PropCategories, config.CategoryMonth)
			f.cal.Children = append(f.cal.Children, event.Component)
			f.stats.months++
		}
	}
}

// addBirthdays decodes the vCard stream and adds the Hijri anniversaries of
// every contact with a full birth date. Malformed cards are skipped.
func (f *feed) addBirthdays(ctx context.Context, r io.Reader) error {
	decoder := vcard.NewDecoder(r)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log and continue to maximize data recovery.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		f.stats.processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birth, yearKnown, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			continue
		}

		name := cardName(card)
		if !yearKnown {
			// A Hijri date cannot be derived from a day and month alone.
			slog.Debug(config.MsgSkippedNoYear,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, name,
				config.LogKeyValue, bday.Value)
			continue
		}

		entry, err := f.birthdayEntry(name, birth)
		if err != nil {
			slog.Debug(config.MsgSkippedRange,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, name,
				config.LogKeyDOB, birth.String(),
				config.LogKeyError, err)
			continue
		}
		f.stats.withBday++
		f.birthdays = append(f.birthdays, entry)

		if f.addBirthdayEvents(entry) {
			f.stats.today++
			slog.Info(config.MsgBdayToday,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, name,
				config.LogKeyDOB, birth.String(),
				config.LogKeyHijri, entry.HijriBirth.String())
		}
	}
	return nil
}

// birthdayEntry converts a Gregorian birth date and finds the next Hijri
// anniversary.
func (f *feed) birthdayEntry(name string, birth calendar.GregorianDate) (BirthdayEntry, error) {
	hijri, err := f.conv.GregorianToHijri(birth)
	if err != nil {
		return BirthdayEntry{}, err
	}
	next, year, err := f.conv.NextAnniversary(hijri, f.today)
	if err != nil {
		return BirthdayEntry{}, err
	}
	nextG, err := f.conv.HijriToGregorian(next)
	if err != nil {
		return BirthdayEntry{}, err
	}
	nextJDN, err := f.conv.HijriToJDN(next)
	if err != nil {
		return BirthdayEntry{}, err
	}

	return BirthdayEntry{
		UID:            uuid.NewSHA1(uidNamespace, []byte(name+"|"+birth.String())).String(),
		Name:           name,
		DateOfBirth:    birth,
		HijriBirth:     hijri,
		NextOccurrence: next,
		NextGregorian:  nextG,
		AgeNext:        year - hijri.Year,
		DaysUntil:      int(nextJDN - f.todayJDN),
	}, nil
}

// addBirthdayEvents adds one event per feed year, never before the year of
// birth. It reports whether one of them falls today.
func (f *feed) addBirthdayEvents(e BirthdayEntry) bool {
	isToday := false
	opts := calendar.FormatOptions{IncludeSecondaryName: f.cfg.SecondaryNames}
	desc := f.summaries.BirthDescription(
		f.conv.FormatHijri(e.HijriBirth, opts),
		calendar.FormatGregorian(e.DateOfBirth, opts))

	for _, y := range f.feedYears() {
		if y < e.HijriBirth.Year {
			continue
		}
		date, err := f.conv.Anniversary(e.HijriBirth, y)
		if err != nil {
			continue
		}
		g, err := f.conv.HijriToGregorian(date)
		if err != nil {
			continue
		}
		if date == f.today {
			isToday = true
		}

		summary := f.summaries.Summary(e.Name, y-e.HijriBirth.Year, true)
		event := f.newEvent(eventUID(config.UIDKindBirth, e.UID, y), g)
		event.Props.SetText(config.PropSummary, summary)
		event.Props.SetText(config.PropDescription, desc)
		event.Props.SetText(config.PropCategories, config.CategoryBirthday)
		if f.cfg.ReminderTrigger != "" {
			addAlarm(event, f.cfg.ReminderTrigger, summary)
		}
		f.cal.Children = append(f.cal.Children, event.Component)
	}
	return isToday
}

// newEvent creates an all-day event on g.
func (f *feed) newEvent(uid string, g calendar.GregorianDate) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, uid)
	event.Props.Set(f.dtStamp)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(g.Time(f.now.Location()))
	event.Props.Set(dtStartProp)
	return event
}

// encode serializes the calendar. An empty feed is still a valid VCALENDAR.
func (f *feed) encode() (Result, error) {
	slices.SortFunc(f.birthdays, func(a, b BirthdayEntry) int {
		return cmp.Or(cmp.Compare(a.DaysUntil, b.DaysUntil), cmp.Compare(a.Name, b.Name))
	})

	var buf bytes.Buffer
	if len(f.cal.Children) == 0 {
		buf.WriteString(config.StubVCalendar)
	} else if err := ical.NewEncoder(&buf).Encode(f.cal); err != nil {
		return Result{}, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	f.logSuccess()
	return Result{
		ICS:       buf.Bytes(),
		Birthdays: f.birthdays,
		Today:     f.stats.today,
		Months:    f.stats.months,
	}, nil
}

// logSuccess logs the final statistics of the generation process.
func (f *feed) logSuccess() {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, f.stats.processed),
			slog.Int(config.LogKeyFound, f.stats.withBday),
			slog.Int(config.LogKeyToday, f.stats.today),
			slog.Int(config.LogKeyMonths, f.stats.months),
		),
	)
}

// eventUID derives a stable UUIDv5 UID so calendar clients update events in
// place across refreshes.
func eventUID(kind, subject string, year int) string {
	id := uuid.NewSHA1(uidNamespace, []byte(fmt.Sprintf(config.FormatUIDKey, kind, subject, year)))
	return fmt.Sprintf(config.FormatUID, id, config.ICalDomain)
}

// cardName picks FN, then N, then a placeholder.
func cardName(card vcard.Card) string {
	if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
		return fn.Value
	}
	if n := card.Get(config.VCardN); n != nil && n.Value != "" {
		return n.Value
	}
	return config.FallbackName
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

// parseDate handles the vCard BDAY forms. Truncated dates (--MM-DD) carry
// no year and report yearKnown false.
func parseDate(value string) (calendar.GregorianDate, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return calendar.GregorianFromTime(t), true, nil
		}
	}

	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if t, err := time.Parse(f, value); err == nil {
			return calendar.GregorianDate{Month: int(t.Month()), Day: t.Day()}, false, nil
		}
	}

	return calendar.GregorianDate{}, false, errors.New(config.ErrDateParse)
}
