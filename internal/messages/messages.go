// Package messages holds the translated strings shown to users: CLI labels
// and the summaries written into calendar events.
package messages

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-hijri/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

// Catalog resolves message keys for one language, falling back to English.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
	languages []string
}

// New loads every embedded locale file and selects lang.
// Broken locale files are logged and skipped.
func New(lang string) *Catalog {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	c := &Catalog{bundle: bundle}

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
		if code == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+"/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		c.languages = append(c.languages, code)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, code,
		)
	}
	sort.Strings(c.languages)

	c.SetLanguage(lang)
	return c
}

// SetLanguage switches the active language. Unknown tags fall back to English.
func (c *Catalog) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	c.lang = lang
	c.localizer = i18n.NewLocalizer(c.bundle, lang, config.DefaultLanguage)
}

// Language returns the requested language tag.
func (c *Catalog) Language() string { return c.lang }

// Languages lists the locale codes found in the embedded catalogue.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.languages))
	copy(out, c.languages)
	return out
}

// Message renders key with optional template data.
func (c *Catalog) Message(key string, data map[string]any) (string, error) {
	if c == nil || c.localizer == nil {
		return "", errors.New(config.ErrLocNotInit)
	}
	return c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}

// Plural renders key with the plural form selected by count.
// Count is also available to the template.
func (c *Catalog) Plural(key string, count int, data map[string]any) (string, error) {
	if c == nil || c.localizer == nil {
		return "", errors.New(config.ErrLocNotInit)
	}
	if data == nil {
		data = map[string]any{}
	}
	data["Count"] = count
	return c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
		PluralCount:  count,
	})
}

// Get returns the translation of key, or the key itself when missing.
func (c *Catalog) Get(key string) string {
	msg, err := c.Message(key, nil)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// Summary returns the event title for a birthday. Age 0 marks the day of
// birth itself.
func (c *Catalog) Summary(name string, age int, yearKnown bool) string {
	var (
		msg string
		err error
	)
	switch {
	case !yearKnown:
		msg, err = c.Message(config.TKeyEvtSummary, map[string]any{"Name": name})
	case age == 0:
		msg, err = c.Message(config.TKeyEvtSummaryBirth, map[string]any{"Name": name})
	default:
		msg, err = c.Message(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
	}
	if err == nil && msg != "" {
		return msg
	}

	switch {
	case !yearKnown:
		return fmt.Sprintf(config.FallbackSummary, name)
	case age == 0:
		return fmt.Sprintf(config.FallbackSummaryBirth, name)
	default:
		return fmt.Sprintf(config.FallbackSummaryAge, name, age)
	}
}

// MonthStart returns the event title for the first day of a Hijri month.
func (c *Catalog) MonthStart(month string, year int) string {
	msg, err := c.Message(config.TKeyEvtMonthStart, map[string]any{"Month": month, "Year": year})
	if err != nil || msg == "" {
		return fmt.Sprintf(config.FallbackMonthStart, month, year)
	}
	return msg
}

// BirthDescription returns the event description naming both birth dates.
func (c *Catalog) BirthDescription(hijri, gregorian string) string {
	msg, err := c.Message(config.TKeyEvtDescBirthday, map[string]any{"Hijri": hijri, "Gregorian": gregorian})
	if err != nil || msg == "" {
		return fmt.Sprintf(config.FallbackBirthDesc, hijri, gregorian)
	}
	return msg
}

// BirthdaysToday returns the status line for count birthdays today.
func (c *Catalog) BirthdaysToday(count int) string {
	if count == 0 {
		return c.Get(config.TKeyStatusBirthdaysZero)
	}
	msg, err := c.Plural(config.TKeyStatusBirthdays, count, nil)
	if err != nil {
		return c.Get(config.TKeyStatusBirthdays)
	}
	return msg
}
