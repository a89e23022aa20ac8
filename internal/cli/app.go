// Package cli implements the go-hijri command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-hijri/internal/calendar"
	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/engine"
	"github.com/tartampluch/go-hijri/internal/messages"
)

const (
	cmdServe = "serve"

	descRoot = "Convert dates between the Gregorian and tabular Hijri calendars"
)

// App holds the dependencies shared by every command.
type App struct {
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Clock   calendar.Clock
	Fetcher engine.VCardFetcher

	// SetupLogging installs the process logger once flags are parsed.
	// console asks for log lines on the terminal in addition to the log file.
	// Nil keeps the current default logger.
	SetupLogging func(debug, console bool)

	settings *config.Settings
	conv     calendar.Converter
	catalog  *messages.Catalog
	styles   styles
	out      io.Writer
	short    bool
}

// Execute runs the command line args and returns the first error.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree bound to a.
func (a *App) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               config.BinaryName,
		Short:             descRoot,
		Version:           config.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.prepare,
	}
	root.SetVersionTemplate(fmt.Sprintf(config.MsgVersionOutput,
		config.AppName, config.Version, config.Commit, runtime.GOOS, runtime.GOARCH))

	if a.In != nil {
		root.SetIn(a.In)
	}
	if a.Out != nil {
		root.SetOut(a.Out)
	}
	if a.Err != nil {
		root.SetErr(a.Err)
	}

	pf := root.PersistentFlags()
	pf.String(config.FlagConfig, "", config.FlagDescConfig)
	pf.Bool(config.FlagDebug, false, config.FlagDescDebug)
	pf.StringP(config.FlagOutput, "o", config.DefaultOutput, config.FlagDescOutput)
	pf.String(config.FlagReckoning, config.DefaultReckoning, config.FlagDescReckoning)
	pf.Bool(config.FlagArabic, false, config.FlagDescArabic)
	pf.Bool(config.FlagShort, false, config.FlagDescShort)
	pf.String(config.FlagLang, config.DefaultLanguage, config.FlagDescLang)

	root.AddCommand(
		a.newTodayCommand(),
		a.newConvertCommand(),
		a.newAddCommand(),
		a.newUpcomingCommand(),
		a.newMonthCommand(),
		a.newValidateCommand(),
		a.newBirthdaysCommand(),
		a.newFeedCommand(),
		a.newServeCommand(),
		a.newPasswordCommand(),
		a.newVersionCommand(),
	)
	return root
}

// prepare loads the settings (flags > environment > file > defaults) and
// builds the converter and message catalogue for the running command.
func (a *App) prepare(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	debug, _ := flags.GetBool(config.FlagDebug)
	if a.SetupLogging != nil {
		a.SetupLogging(debug, debug || cmd.Name() == cmdServe)
	}

	path, _ := flags.GetString(config.FlagConfig)
	s, err := config.Load(path, flags)
	if err != nil {
		return err
	}
	r, err := calendar.ParseReckoning(s.Reckoning)
	if err != nil {
		return err
	}

	a.settings = s
	a.conv = calendar.Converter{Reckoning: r}
	a.catalog = messages.New(s.Language)
	a.short, _ = flags.GetBool(config.FlagShort)
	a.out = cmd.OutOrStdout()
	a.styles = newStyles(a.out)

	if a.Clock == nil {
		a.Clock = calendar.RealClock{}
	}

	slog.Debug(config.MsgSettings,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyReckoning, r.String(),
		config.LogKeyLang, s.Language,
	)
	return nil
}

func (a *App) formatOptions() calendar.FormatOptions {
	return calendar.FormatOptions{
		IncludeSecondaryName: a.settings.Arabic,
		Short:                a.short,
	}
}

// label returns the translation of key, or fallback when it is missing.
func (a *App) label(key, fallback string, data map[string]any) string {
	msg, err := a.catalog.Message(key, data)
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

// dateView renders d in its own calendar.
func (a *App) dateView(d calendar.Date) (dateView, error) {
	j, err := a.conv.ToJDN(d)
	if err != nil {
		return dateView{}, err
	}
	text, err := a.conv.Format(d, a.formatOptions())
	if err != nil {
		return dateView{}, err
	}
	return dateView{
		Calendar: d.Calendar(),
		Date:     d.String(),
		Text:     text,
		Weekday:  weekdayName(calendar.WeekdayOfJDN(j), a.settings.Arabic),
		JDN:      int64(j),
	}, nil
}

// dayView renders a Day in both calendars.
func (a *App) dayView(d calendar.Day) dayView {
	opts := a.formatOptions()
	return dayView{
		JDN:           int64(d.JDN),
		Hijri:         d.Hijri,
		Gregorian:     d.Gregorian,
		Weekday:       weekdayName(d.Weekday, a.settings.Arabic),
		HijriText:     a.conv.FormatHijri(d.Hijri, opts),
		GregorianText: calendar.FormatGregorian(d.Gregorian, opts),
	}
}

func (a *App) render(v any, text func(w io.Writer) error) error {
	return render(a.out, a.settings.Output, v, text)
}

// writeFile writes data to path, or to the command output when path is empty.
func (a *App) writeFile(path string, data []byte) error {
	if path == "" {
		_, err := a.out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, config.FilePermShared); err != nil {
		return fmt.Errorf("%s: %w", config.ErrFeedWrite, err)
	}
	slog.Info(config.MsgFeedWritten,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyFile, path,
		config.LogKeySizeBytes, len(data),
	)
	return nil
}
