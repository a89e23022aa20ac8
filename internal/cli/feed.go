package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-hijri/internal/calendar"
	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/engine"
	"github.com/tartampluch/go-hijri/internal/server"
)

// Fallback column headers.
const (
	fallbackName = "Name"
	fallbackBorn = "Born (AH)"
	fallbackNext = "Next"
	fallbackAge  = "Age"
	fallbackDays = "In days"
)

type birthdaysView struct {
	Today     int                    `json:"today" yaml:"today"`
	Birthdays []engine.BirthdayEntry `json:"birthdays" yaml:"birthdays"`
}

// addSourceFlags registers the vCard source flags shared by birthdays, feed
// and serve.
func addSourceFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String(config.FlagSource, "", config.FlagDescSource)
	f.String(config.FlagPath, "", config.FlagDescPath)
	f.String(config.FlagURL, "", config.FlagDescURL)
	f.String(config.FlagUser, "", config.FlagDescUser)
}

func (a *App) generator() *engine.Generator {
	fetcher := a.Fetcher
	if fetcher == nil {
		fetcher = engine.NewHTTPFetcher()
	}
	return &engine.Generator{
		Clock:     a.Clock,
		Fetcher:   fetcher,
		Reckoning: a.conv.Reckoning,
		Summaries: a.catalog,
	}
}

// syncConfig maps the settings onto a generation request. The web password
// is looked up in the keyring when the environment does not provide it.
func (a *App) syncConfig() (engine.SyncConfig, error) {
	s := a.settings
	trigger, err := engine.ReminderTrigger(s.ReminderDays)
	if err != nil {
		return engine.SyncConfig{}, err
	}
	if s.SourceMode == config.SourceModeWeb {
		if err := s.ResolvePassword(); err != nil {
			return engine.SyncConfig{}, err
		}
	}
	return engine.SyncConfig{
		Mode:            s.SourceMode,
		LocalPath:       s.LocalPath,
		WebURL:          s.WebURL,
		WebUser:         s.WebUser,
		WebPass:         s.WebPass,
		ReminderTrigger: trigger,
		MonthEvents:     s.MonthEvents,
		SecondaryNames:  s.Arabic,
	}, nil
}

func (a *App) newBirthdaysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "List the next Hijri birthdays of a vCard address book",
		Example: `  go-hijri birthdays --source local --path contacts.vcf
  go-hijri birthdays --source web --url https://dav.example.com/contacts --user alice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.syncConfig()
			if err != nil {
				return err
			}
			if cfg.Mode == "" {
				return errors.New(config.ErrModeUnsupport)
			}
			cfg.MonthEvents = false

			res, err := a.generator().RunSync(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			v := birthdaysView{Today: res.Today, Birthdays: res.Birthdays}
			if v.Birthdays == nil {
				v.Birthdays = []engine.BirthdayEntry{}
			}
			return a.render(v, func(w io.Writer) error {
				return a.writeBirthdays(w, v)
			})
		},
	}
	addSourceFlags(cmd)
	return cmd
}

func (a *App) writeBirthdays(w io.Writer, v birthdaysView) error {
	fmt.Fprintln(w, a.styles.title.Render(a.catalog.BirthdaysToday(v.Today)))
	if len(v.Birthdays) == 0 {
		return nil
	}

	opts := a.formatOptions()
	headers := []string{
		a.label(config.TKeyColName, fallbackName, nil),
		a.label(config.TKeyColBorn, fallbackBorn, nil),
		a.label(config.TKeyColNext, fallbackNext, nil),
		a.label(config.TKeyColAge, fallbackAge, nil),
		a.label(config.TKeyColDays, fallbackDays, nil),
	}
	rows := make([][]string, 0, len(v.Birthdays))
	highlight := noHighlight
	for i, b := range v.Birthdays {
		if b.DaysUntil == 0 && highlight == noHighlight {
			highlight = i
		}
		rows = append(rows, []string{
			b.Name,
			a.conv.FormatHijri(b.HijriBirth, opts),
			a.conv.FormatHijri(b.NextOccurrence, opts) + " (" + calendar.FormatGregorian(b.NextGregorian, opts) + ")",
			strconv.Itoa(b.AgeNext),
			strconv.Itoa(b.DaysUntil),
		})
	}
	_, err := fmt.Fprintln(w, a.styles.table(headers, rows, highlight))
	return err
}

func (a *App) newFeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Write the Hijri iCalendar feed",
		Example: `  go-hijri feed --out hijri.ics
  go-hijri feed --source local --path contacts.vcf --months=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.syncConfig()
			if err != nil {
				return err
			}
			res, err := a.generator().RunSync(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString(config.FlagOut)
			return a.writeFile(out, res.ICS)
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().String(config.FlagOut, "", config.FlagDescOut)
	cmd.Flags().Bool(config.FlagMonths, true, config.FlagDescMonths)
	return cmd
}

func (a *App) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   cmdServe,
		Short: "Publish the feed on localhost and keep it current",
		Long: `Publish the feed on localhost and keep it current.

The feed is regenerated every refresh_minutes and on SIGHUP.
Prometheus metrics are served on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.syncConfig()
			if err != nil {
				return err
			}
			return a.serve(cmd.Context(), cfg)
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().Int(config.FlagPort, config.DefaultPort, config.FlagDescPort)
	cmd.Flags().Bool(config.FlagMonths, true, config.FlagDescMonths)
	return cmd
}

// serve runs the feed server and its refresher until ctx is cancelled.
func (a *App) serve(ctx context.Context, cfg engine.SyncConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := server.NewCalendarServer(a.settings.Port)
	gen := a.generator()

	trigger := make(chan struct{}, config.ChannelBufferSize)
	hup := make(chan os.Signal, config.ChannelBufferSize)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	refresher := &server.Refresher{
		Server: srv,
		Generate: func(ctx context.Context) (engine.Result, error) {
			return gen.RunSync(ctx, cfg)
		},
		Interval: time.Duration(a.settings.RefreshMinutes) * time.Minute,
		Trigger:  trigger,
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		refresher.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				select {
				case trigger <- struct{}{}:
				default:
				}
			}
		}
	}()

	err := srv.Start(ctx)
	// Stops the helpers when the listener failed on its own.
	cancel()
	wg.Wait()
	return err
}

type passwordView struct {
	Service string `json:"service" yaml:"service"`
	User    string `json:"user" yaml:"user"`
}

// newPasswordCommand stores the web source password in the OS keyring, where
// birthdays, feed and serve look it up. The password is the first line of
// stdin so that it never appears in the process arguments.
func (a *App) newPasswordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Store the web source password in the OS keyring",
		Example: `  go-hijri password --user alice < password.txt
  pass show dav | go-hijri password --user alice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user := a.settings.WebUser
			if user == "" {
				return errors.New(config.ErrUserRequired)
			}
			pass, err := readSecret(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := config.StorePassword(user, pass); err != nil {
				return err
			}
			slog.Info(config.MsgPassStored,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyUser, user,
			)

			v := passwordView{Service: config.KeyringService, User: user}
			return a.render(v, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, a.styles.ok.Render(config.MsgPassStored+": "+v.User))
				return err
			})
		},
	}
	cmd.Flags().String(config.FlagUser, "", config.FlagDescUser)
	return cmd
}

// readSecret returns the first line of r without its line ending.
func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%s: %w", config.ErrPasswordRead, err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New(config.ErrPasswordEmpty)
	}
	return line, nil
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			v := versionView{
				App:     config.AppName,
				Version: config.Version,
				Commit:  config.Commit,
				Date:    config.Date,
				OS:      runtime.GOOS,
				Arch:    runtime.GOARCH,
			}
			return a.render(v, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, config.MsgVersionOutput, v.App, v.Version, v.Commit, v.OS, v.Arch)
				return err
			})
		},
	}
}
