package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/tartampluch/go-hijri/internal/calendar"
	"github.com/tartampluch/go-hijri/internal/cli"
	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/engine"
)

// main delegates to runMain so that deferred calls (closing the log file)
// run before os.Exit.
func main() {
	os.Exit(runMain(os.Args[1:]))
}

// runMain manages the application lifecycle and exit codes.
func runMain(args []string) int {
	var logCloser io.Closer
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}()

	// Cancel on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &cli.App{
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Clock:   calendar.RealClock{},
		Fetcher: engine.NewHTTPFetcher(),
		// Logging waits for the parsed flags (--debug).
		SetupLogging: func(debug, console bool) {
			logCloser = setupLogging(debug, console)
			logStartupInfo()
		},
	}

	if err := app.Execute(ctx, args); err != nil {
		// cobra already printed the error for the user.
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Debug(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging installs a JSON slog logger. The log file in the user cache
// directory is always written; console adds stderr, since stdout carries
// command output.
func setupLogging(debugMode, console bool) io.Closer {
	var sinks []io.Writer
	if console {
		sinks = append(sinks, os.Stderr)
	}

	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, config.LogFileName, err)
	} else {
		sinks = append(sinks, logFile)
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debugMode {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.MultiWriter(sinks...), opts)))

	if logFile == nil {
		return nil
	}
	return logFile
}

// openLogFile truncates the previous run's log, so it never grows unbounded.
func openLogFile() (*os.File, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}
	dir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}
	return os.OpenFile(filepath.Join(dir, config.LogFileName), os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
}
