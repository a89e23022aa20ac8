package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/engine"
)

// Refresher keeps the served feed current: once at start, then on every
// tick and every Trigger signal.
type Refresher struct {
	Server   *CalendarServer
	Generate func(ctx context.Context) (engine.Result, error)

	// Interval between regenerations. config.DisabledInterval (0) turns the
	// ticker off.
	Interval time.Duration

	// Trigger requests an immediate regeneration (SIGHUP in serve).
	Trigger <-chan struct{}
}

// Run blocks until ctx is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	r.refresh(ctx, false)

	var tick <-chan time.Time
	if r.Interval > config.DisabledInterval {
		ticker := time.NewTicker(r.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, r.Interval)

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgWorkerStop)
			return
		case <-r.Trigger:
			r.refresh(ctx, true)
		case <-tick:
			r.refresh(ctx, false)
		}
	}
}

// refresh regenerates the feed. On failure the previous feed keeps being
// served.
func (r *Refresher) refresh(ctx context.Context, manual bool) {
	slog.Info(config.MsgSyncReq,
		config.LogKeyComponent, config.CompWorker,
		config.LogKeyManual, manual)

	res, err := r.Generate(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.Server.RecordFailure()
		slog.Error(config.MsgSyncFailed,
			config.LogKeyComponent, config.CompWorker,
			config.LogKeyError, err)
		return
	}

	r.Server.Update(res.ICS)
	r.Server.SetBirthdaysToday(res.Today)
}
