package server

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-hijri/internal/engine"
)

// TestRefresher_InitialAndTriggered checks the start-up generation and a
// manual trigger with the ticker disabled.
func TestRefresher_InitialAndTriggered(t *testing.T) {
	srv := NewCalendarServer(0)
	trigger := make(chan struct{})
	var calls atomic.Int32

	r := &Refresher{
		Server: srv,
		Generate: func(ctx context.Context) (engine.Result, error) {
			n := calls.Add(1)
			return engine.Result{ICS: []byte{byte('0' + n)}, Today: int(n)}, nil
		},
		Trigger: trigger,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return srv.cache.Load() != nil }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "1", string(srv.cache.Load().data))

	trigger <- struct{}{}
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return string(srv.cache.Load().data) == "2" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2.0, testutil.ToFloat64(srv.metrics.birthdays))

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop")
	}
}

// TestRefresher_KeepsFeedOnFailure serves the last good feed after a
// failed regeneration.
func TestRefresher_KeepsFeedOnFailure(t *testing.T) {
	srv := NewCalendarServer(0)
	srv.Update([]byte("GOOD"))

	r := &Refresher{
		Server: srv,
		Generate: func(ctx context.Context) (engine.Result, error) {
			return engine.Result{}, errors.New("address book unreachable")
		},
	}
	r.refresh(context.Background(), false)

	assert.Equal(t, "GOOD", string(srv.cache.Load().data))
	assert.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.failures))
}

func TestRefresher_Ticker(t *testing.T) {
	srv := NewCalendarServer(0)
	var calls atomic.Int32
	r := &Refresher{
		Server:   srv,
		Interval: 10 * time.Millisecond,
		Generate: func(ctx context.Context) (engine.Result, error) {
			calls.Add(1)
			return engine.Result{ICS: []byte("X")}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
}
