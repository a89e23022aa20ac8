package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tartampluch/go-hijri/internal/config"
	"golang.org/x/time/rate"
)

// cacheItem stores the rendered calendar and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// metrics are registered on the server's own registry so several servers
// (tests) never collide on the global one.
type metrics struct {
	requests  *prometheus.CounterVec
	limited   prometheus.Counter
	updates   prometheus.Counter
	failures  prometheus.Counter
	feedBytes prometheus.Gauge
	birthdays prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricRequests,
			Help:      config.MetricHelpRequests,
		}, []string{config.MetricLabelStatus}),
		limited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricRateLimited,
			Help:      config.MetricHelpLimited,
		}),
		updates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricUpdates,
			Help:      config.MetricHelpUpdates,
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricFailures,
			Help:      config.MetricHelpFailures,
		}),
		feedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricFeedBytes,
			Help:      config.MetricHelpFeedBytes,
		}),
		birthdays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricBirthdaysToday,
			Help:      config.MetricHelpBirthdays,
		}),
	}
	reg.MustRegister(m.requests, m.limited, m.updates, m.failures, m.feedBytes, m.birthdays)
	return m
}

// CalendarServer publishes the generated ICS feed on localhost.
type CalendarServer struct {
	// cache uses atomic.Pointer for lock-free reads: the feed is read far
	// more often than it is regenerated.
	cache atomic.Pointer[cacheItem]
	Port  int

	registry *prometheus.Registry
	metrics  *metrics

	// limiter may be swapped while requests are served. Nil disables it.
	limiter atomic.Pointer[rate.Limiter]
}

// NewCalendarServer creates a server with its own metrics registry and the
// default request rate limit.
func NewCalendarServer(port int) *CalendarServer {
	reg := prometheus.NewRegistry()
	s := &CalendarServer{
		Port:     port,
		registry: reg,
		metrics:  newMetrics(reg),
	}
	s.SetRateLimit(config.RateLimitPerSecond, config.RateLimitBurst)
	return s
}

// SetRateLimit replaces the request limiter, also while serving. A
// non-positive rate disables it.
func (s *CalendarServer) SetRateLimit(perSecond float64, burst int) {
	if perSecond <= 0 {
		s.limiter.Store(nil)
		return
	}
	s.limiter.Store(rate.NewLimiter(rate.Limit(perSecond), burst))
}

// Registry exposes the metrics registry, served on config.RouteMetrics.
func (s *CalendarServer) Registry() *prometheus.Registry {
	return s.registry
}

// Handler returns the routes: the feed at the root and the metrics page.
func (s *CalendarServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(config.RouteMetrics, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.Handle(config.RouteRoot, s.rateLimit(http.HandlerFunc(s.handleCalendarRequest)))
	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *CalendarServer) Start(ctx context.Context) error {
	if s.Port < config.MinPort || s.Port > config.MaxPort {
		return fmt.Errorf("%s: %d", config.ErrPortRequired, s.Port)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(config.LocalhostBindAddr, strconv.Itoa(s.Port)),
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served content.
func (s *CalendarServer) Update(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	// Readers see either the old or the new complete item.
	s.cache.Store(&cacheItem{
		data:         data,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	})
	s.metrics.updates.Inc()
	s.metrics.feedBytes.Set(float64(len(data)))

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// SetBirthdaysToday records the number of Hijri birthdays of the day.
func (s *CalendarServer) SetBirthdaysToday(n int) {
	s.metrics.birthdays.Set(float64(n))
}

// RecordFailure counts a failed regeneration. The previous feed stays served.
func (s *CalendarServer) RecordFailure() {
	s.metrics.failures.Inc()
}

// rateLimit rejects requests above the configured rate with 429.
func (s *CalendarServer) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l := s.limiter.Load(); l != nil && !l.Allow() {
			s.metrics.limited.Inc()
			s.metrics.requests.WithLabelValues(strconv.Itoa(http.StatusTooManyRequests)).Inc()
			slog.Debug(config.MsgRateLimited,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyRemote, r.RemoteAddr,
			)
			w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
			http.Error(w, config.ErrTooManyRequests, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleCalendarRequest serves the ICS content with HTTP caching support.
func (s *CalendarServer) handleCalendarRequest(w http.ResponseWriter, r *http.Request) {
	status := s.serveCalendar(w, r)
	s.metrics.requests.WithLabelValues(strconv.Itoa(status)).Inc()
}

func (s *CalendarServer) serveCalendar(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}

	item := s.cache.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return http.StatusServiceUnavailable
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	if notModified(r, item) {
		w.WriteHeader(http.StatusNotModified)
		return http.StatusNotModified
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
	return http.StatusOK
}

// notModified applies If-None-Match, then If-Modified-Since.
func notModified(r *http.Request, item *cacheItem) bool {
	if match := r.Header.Get(config.HeaderIfNoneMatch); match != "" {
		return match == item.etag
	}
	since := r.Header.Get(config.HeaderIfModifiedSince)
	if since == "" {
		return false
	}
	clientTime, err := time.Parse(http.TimeFormat, since)
	if err != nil {
		return false
	}
	serverTime, err := time.Parse(http.TimeFormat, item.lastModified)
	if err != nil {
		return false
	}
	return !serverTime.After(clientTime)
}
