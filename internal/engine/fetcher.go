package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tartampluch/go-hijri/internal/config"
	"golang.org/x/time/rate"
)

// VCardFetcher retrieves a vCard stream from a remote address book.
type VCardFetcher interface {
	Fetch(ctx context.Context, url, user, pass string) (io.ReadCloser, error)
}

// ErrResponseTooLarge is returned by reads past the configured body limit.
var ErrResponseTooLarge = errors.New(config.ErrResponseTooLarge)

// HTTPFetcher downloads vCards over HTTP(S) with optional Basic Auth.
type HTTPFetcher struct {
	Client *http.Client

	// MaxBytes bounds the response body. Zero means config.MaxHTTPResponseSize.
	MaxBytes int64

	// Limiter spaces out downloads when the feed is refreshed in a loop.
	// Nil disables limiting.
	Limiter *rate.Limiter
}

// NewHTTPFetcher creates a fetcher with the default timeout and download rate.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client:  &http.Client{Timeout: config.HTTPTimeout},
		Limiter: rate.NewLimiter(rate.Every(time.Minute/config.FetchRatePerMinute), config.FetchRateBurst),
	}
}

// Fetch retrieves vCard data from targetURL. Query strings are stripped from
// logs since they may carry tokens.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL, user, pass string) (io.ReadCloser, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompFetcher),
		slog.String(config.LogKeyURL, u.Scheme+"://"+u.Host+u.Path),
	)

	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrRateWait, err)
		}
	}

	log.Debug(config.MsgFetchStart)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrRequestBuild, err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	req.Header.Set(config.HeaderAccept, config.MimeVCardAccept)
	if user != "" || pass != "" {
		req.SetBasicAuth(user, pass)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Warn(config.MsgFetchStatus, slog.Int(config.LogKeyStatus, resp.StatusCode))
		return nil, fmt.Errorf("%s: %s", config.ErrHTTPStatus, resp.Status)
	}

	log.Info(config.MsgFetchOK, slog.Int64(config.LogKeyLength, resp.ContentLength))

	limit := f.MaxBytes
	if limit <= 0 {
		limit = config.MaxHTTPResponseSize
	}
	return &limitedReadCloser{rc: resp.Body, remaining: limit}, nil
}

// limitedReadCloser fails with ErrResponseTooLarge instead of silently
// truncating, so a partial address book is never published.
type limitedReadCloser struct {
	rc        io.ReadCloser
	remaining int64
}

func (l *limitedReadCloser) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		// Peek one byte to tell an exact fit from an overflow.
		var peek [1]byte
		if n, _ := l.rc.Read(peek[:]); n > 0 {
			return 0, ErrResponseTooLarge
		}
		return 0, io.EOF
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.rc.Read(p)
	l.remaining -= int64(n)
	return n, err
}

func (l *limitedReadCloser) Close() error {
	return l.rc.Close()
}
