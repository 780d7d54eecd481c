// Package http provides an HTTP-based implementation of newscrawl.Fetcher.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/newscrawl"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how many bytes of a response body are read.
const DefaultMaxBodySize = 10 << 20

// DefaultUserAgent identifies the crawler to news sites.
const DefaultUserAgent = "Mozilla/5.0 (compatible; newscrawl/1.0)"

// Ensure Fetcher implements newscrawl.Fetcher at compile time.
var _ newscrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// A single http.Client is shared by all calls, so connections are pooled.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified or not positive.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient bases the Fetcher on a copy of c.
// The copy's Timeout is set to the configured timeout; c is left untouched.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithMaxBodySize sets the largest response body accepted, in bytes.
// Defaults to DefaultMaxBodySize if not specified or not positive.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.timeout <= 0 {
		f.timeout = DefaultFetchTimeout
	}
	if f.maxBodySize <= 0 {
		f.maxBodySize = DefaultMaxBodySize
	}

	client := &http.Client{}
	if f.client != nil {
		c := *f.client
		client = &c
	}
	client.Timeout = f.timeout
	f.client = client

	return f
}

// Fetch retrieves the page at url and returns its body decoded to UTF-8.
// Any status outside 200-399 is reported as an error, as is a body
// larger than the configured maximum.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &newscrawl.FetchError{URL: url, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &newscrawl.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return "", &newscrawl.FetchError{URL: url, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return "", &newscrawl.FetchError{URL: url, Err: err}
	}
	if int64(len(raw)) > f.maxBodySize {
		return "", &newscrawl.FetchError{URL: url, Err: fmt.Errorf("body exceeds %d bytes", f.maxBodySize)}
	}
	if len(raw) == 0 {
		return "", nil
	}

	// Bodies are normalized to UTF-8 from the declared or sniffed charset.
	body, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &newscrawl.FetchError{URL: url, Err: fmt.Errorf("decoding body: %w", err)}
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", &newscrawl.FetchError{URL: url, Err: fmt.Errorf("decoding body: %w", err)}
	}

	return string(b), nil
}

// Timeout returns the per-request timeout in effect.
func (f *Fetcher) Timeout() time.Duration {
	return f.client.Timeout
}

// Close drops idle pooled connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
