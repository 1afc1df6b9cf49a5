package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"

	"golang.org/x/net/html/charset"
)

const (
	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

	// DefaultMaxBodySize caps how much of a response body is read.
	DefaultMaxBodySize int64 = 10 * 1024 * 1024

	// maxRedirects stops redirect loops.
	maxRedirects = 10
)

// HTTPFetcher fetches pages over HTTP(S) with a shared client.
type HTTPFetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
	cookie      string
	headers     map[string]string
	proxy       string
	logger      *slog.Logger
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout sets a per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxBodySize sets the maximum number of body bytes read per response.
func WithMaxBodySize(size int64) Option {
	return func(f *HTTPFetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithHeaders adds headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(f *HTTPFetcher) {
		f.headers = headers
	}
}

// WithCookie sends a raw cookie string ("name=value; other=value") with
// every request.
func WithCookie(cookie string) Option {
	return func(f *HTTPFetcher) {
		f.cookie = cookie
	}
}

// WithProxy routes connections through a SOCKS5 proxy at "host:port".
func WithProxy(address string) Option {
	return func(f *HTTPFetcher) {
		f.proxy = address
	}
}

// WithHTTPClient replaces the underlying client.
// Timeout and proxy options are ignored when a client is supplied.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		f.client = c
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(f *HTTPFetcher) {
		f.logger = l
	}
}

// NewHTTPFetcher creates a fetcher.
// It fails only when the proxy address is malformed.
func NewHTTPFetcher(opts ...Option) (*HTTPFetcher, error) {
	f := &HTTPFetcher{
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		client, err := f.newClient()
		if err != nil {
			return nil, err
		}
		f.client = client
	}

	if f.cookie != "" || len(f.headers) > 0 {
		base := f.client.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		wrapped := *f.client
		wrapped.Transport = &headerInjectingTransport{
			base:    base,
			cookie:  f.cookie,
			headers: f.headers,
		}
		f.client = &wrapped
	}

	return f, nil
}

// newClient builds the shared client: keep-alive transport, cookie jar and
// an optional SOCKS5 dialer.
func (f *HTTPFetcher) newClient() (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 16

	if f.proxy != "" {
		dial, err := socks5DialContext(f.proxy)
		if err != nil {
			return nil, err
		}
		transport.Proxy = nil
		transport.DialContext = dial
	}

	jar, _ := cookiejar.New(nil) //nolint:errcheck // cookiejar.New only fails with invalid options

	return &http.Client{
		Transport: transport,
		Timeout:   f.timeout,
		Jar:       jar,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}, nil
}

// Get fetches url.
func (f *HTTPFetcher) Get(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "hr,en-US;q=0.7,en;q=0.3")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	f.logger.Debug("fetched page",
		"url", url,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &Page{URL: url, StatusCode: resp.StatusCode, Status: StatusNotFound}, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        ErrUnexpectedStatus,
		}
	}

	body, err := f.readBody(resp)
	if err != nil {
		return nil, &TransportError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	return &Page{
		URL:        url,
		StatusCode: resp.StatusCode,
		Status:     StatusFound,
		Body:       body,
	}, nil
}

// readBody reads at most maxBodySize bytes and converts them to UTF-8
// using the declared or sniffed charset.
func (f *HTTPFetcher) readBody(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, f.maxBodySize)
	r, err := charset.NewReader(limited, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to detect charset: %w", err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return body, nil
}

// headerInjectingTransport adds the configured cookie and headers to
// every request, redirects included.
type headerInjectingTransport struct {
	base    http.RoundTripper
	cookie  string
	headers map[string]string
}

// RoundTrip implements http.RoundTripper.
func (t *headerInjectingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	if t.cookie != "" {
		if existing := clone.Header.Get("Cookie"); existing != "" {
			clone.Header.Set("Cookie", existing+"; "+t.cookie)
		} else {
			clone.Header.Set("Cookie", t.cookie)
		}
	}
	for key, value := range t.headers {
		clone.Header.Set(key, value)
	}

	return t.base.RoundTrip(clone)
}
