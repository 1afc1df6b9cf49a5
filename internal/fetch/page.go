package fetch

import "context"

// Status tags the outcome of a successful round trip.
type Status int

const (
	// StatusFound means the server answered with a 2xx status.
	StatusFound Status = iota

	// StatusNotFound means the server answered 404.
	StatusNotFound
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Page is a fetched page.
type Page struct {
	// URL is the requested URL.
	URL string

	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Status tags the response as found or not found.
	Status Status

	// Body is the response body decoded to UTF-8.
	// It is empty for StatusNotFound.
	Body []byte
}

// Found reports whether the page exists.
func (p *Page) Found() bool {
	return p.Status == StatusFound
}

// Fetcher performs a single GET.
// Implementations must be safe for concurrent use.
type Fetcher interface {
	Get(ctx context.Context, url string) (*Page, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (*Page, error)

// Get calls f(ctx, url).
func (f FetcherFunc) Get(ctx context.Context, url string) (*Page, error) {
	return f(ctx, url)
}
