package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is wrapped by a TransportError when a 404 is not an
	// accepted outcome for the page being fetched.
	ErrNotFound = errors.New("page not found")

	// ErrUnexpectedStatus is wrapped by a TransportError for any non-2xx
	// status other than 404.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrInvalidProxyAddress is returned when the proxy address is not in
	// "host:port" format.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)

// TransportError describes a failed fetch.
// StatusCode is zero when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: %d %s: %v", e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError returns the TransportError for a 404 at url.
func NotFoundError(url string) *TransportError {
	return &TransportError{URL: url, StatusCode: http.StatusNotFound, Err: ErrNotFound}
}
