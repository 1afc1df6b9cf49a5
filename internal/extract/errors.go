package extract

import (
	"errors"
	"fmt"
)

// ErrElementMissing is wrapped when an expected element is absent.
var ErrElementMissing = errors.New("element missing")

// ExtractionError reports a structural element that is absent or
// cannot be parsed.
type ExtractionError struct {
	// Element names what was being extracted.
	Element string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Element, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func missing(element string) *ExtractionError {
	return &ExtractionError{Element: element, Err: ErrElementMissing}
}
