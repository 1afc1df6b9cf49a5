package crawler

import (
	"errors"
	"fmt"

	"github.com/newsdesk/commentscan/internal/model"
)

// ErrCountMismatch is wrapped by ConsistencyError.
var ErrCountMismatch = errors.New("article count does not match reported total")

// ConsistencyError reports a date whose collected article count differs
// from the total the site reports.
type ConsistencyError struct {
	Date      model.Cursor
	Reported  int
	Collected int
}

// Error implements the error interface.
func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("listing for %s: site reports %d articles, collected %d", e.Date, e.Reported, e.Collected)
}

// Unwrap returns ErrCountMismatch.
func (e *ConsistencyError) Unwrap() error {
	return ErrCountMismatch
}
