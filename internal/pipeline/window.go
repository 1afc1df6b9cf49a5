package pipeline

import "github.com/newsdesk/commentscan/internal/model"

// DateSource yields the dates to process, one per call.
// Next returns false once no dates remain.
type DateSource interface {
	Next() (model.Cursor, bool)
}

// DateWindow walks backward one calendar day at a time from a start date.
// Without a lower bound it never ends.
type DateWindow struct {
	next    model.Cursor
	lower   model.Cursor
	bounded bool
}

// WindowOption configures a DateWindow.
type WindowOption func(*DateWindow)

// WithLowerBound stops the window after lower, inclusive.
func WithLowerBound(lower model.Cursor) WindowOption {
	return func(w *DateWindow) {
		w.lower = lower
		w.bounded = true
	}
}

// WithDays limits the window to n dates including the start date.
func WithDays(n int) WindowOption {
	return func(w *DateWindow) {
		if n <= 0 {
			return
		}
		lower := w.next
		for range n - 1 {
			lower = lower.Prev()
		}
		w.lower = lower
		w.bounded = true
	}
}

// NewDateWindow creates a window starting at start.
func NewDateWindow(start model.Cursor, opts ...WindowOption) *DateWindow {
	w := &DateWindow{next: start}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Next returns the next date, walking backward.
func (w *DateWindow) Next() (model.Cursor, bool) {
	if w.bounded && w.next.Before(w.lower) {
		return model.Cursor{}, false
	}
	c := w.next
	w.next = w.next.Prev()
	return c, true
}
