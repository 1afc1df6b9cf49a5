package model

import "time"

// Cursor is a position in the backward date walk, at day granularity.
// The page component of a crawl is local to each crawler and is not part
// of the cursor.
type Cursor struct {
	// Date is midnight UTC of the calendar date being processed.
	Date time.Time
}

// NewCursor returns a cursor for the calendar date of t in t's location.
func NewCursor(t time.Time) Cursor {
	y, m, d := t.Date()
	return Cursor{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Prev returns the cursor one calendar day earlier.
func (c Cursor) Prev() Cursor {
	return Cursor{Date: c.Date.AddDate(0, 0, -1)}
}

// Before reports whether c is strictly earlier than other.
func (c Cursor) Before(other Cursor) bool {
	return c.Date.Before(other.Date)
}

// Equal reports whether both cursors point at the same date.
func (c Cursor) Equal(other Cursor) bool {
	return c.Date.Equal(other.Date)
}

// String formats the cursor as YYYY-MM-DD.
func (c Cursor) String() string {
	return c.Date.Format(DateLayout)
}

// ParseCursor parses a YYYY-MM-DD date.
func ParseCursor(s string) (Cursor, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Cursor{}, err
	}
	return NewCursor(t), nil
}
