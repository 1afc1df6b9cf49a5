package model

import (
	"encoding/json"
	"time"
)

// TimestampLayout is how comment timestamps are rendered in reports.
// Timestamps carry no zone information.
const TimestampLayout = "2006-01-02T15:04:05"

// Comment is a single comment posted under an article.
//
// A top-level comment may carry reactions. Reactions are a flat list:
// a reaction's own Reactions slice is always empty.
type Comment struct {
	// ID is the site identifier used to look up reactions.
	// It may be empty for comments without reactions and for reactions.
	ID string

	// Author is the display name of the poster.
	Author string

	// Content is the trimmed comment text.
	Content string

	// Timestamp is the local wall-clock time the comment was posted.
	Timestamp time.Time

	// Reactions holds the replies attached to this comment, in document order.
	Reactions []Comment
}

// ReactionCount returns the number of reactions attached to the comment.
func (c Comment) ReactionCount() int {
	return len(c.Reactions)
}

// MarshalJSON renders the timestamp without a zone and always emits
// reactions as an array.
func (c Comment) MarshalJSON() ([]byte, error) {
	reactions := c.Reactions
	if reactions == nil {
		reactions = []Comment{}
	}
	return json.Marshal(struct {
		ID        string    `json:"id,omitempty"`
		Author    string    `json:"author"`
		Content   string    `json:"content"`
		Timestamp string    `json:"timestamp"`
		Reactions []Comment `json:"reactions"`
	}{
		ID:        c.ID,
		Author:    c.Author,
		Content:   c.Content,
		Timestamp: c.Timestamp.Format(TimestampLayout),
		Reactions: reactions,
	})
}
