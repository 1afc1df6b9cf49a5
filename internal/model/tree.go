package model

import "encoding/json"

// CommentTree is the result of crawling one article's comments.
//
// An article either has no comments section at all (the comment listing
// endpoint does not exist) or has one with zero or more comments. The two
// cases are reported differently, so they are kept distinct here. The zero
// value is a tree without a comments section.
type CommentTree struct {
	hasSection bool
	comments   []Comment
}

// NoSection returns the marker for an article without a comments section.
func NoSection() CommentTree {
	return CommentTree{}
}

// Section returns a tree for an article with a comments section.
// A nil slice is stored as an empty one.
func Section(comments []Comment) CommentTree {
	if comments == nil {
		comments = []Comment{}
	}
	return CommentTree{hasSection: true, comments: comments}
}

// HasSection reports whether the article has a comments section.
func (t CommentTree) HasSection() bool {
	return t.hasSection
}

// Comments returns the top-level comments in page-then-document order.
// It returns nil when the article has no comments section.
func (t CommentTree) Comments() []Comment {
	return t.comments
}

// Count returns the number of top-level comments.
func (t CommentTree) Count() int {
	return len(t.comments)
}

// ReactionCount returns the total number of reactions across all comments.
func (t CommentTree) ReactionCount() int {
	total := 0
	for _, c := range t.comments {
		total += c.ReactionCount()
	}
	return total
}

// MarshalJSON encodes the tree with an explicit section flag.
func (t CommentTree) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		HasSection bool      `json:"has_section"`
		Comments   []Comment `json:"comments,omitempty"`
	}{
		HasSection: t.hasSection,
		Comments:   t.comments,
	})
}
