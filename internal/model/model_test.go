package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

// TestCommentTree tests the distinction between a missing and an empty section.
func TestCommentTree(t *testing.T) {
	t.Parallel()

	t.Run("zero value has no section", func(t *testing.T) {
		t.Parallel()

		var tree CommentTree
		if tree.HasSection() {
			t.Error("expected zero value to have no section")
		}
		if tree.Count() != 0 {
			t.Errorf("expected 0 comments, got %d", tree.Count())
		}
	})

	t.Run("empty section is distinct from no section", func(t *testing.T) {
		t.Parallel()

		empty := Section(nil)
		if !empty.HasSection() {
			t.Error("expected empty section to have a section")
		}
		if empty.Comments() == nil {
			t.Error("expected non-nil comments for an empty section")
		}
		if NoSection().HasSection() {
			t.Error("expected NoSection to have no section")
		}
	})

	t.Run("counts comments and reactions", func(t *testing.T) {
		t.Parallel()

		tree := Section([]Comment{
			{Author: "a", Reactions: []Comment{{Author: "b"}, {Author: "c"}}},
			{Author: "d", Reactions: []Comment{}},
		})
		if tree.Count() != 2 {
			t.Errorf("expected 2 comments, got %d", tree.Count())
		}
		if tree.ReactionCount() != 2 {
			t.Errorf("expected 2 reactions, got %d", tree.ReactionCount())
		}
	})

	t.Run("marshals section flag", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(NoSection())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `{"has_section":false}` {
			t.Errorf("unexpected JSON: %s", data)
		}

		data, err = json.Marshal(Section(nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(data), `"has_section":true`) {
			t.Errorf("unexpected JSON: %s", data)
		}
	})
}

// TestCommentMarshalJSON tests the report encoding of comments.
func TestCommentMarshalJSON(t *testing.T) {
	t.Parallel()

	c := Comment{
		Author:    "ivan",
		Content:   "Slažem se.",
		Timestamp: time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := string(data)
	if !strings.Contains(got, `"timestamp":"2024-03-05T14:30:00"`) {
		t.Errorf("expected zone-less timestamp, got %s", got)
	}
	if !strings.Contains(got, `"reactions":[]`) {
		t.Errorf("expected empty reactions array, got %s", got)
	}
	if strings.Contains(got, `"id"`) {
		t.Errorf("expected empty id to be omitted, got %s", got)
	}
}

// TestCursor tests date cursor arithmetic.
func TestCursor(t *testing.T) {
	t.Parallel()

	t.Run("truncates to calendar date", func(t *testing.T) {
		t.Parallel()

		loc := time.FixedZone("CET", 3600)
		c := NewCursor(time.Date(2024, 3, 1, 0, 30, 0, 0, loc))
		if c.String() != "2024-03-01" {
			t.Errorf("expected 2024-03-01, got %s", c)
		}
	})

	t.Run("prev crosses month boundary", func(t *testing.T) {
		t.Parallel()

		c, err := ParseCursor("2024-03-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := c.Prev().String(); got != "2024-02-29" {
			t.Errorf("expected 2024-02-29, got %s", got)
		}
	})

	t.Run("ordering", func(t *testing.T) {
		t.Parallel()

		a, _ := ParseCursor("2024-01-01")
		b, _ := ParseCursor("2024-01-02")
		if !a.Before(b) || b.Before(a) {
			t.Error("unexpected ordering")
		}
		if !a.Equal(b.Prev()) {
			t.Error("expected a to equal b.Prev()")
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseCursor("01.01.2024"); err == nil {
			t.Error("expected error for malformed date")
		}
	})
}

// TestFingerprint tests listing fingerprints.
func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := []Article{{URL: "https://example.com/a"}, {URL: "https://example.com/b"}}
	b := []Article{{URL: "https://example.com/a"}, {URL: "https://example.com/b"}}
	reordered := []Article{{URL: "https://example.com/b"}, {URL: "https://example.com/a"}}

	if Fingerprint(a) != Fingerprint(b) {
		t.Error("expected identical lists to share a fingerprint")
	}
	if Fingerprint(a) == Fingerprint(reordered) {
		t.Error("expected reordered list to differ")
	}
	if len(Fingerprint(nil)) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(Fingerprint(nil)))
	}
}

// TestDateReport tests the aggregate counters.
func TestDateReport(t *testing.T) {
	t.Parallel()

	date, _ := ParseCursor("2024-05-10")
	r := NewDateReport("run", date)
	r.Outcomes = []ArticleOutcome{
		{Tree: Section([]Comment{{Reactions: []Comment{{}}}, {}})},
		{Tree: NoSection()},
		{Err: errors.New("boom")},
		{Tree: Section(nil)},
	}
	r.Elapsed = 2 * time.Second

	if r.CommentCount() != 2 {
		t.Errorf("expected 2 comments, got %d", r.CommentCount())
	}
	if r.ReactionCount() != 1 {
		t.Errorf("expected 1 reaction, got %d", r.ReactionCount())
	}
	if r.FailedCount() != 1 {
		t.Errorf("expected 1 failure, got %d", r.FailedCount())
	}
	if r.NoSectionCount() != 1 {
		t.Errorf("expected 1 article without section, got %d", r.NoSectionCount())
	}
	if r.ArticlesPerSecond() != 2 {
		t.Errorf("expected 2 articles/s, got %f", r.ArticlesPerSecond())
	}

	r.Elapsed = 0
	if r.ArticlesPerSecond() != 0 {
		t.Error("expected zero throughput without elapsed time")
	}
}
