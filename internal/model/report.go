package model

import "time"

// ArticleOutcome pairs an article with the result of crawling its comments.
// Exactly one of Tree and Err is meaningful: when Err is non-nil the crawl
// failed and Tree is the zero value.
type ArticleOutcome struct {
	Article Article
	Tree    CommentTree
	Err     error
}

// Failed reports whether the article's comment crawl failed.
func (o ArticleOutcome) Failed() bool {
	return o.Err != nil
}

// DateReport collects everything produced while processing one date.
type DateReport struct {
	// RunID identifies the process run that produced the report.
	RunID string

	// Date is the listing date.
	Date Cursor

	// StartedAt is when processing of the date began.
	StartedAt time.Time

	// Articles are the discovered articles in listing order.
	Articles []Article

	// Fingerprint is the digest of the ordered article URLs.
	Fingerprint string

	// Outcomes holds one entry per article, positionally aligned with Articles.
	Outcomes []ArticleOutcome

	// Elapsed is the wall-clock duration of the comment batch.
	Elapsed time.Duration
}

// NewDateReport creates an empty report for the given date.
func NewDateReport(runID string, date Cursor) *DateReport {
	return &DateReport{
		RunID:     runID,
		Date:      date,
		StartedAt: time.Now(),
		Articles:  make([]Article, 0),
		Outcomes:  make([]ArticleOutcome, 0),
	}
}

// ArticlesPerSecond returns the comment batch throughput.
// It returns 0 when no time was measured.
func (r *DateReport) ArticlesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(len(r.Outcomes)) / r.Elapsed.Seconds()
}

// CommentCount returns the number of top-level comments across all articles.
func (r *DateReport) CommentCount() int {
	total := 0
	for _, o := range r.Outcomes {
		total += o.Tree.Count()
	}
	return total
}

// ReactionCount returns the number of reactions across all articles.
func (r *DateReport) ReactionCount() int {
	total := 0
	for _, o := range r.Outcomes {
		total += o.Tree.ReactionCount()
	}
	return total
}

// FailedCount returns the number of articles whose comment crawl failed.
func (r *DateReport) FailedCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}

// NoSectionCount returns the number of articles without a comments section.
func (r *DateReport) NoSectionCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Failed() && !o.Tree.HasSection() {
			n++
		}
	}
	return n
}
