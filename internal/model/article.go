package model

import (
	"encoding/json"
	"time"
)

// DateLayout is the calendar date format used in listing URLs and reports.
const DateLayout = "2006-01-02"

// Article is one article link discovered on a date listing.
type Article struct {
	// URL is the absolute article URL as linked from the listing page.
	URL string

	// PublishedDate is the date whose listing contained the article.
	// It is not parsed from the article itself.
	PublishedDate time.Time
}

// MarshalJSON renders the published date without a time component.
func (a Article) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		URL           string `json:"url"`
		PublishedDate string `json:"published_date"`
	}{
		URL:           a.URL,
		PublishedDate: a.PublishedDate.Format(DateLayout),
	})
}

// ArticleURLs returns the URLs of articles in order.
func ArticleURLs(articles []Article) []string {
	urls := make([]string, len(articles))
	for i, a := range articles {
		urls[i] = a.URL
	}
	return urls
}
