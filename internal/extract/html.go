package extract

import (
	"bytes"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// DefaultTimestampLayout matches comment times such as "05.03.2024. 14:30".
const DefaultTimestampLayout = "02.01.2006. 15:04"

// parseDocument parses body into a goquery document.
func parseDocument(body []byte) (*goquery.Document, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &ExtractionError{Element: "document", Err: err}
	}
	return goquery.NewDocumentFromNode(root), nil
}

// cleanText collapses whitespace runs, trims and NFC-normalizes s.
func cleanText(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// isLastPage reports whether the last anchor of the pagination control
// points at the placeholder. ok is false when there are no anchors.
func isLastPage(control *goquery.Selection, placeholder string) (last, ok bool) {
	anchors := control.Find("a")
	if anchors.Length() == 0 {
		return false, false
	}
	href, _ := anchors.Last().Attr("href")
	return strings.TrimSpace(href) == placeholder, true
}

// parseComment reads the author, timestamp and content fields of a
// comment or reply element.
func parseComment(s *goquery.Selection, sel Selectors, layout string) (author, content string, ts time.Time, err error) {
	author = cleanText(s.Find(sel.Author).First().Text())
	content = cleanText(s.Find(sel.Content).First().Text())

	tsNode := s.Find(sel.Timestamp).First()
	if tsNode.Length() == 0 {
		return "", "", time.Time{}, missing("comment timestamp")
	}
	raw := cleanText(tsNode.Text())
	if dt, ok := tsNode.Attr("datetime"); ok && strings.TrimSpace(dt) != "" {
		raw = strings.TrimSpace(dt)
	}
	ts, err = parseTimestamp(raw, layout)
	if err != nil {
		return "", "", time.Time{}, &ExtractionError{Element: "comment timestamp", Err: err}
	}
	return author, content, ts, nil
}

// parseTimestamp parses a zone-less wall-clock time. ISO 8601 values from
// datetime attributes are accepted alongside layout; any zone offset is
// dropped.
func parseTimestamp(raw, layout string) (time.Time, error) {
	if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
		return t, nil
	}
	for _, l := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(l, raw); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	_, err := time.ParseInLocation(layout, raw, time.UTC)
	return time.Time{}, err
}
