package extract

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ListingPage is what one date listing page yields.
type ListingPage struct {
	// ArticleURLs are absolute article URLs in document order.
	ArticleURLs []string

	// LastPage reports whether pagination ends on this page.
	LastPage bool

	// ReportedTotal is the site's article count for the date.
	// It is only read on the last page; HasTotal reports whether it was.
	ReportedTotal int
	HasTotal      bool
}

// ParseListing extracts article links, pagination state and, on the last
// page, the reported total from a date listing page. Relative links are
// resolved against baseURL.
func ParseListing(body []byte, baseURL string, sel Selectors) (*ListingPage, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, &ExtractionError{Element: "base URL", Err: err}
	}

	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}

	page := &ListingPage{ArticleURLs: make([]string, 0)}

	var linkErr error
	doc.Find(sel.ArticleCard).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		href, ok := card.Find(sel.ArticleLink).First().Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			linkErr = missing("article link")
			return false
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			linkErr = &ExtractionError{Element: "article link", Err: err}
			return false
		}
		page.ArticleURLs = append(page.ArticleURLs, base.ResolveReference(ref).String())
		return true
	})
	if linkErr != nil {
		return nil, linkErr
	}

	control := doc.Find(sel.ListingPagination).First()
	if control.Length() == 0 {
		return nil, missing("listing pagination")
	}
	last, ok := isLastPage(control, sel.LastPageHref)
	if !ok {
		return nil, &ExtractionError{
			Element: "listing pagination",
			Err:     fmt.Errorf("no anchors: %w", ErrElementMissing),
		}
	}
	page.LastPage = last

	if !last {
		return page, nil
	}

	total, err := parseTotal(doc.Find(sel.ReportedTotal).First())
	if err != nil {
		return nil, err
	}
	page.ReportedTotal = total
	page.HasTotal = true

	return page, nil
}

// parseTotal reads an integer count, ignoring thousands separators.
func parseTotal(s *goquery.Selection) (int, error) {
	if s.Length() == 0 {
		return 0, missing("reported total")
	}
	raw := strings.NewReplacer(".", "", ",", "", " ", "").Replace(cleanText(s.Text()))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ExtractionError{Element: "reported total", Err: err}
	}
	if n < 0 {
		return 0, &ExtractionError{Element: "reported total", Err: fmt.Errorf("negative count %d", n)}
	}
	return n, nil
}
