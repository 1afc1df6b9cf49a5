package crawler

import (
	"context"
	"fmt"

	"github.com/newsdesk/commentscan/internal/extract"
	"github.com/newsdesk/commentscan/internal/fetch"
	"github.com/newsdesk/commentscan/internal/model"
)

// IndexCrawler collects the articles listed for a date.
type IndexCrawler struct {
	fetcher   fetch.Fetcher
	templates Templates
	opts      options
}

// NewIndexCrawler creates an IndexCrawler.
func NewIndexCrawler(fetcher fetch.Fetcher, templates Templates, opts ...Option) *IndexCrawler {
	return &IndexCrawler{
		fetcher:   fetcher,
		templates: templates,
		opts:      newOptions(opts),
	}
}

// Crawl walks the listing pages of date from page 1 until the last page and
// returns the articles in page-then-item order.
//
// It fails with a *ConsistencyError when the collected count differs from
// the total reported on the last page, with a *fetch.TransportError when a
// page cannot be fetched (a 404 included), and with an
// *extract.ExtractionError when a page lacks its pagination control.
func (c *IndexCrawler) Crawl(ctx context.Context, date model.Cursor) ([]model.Article, error) {
	articles := make([]model.Article, 0)

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		listing, err := c.fetchListing(ctx, date, page)
		if err != nil {
			return nil, err
		}

		for _, u := range listing.ArticleURLs {
			articles = append(articles, model.Article{URL: u, PublishedDate: date.Date})
		}

		c.opts.logger.Debug("listing page crawled",
			"date", date.String(),
			"page", page,
			"articles", len(listing.ArticleURLs),
			"last", listing.LastPage)

		if !listing.LastPage {
			continue
		}

		if listing.ReportedTotal != len(articles) {
			return nil, &ConsistencyError{
				Date:      date,
				Reported:  listing.ReportedTotal,
				Collected: len(articles),
			}
		}
		return articles, nil
	}
}

func (c *IndexCrawler) fetchListing(ctx context.Context, date model.Cursor, page int) (*extract.ListingPage, error) {
	u, err := c.templates.ListingURL(date, page)
	if err != nil {
		return nil, err
	}

	p, err := c.fetcher.Get(ctx, u)
	if err != nil {
		return nil, err
	}
	if !p.Found() {
		return nil, fetch.NotFoundError(u)
	}

	listing, err := extract.ParseListing(p.Body, c.templates.BaseURL, c.opts.selectors)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", u, err)
	}
	return listing, nil
}
