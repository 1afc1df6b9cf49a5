// Package crawler walks the paginated pages of a news site.
//
// # Components
//
//   - IndexCrawler: collects the articles listed for one date and checks
//     the count against the total the site reports on the last page.
//   - CommentCrawler: collects the comments of one article, resolving the
//     reactions of every comment that has them before moving on.
//   - ReactionFetcher: fetches the replies attached to one comment.
//
// Pagination ends only when the last anchor of a page's pagination control
// points at the placeholder href. No crawler assumes a page count.
//
// # Not found
//
// A 404 means different things depending on the page. For a comment page
// it means the article has no comments section and CommentCrawler returns
// model.NoSection. For a listing page or a reaction snippet the page must
// exist, so the 404 becomes a *fetch.TransportError wrapping
// fetch.ErrNotFound.
//
// # Usage
//
//	tmpl := crawler.DefaultTemplates()
//	index := crawler.NewIndexCrawler(fetcher, tmpl)
//	articles, err := index.Crawl(ctx, model.NewCursor(time.Now()))
//
// All crawlers are safe for concurrent use when the fetcher is.
package crawler
