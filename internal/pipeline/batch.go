package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/newsdesk/commentscan/internal/model"
)

// DefaultConcurrency is the number of articles crawled at once.
const DefaultConcurrency = 4

// TreeCrawler crawls the comment tree of one article.
// *crawler.CommentCrawler implements it.
type TreeCrawler interface {
	Crawl(ctx context.Context, articleURL string) (model.CommentTree, error)
}

// TreeCrawlerFunc adapts a function to the TreeCrawler interface.
type TreeCrawlerFunc func(ctx context.Context, articleURL string) (model.CommentTree, error)

// Crawl calls f(ctx, articleURL).
func (f TreeCrawlerFunc) Crawl(ctx context.Context, articleURL string) (model.CommentTree, error) {
	return f(ctx, articleURL)
}

// Batch is the result of dispatching one article list.
type Batch struct {
	// Outcomes holds one entry per input article, at the article's index.
	Outcomes []model.ArticleOutcome

	// Elapsed is the wall-clock time of the whole batch.
	Elapsed time.Duration
}

// ArticlesPerSecond returns the batch throughput, or 0 when nothing was
// measured.
func (b *Batch) ArticlesPerSecond() float64 {
	if b.Elapsed <= 0 {
		return 0
	}
	return float64(len(b.Outcomes)) / b.Elapsed.Seconds()
}

// Dispatcher crawls the comment trees of many articles over a bounded pool
// of goroutines.
type Dispatcher struct {
	crawler     TreeCrawler
	concurrency int
	logger      *slog.Logger
	hook        func(index int, outcome model.ArticleOutcome)
}

// DispatchOption configures a Dispatcher.
type DispatchOption func(*Dispatcher)

// WithConcurrency sets the number of articles crawled at once.
// Non-positive values keep the default.
func WithConcurrency(n int) DispatchOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

// WithDispatchLogger sets the dispatcher logger.
func WithDispatchLogger(logger *slog.Logger) DispatchOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithOutcomeHook registers a function called as each article completes.
// The hook runs on the worker goroutine and may be called concurrently.
func WithOutcomeHook(hook func(index int, outcome model.ArticleOutcome)) DispatchOption {
	return func(d *Dispatcher) {
		d.hook = hook
	}
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(crawler TreeCrawler, opts ...DispatchOption) *Dispatcher {
	d := &Dispatcher{
		crawler:     crawler,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Concurrency returns the worker pool size.
func (d *Dispatcher) Concurrency() int {
	return d.concurrency
}

// Dispatch crawls every article and returns one outcome per article, in
// input order regardless of completion order. A failed article is recorded
// in its outcome and does not stop the others. Articles not started before
// ctx is done get ctx's error as their outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, articles []model.Article) *Batch {
	d.logger.Debug("dispatching articles",
		"articles", len(articles),
		"concurrency", d.concurrency,
	)

	start := time.Now()
	outcomes := make([]model.ArticleOutcome, len(articles))

	var g errgroup.Group
	g.SetLimit(d.concurrency)

	for i, article := range articles {
		g.Go(func() error {
			// Each goroutine writes only outcomes[i].
			outcomes[i] = d.crawlOne(ctx, article)
			if d.hook != nil {
				d.hook(i, outcomes[i])
			}
			// Failures stay in the outcome so the rest of the batch continues.
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // workers never return an error

	return &Batch{
		Outcomes: outcomes,
		Elapsed:  time.Since(start),
	}
}

func (d *Dispatcher) crawlOne(ctx context.Context, article model.Article) model.ArticleOutcome {
	if err := ctx.Err(); err != nil {
		return model.ArticleOutcome{Article: article, Err: err}
	}

	tree, err := d.crawler.Crawl(ctx, article.URL)
	if err != nil {
		d.logger.Warn("comment crawl failed",
			"article", article.URL,
			"error", err,
		)
		return model.ArticleOutcome{Article: article, Err: err}
	}

	d.logger.Debug("comment crawl completed",
		"article", article.URL,
		"has_section", tree.HasSection(),
		"comments", tree.Count(),
		"reactions", tree.ReactionCount(),
	)
	return model.ArticleOutcome{Article: article, Tree: tree}
}
