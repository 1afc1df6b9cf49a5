package pipeline

import (
	"context"
	"log/slog"

	"github.com/newsdesk/commentscan/internal/model"
)

// ArticleIndexer lists the articles of a date.
// *crawler.IndexCrawler implements it.
type ArticleIndexer interface {
	Crawl(ctx context.Context, date model.Cursor) ([]model.Article, error)
}

// IndexStep discovers the articles of the report's date.
type IndexStep struct {
	indexer ArticleIndexer
	logger  *slog.Logger
}

// NewIndexStep creates an IndexStep.
func NewIndexStep(indexer ArticleIndexer, logger *slog.Logger) *IndexStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &IndexStep{indexer: indexer, logger: logger}
}

// Name returns the step name.
func (s *IndexStep) Name() string {
	return "index"
}

// Do records the articles and their fingerprint in report. Any crawl error
// is returned unchanged.
func (s *IndexStep) Do(ctx context.Context, report *model.DateReport) error {
	articles, err := s.indexer.Crawl(ctx, report.Date)
	if err != nil {
		return err
	}

	report.Articles = articles
	report.Fingerprint = model.Fingerprint(articles)

	s.logger.Debug("articles discovered",
		"date", report.Date.String(),
		"articles", len(articles),
		"fingerprint", report.Fingerprint,
	)
	return nil
}

// DispatchStep crawls the comments of every article in the report.
type DispatchStep struct {
	dispatcher *Dispatcher
}

// NewDispatchStep creates a DispatchStep.
func NewDispatchStep(dispatcher *Dispatcher) *DispatchStep {
	return &DispatchStep{dispatcher: dispatcher}
}

// Name returns the step name.
func (s *DispatchStep) Name() string {
	return "dispatch"
}

// Do records one outcome per article and the batch duration. Article
// failures are kept in the outcomes; only cancellation fails the step.
func (s *DispatchStep) Do(ctx context.Context, report *model.DateReport) error {
	batch := s.dispatcher.Dispatch(ctx, report.Articles)
	report.Outcomes = batch.Outcomes
	report.Elapsed = batch.Elapsed

	return ctx.Err()
}
