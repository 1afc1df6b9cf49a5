package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/newsdesk/commentscan/internal/model"
	"github.com/newsdesk/commentscan/internal/report"
)

// Driver processes dates one after another: list the date's articles,
// crawl their comments, emit the report.
type Driver struct {
	indexer    ArticleIndexer
	dispatcher *Dispatcher
	writer     report.Writer
	runID      string
	logger     *slog.Logger
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithReportWriter sets where date reports are written.
func WithReportWriter(w report.Writer) DriverOption {
	return func(d *Driver) {
		d.writer = w
	}
}

// WithRunID sets the run identifier stamped into reports.
func WithRunID(id string) DriverOption {
	return func(d *Driver) {
		d.runID = id
	}
}

// WithDriverLogger sets the driver logger.
func WithDriverLogger(logger *slog.Logger) DriverOption {
	return func(d *Driver) {
		d.logger = logger
	}
}

// NewDriver creates a Driver. A random run identifier is generated unless
// WithRunID is given.
func NewDriver(indexer ArticleIndexer, dispatcher *Dispatcher, opts ...DriverOption) *Driver {
	d := &Driver{
		indexer:    indexer,
		dispatcher: dispatcher,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.runID == "" {
		d.runID = uuid.NewString()
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// RunID returns the run identifier.
func (d *Driver) RunID() string {
	return d.runID
}

// Run processes every date from dates and returns how many completed.
//
// Any error from listing a date ends the run: there is no retry and no
// skipping to the next date. Comment failures of individual articles are
// reported, not returned. Cancellation is honored before each date.
func (d *Driver) Run(ctx context.Context, dates DateSource) (int, error) {
	processed := 0
	for {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		date, ok := dates.Next()
		if !ok {
			return processed, nil
		}

		rep, err := d.processDate(ctx, date)
		if err != nil {
			return processed, fmt.Errorf("date %s: %w", date, err)
		}
		processed++

		d.logger.Info("date processed",
			"date", date.String(),
			"articles", len(rep.Articles),
			"comments", rep.CommentCount(),
			"reactions", rep.ReactionCount(),
			"failed", rep.FailedCount(),
			"elapsed", rep.Elapsed,
			"articles_per_second", fmt.Sprintf("%.2f", rep.ArticlesPerSecond()),
		)
	}
}

func (d *Driver) processDate(ctx context.Context, date model.Cursor) (*model.DateReport, error) {
	rep := model.NewDateReport(d.runID, date)

	p := New(WithLogger(d.logger))
	p.AddSteps(
		NewIndexStep(d.indexer, d.logger),
		NewDispatchStep(d.dispatcher),
	)
	if err := p.Execute(ctx, rep); err != nil {
		return nil, err
	}

	if d.writer != nil {
		if _, err := d.writer.Write(rep); err != nil {
			return nil, fmt.Errorf("failed to write report: %w", err)
		}
	}
	return rep, nil
}
