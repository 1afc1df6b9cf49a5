package crawler

import (
	"log/slog"

	"github.com/newsdesk/commentscan/internal/extract"
)

// options are shared by all crawlers.
type options struct {
	selectors extract.Selectors
	layout    string
	logger    *slog.Logger
}

// Option configures a crawler.
type Option func(*options)

// WithSelectors sets the page selectors.
func WithSelectors(sel extract.Selectors) Option {
	return func(o *options) {
		o.selectors = sel
	}
}

// WithTimestampLayout sets the layout of comment timestamps.
func WithTimestampLayout(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.layout = layout
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	o := options{
		selectors: extract.DefaultSelectors(),
		layout:    extract.DefaultTimestampLayout,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
