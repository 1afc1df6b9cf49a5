package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/newsdesk/commentscan/internal/config"
	"github.com/newsdesk/commentscan/internal/crawler"
	"github.com/newsdesk/commentscan/internal/fetch"
	clog "github.com/newsdesk/commentscan/internal/log"
	"github.com/newsdesk/commentscan/internal/model"
	"github.com/newsdesk/commentscan/internal/pipeline"
	"github.com/newsdesk/commentscan/internal/report"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl article comments date by date, starting today",
		Long: `Crawl walks the site's article listings backwards from today.

For each date it:
- pages through the listing and checks the collected article count against
  the total the site reports
- crawls every article's comment pages and reply threads with a bounded
  worker pool (--workers)
- writes a report for the date before moving on to the previous one

Without --until or --days the walk never ends; stop it with Ctrl+C.
A failure to list a date ends the run. A failure on a single article is
reported and the run continues.

Examples:
  # Crawl today and the two previous days
  commentscan crawl --days 3

  # Crawl back to a fixed date with 8 workers
  commentscan crawl --until 2024-02-01 --workers 8

  # Write JSON lines including every comment
  commentscan crawl -n 1 --json --include-comments -o report.jsonl

  # Route traffic through a SOCKS5 proxy
  commentscan crawl -n 1 --proxy 127.0.0.1:1080

Configuration file (.commentscan) example:
  site:
    cookie: "session=abc123"
    headers:
      Accept-Language: hr-HR
    selectors:
      comment: div.comment`,
		Args: cobra.NoArgs,
		RunE: runCrawlCmd,
	}

	// Date window flags
	cmd.Flags().StringP("until", "u", "",
		"Oldest date to process, inclusive (YYYY-MM-DD)")
	cmd.Flags().IntP("days", "n", 0,
		"Number of dates to process including today (0 = unbounded)")

	// Crawl behavior flags
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Number of articles crawled concurrently")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each request (0 = no timeout)")
	cmd.Flags().String("user-agent", config.DefaultUserAgent,
		"User-Agent header sent with requests")
	cmd.Flags().String("proxy", "",
		"Route requests through a SOCKS5 proxy (host:port)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .commentscan in current, XDG config or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON lines report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("include-comments", false,
		"Include full comment trees in JSON reports")

	return cmd
}

func runCrawlCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	runID := uuid.NewString()
	logger := clog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.Site.HeaderNames()...).With("run", runID)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runCrawl(ctx, cfg, runID, logger, cmd.OutOrStdout(), time.Now())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the config
// file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	until, err := cmd.Flags().GetString("until")
	if err != nil {
		return nil, err
	}
	if until != "" {
		cursor, err := model.ParseCursor(until)
		if err != nil {
			return nil, fmt.Errorf("invalid --until %q: expected YYYY-MM-DD", until)
		}
		cfg.Until = cursor.Date
	}

	if cfg.Days, err = cmd.Flags().GetInt("days"); err != nil {
		return nil, err
	}
	if cfg.Workers, err = cmd.Flags().GetInt("workers"); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, err
	}
	if cfg.UserAgent, err = cmd.Flags().GetString("user-agent"); err != nil {
		return nil, err
	}
	if cfg.ProxyAddress, err = cmd.Flags().GetString("proxy"); err != nil {
		return nil, err
	}
	if cfg.ConfigFilePath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	if cfg.IncludeComments, err = cmd.Flags().GetBool("include-comments"); err != nil {
		return nil, err
	}

	// An explicitly named config file must exist; otherwise a missing file
	// just means defaults.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Site = cf.SiteConfig()
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	return cfg, nil
}

// runCrawl wires the fetcher, crawlers, dispatcher and report writer and
// drives the date walk starting at the calendar date of now.
func runCrawl(ctx context.Context, cfg *config.Config, runID string, logger *slog.Logger, stdout io.Writer, now time.Time) error {
	fetcher, err := newFetcher(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create fetcher: %w", err)
	}

	output, closeOutput, err := openOutput(cfg, stdout)
	if err != nil {
		return err
	}
	defer closeOutput()

	templates := cfg.Site.Templates()
	crawlerOpts := []crawler.Option{
		crawler.WithSelectors(cfg.Site.Selectors),
		crawler.WithTimestampLayout(cfg.Site.TimestampLayout),
		crawler.WithLogger(logger),
	}
	indexer := crawler.NewIndexCrawler(fetcher, templates, crawlerOpts...)
	comments := crawler.NewCommentCrawler(fetcher, templates, crawlerOpts...)

	dispatcher := pipeline.NewDispatcher(comments,
		pipeline.WithConcurrency(cfg.Workers),
		pipeline.WithDispatchLogger(logger),
	)
	driver := pipeline.NewDriver(indexer, dispatcher,
		pipeline.WithReportWriter(newReportWriter(cfg, output)),
		pipeline.WithRunID(runID),
		pipeline.WithDriverLogger(logger),
	)

	start := model.NewCursor(now)
	dates := newDateWindow(cfg, start)

	logger.Info("starting crawl",
		"site", cfg.Site.BaseURL,
		"start", start.String(),
		"until", describeBound(cfg),
		"workers", dispatcher.Concurrency(),
	)

	began := time.Now()
	processed, err := driver.Run(ctx, dates)
	logger.Info("crawl finished",
		"dates", processed,
		"elapsed", time.Since(began).Round(time.Millisecond),
	)

	if err != nil && errors.Is(err, context.Canceled) && ctx.Err() != nil {
		logger.Warn("crawl interrupted", "dates", processed)
		return nil
	}
	return err
}

// newFetcher builds the shared HTTP fetcher from the run and site settings.
func newFetcher(cfg *config.Config, logger *slog.Logger) (*fetch.HTTPFetcher, error) {
	opts := []fetch.Option{
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithLogger(logger),
	}
	if cfg.ProxyAddress != "" {
		opts = append(opts, fetch.WithProxy(cfg.ProxyAddress))
	}
	if cfg.Site.Cookie != "" {
		opts = append(opts, fetch.WithCookie(cfg.Site.Cookie))
	}
	if len(cfg.Site.Headers) > 0 {
		opts = append(opts, fetch.WithHeaders(cfg.Site.Headers))
	}
	return fetch.NewHTTPFetcher(opts...)
}

// newDateWindow returns the backward walk from start bounded by --until or
// --days.
func newDateWindow(cfg *config.Config, start model.Cursor) *pipeline.DateWindow {
	var opts []pipeline.WindowOption
	switch {
	case cfg.HasUntil():
		opts = append(opts, pipeline.WithLowerBound(model.NewCursor(cfg.Until)))
	case cfg.Days > 0:
		opts = append(opts, pipeline.WithDays(cfg.Days))
	}
	return pipeline.NewDateWindow(start, opts...)
}

func describeBound(cfg *config.Config) string {
	switch {
	case cfg.HasUntil():
		return model.NewCursor(cfg.Until).String()
	case cfg.Days > 0:
		return fmt.Sprintf("%d days", cfg.Days)
	default:
		return "unbounded"
	}
}

// openOutput returns the report destination and a function closing it.
func openOutput(cfg *config.Config, stdout io.Writer) (io.Writer, func(), error) {
	if cfg.ReportFile == "" {
		return stdout, func() {}, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports may contain reader names and comment text; keep them private.
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil //nolint:errcheck // Best effort close after writes
}

// newReportWriter selects the report format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithComments(cfg.IncludeComments))
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}
