package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/newsdesk/commentscan/internal/model"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "commentscan"

	// DefaultWorkers is the number of articles whose comments are crawled
	// at once.
	DefaultWorkers = 4

	// DefaultTimeout of zero means requests never time out.
	DefaultTimeout time.Duration = 0

	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

	// DefaultMaxBodySize caps how much of a response is read.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// Config holds every option of a crawl run.
type Config struct {
	// Workers is the size of the comment crawl worker pool.
	Workers int

	// Until is the oldest date to process, inclusive.
	// The zero value leaves the walk unbounded.
	Until time.Time

	// Days limits the walk to this many dates including today.
	// Zero leaves the walk unbounded. Mutually exclusive with Until.
	Days int

	// Timeout bounds each request. Zero disables it.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string

	// MaxBodySize is the maximum number of response bytes read.
	// Zero uses the default.
	MaxBodySize int64

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	ProxyAddress string

	// Verbose enables debug logging and comment listings in text reports.
	Verbose bool

	// JSONReport selects JSON lines output. Mutually exclusive with
	// MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output.
	MarkdownReport bool

	// ReportFile is the output path for reports. Empty means stdout.
	ReportFile string

	// IncludeComments adds full comment trees to JSON reports.
	IncludeComments bool

	// ConfigFilePath is an explicit config file path.
	ConfigFilePath string

	// Site is the resolved site configuration.
	Site SiteConfig
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Workers:     DefaultWorkers,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		Site:        DefaultSiteConfig(),
	}
}

// XDGConfigDir returns the XDG config directory for commentscan.
// On Linux: ~/.config/commentscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration against the current date and returns
// the first problem found.
func (c *Config) Validate() error {
	return c.ValidateAt(time.Now())
}

// ValidateAt is Validate with an explicit current time.
func (c *Config) ValidateAt(now time.Time) error {
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	if c.Days < 0 {
		return ErrInvalidDays
	}
	if c.HasUntil() && c.Days > 0 {
		return ErrConflictingBounds
	}
	if c.HasUntil() && model.NewCursor(now).Before(model.NewCursor(c.Until)) {
		return ErrUntilInFuture
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	return c.Site.Validate()
}

// HasUntil reports whether a lower-bound date is set.
func (c *Config) HasUntil() bool {
	return !c.Until.IsZero()
}
