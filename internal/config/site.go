package config

import (
	"fmt"
	"maps"
	"net/url"
	"strings"

	"github.com/newsdesk/commentscan/internal/crawler"
	"github.com/newsdesk/commentscan/internal/extract"
)

// SiteConfig describes the layout of the crawled site.
type SiteConfig struct {
	// BaseURL is the site root, e.g. "https://www.vecernji.hr".
	BaseURL string `yaml:"base_url,omitempty"`

	// ListingPath is the date listing template using {date} and {page}.
	ListingPath string `yaml:"listing_path,omitempty"`

	// CommentsPath is the comment page template using {article} and {page}.
	CommentsPath string `yaml:"comments_path,omitempty"`

	// ReactionsPath is the reaction snippet template using {id}.
	ReactionsPath string `yaml:"reactions_path,omitempty"`

	// TimestampLayout is the Go time layout of comment timestamps.
	TimestampLayout string `yaml:"timestamp_layout,omitempty"`

	// Cookie is sent with every request.
	// Format: "name=value" or "name1=value1; name2=value2"
	Cookie string `yaml:"cookie,omitempty"`

	// Headers are added to every request.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Selectors locate elements on the site's pages.
	Selectors extract.Selectors `yaml:"selectors,omitempty"`
}

// File is the structure of the .commentscan configuration file.
type File struct {
	// Site overrides the default site configuration field by field.
	Site SiteConfig `yaml:"site,omitempty"`
}

// DefaultSiteConfig returns the configuration for vecernji.hr.
func DefaultSiteConfig() SiteConfig {
	tmpl := crawler.DefaultTemplates()
	return SiteConfig{
		BaseURL:         tmpl.BaseURL,
		ListingPath:     tmpl.Listing,
		CommentsPath:    tmpl.Comments,
		ReactionsPath:   tmpl.Reactions,
		TimestampLayout: extract.DefaultTimestampLayout,
		Selectors:       extract.DefaultSelectors(),
	}
}

// SiteConfig returns the file's site section merged over the defaults.
func (cf *File) SiteConfig() SiteConfig {
	return cf.Site.Merge(DefaultSiteConfig())
}

// Merge returns s with every empty field taken from defaults.
// Headers from both are combined; s wins on conflicts.
func (s SiteConfig) Merge(defaults SiteConfig) SiteConfig {
	result := defaults

	if s.BaseURL != "" {
		result.BaseURL = strings.TrimRight(s.BaseURL, "/")
	}
	if s.ListingPath != "" {
		result.ListingPath = s.ListingPath
	}
	if s.CommentsPath != "" {
		result.CommentsPath = s.CommentsPath
	}
	if s.ReactionsPath != "" {
		result.ReactionsPath = s.ReactionsPath
	}
	if s.TimestampLayout != "" {
		result.TimestampLayout = s.TimestampLayout
	}
	if s.Cookie != "" {
		result.Cookie = s.Cookie
	}
	if len(defaults.Headers) > 0 || len(s.Headers) > 0 {
		result.Headers = make(map[string]string, len(defaults.Headers)+len(s.Headers))
		maps.Copy(result.Headers, defaults.Headers)
		maps.Copy(result.Headers, s.Headers)
	}
	result.Selectors = s.Selectors.Merge(defaults.Selectors)

	return result
}

// Templates returns the crawler URL templates for the site.
func (s SiteConfig) Templates() crawler.Templates {
	return crawler.Templates{
		BaseURL:   s.BaseURL,
		Listing:   s.ListingPath,
		Comments:  s.CommentsPath,
		Reactions: s.ReactionsPath,
	}
}

// HeaderNames returns the names of the configured custom headers.
func (s SiteConfig) HeaderNames() []string {
	names := make([]string, 0, len(s.Headers))
	for name := range s.Headers {
		names = append(names, name)
	}
	return names
}

// Validate checks the base URL and that each template carries its
// placeholders.
func (s SiteConfig) Validate() error {
	u, err := url.Parse(s.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBaseURL
	}

	required := []struct {
		name     string
		template string
		needs    []string
	}{
		{"listing_path", s.ListingPath, []string{"{date}", "{page}"}},
		{"comments_path", s.CommentsPath, []string{"{article}", "{page}"}},
		{"reactions_path", s.ReactionsPath, []string{"{id}"}},
	}
	for _, r := range required {
		for _, p := range r.needs {
			if !strings.Contains(r.template, p) {
				return fmt.Errorf("%w: %s %q lacks %s", ErrInvalidTemplate, r.name, r.template, p)
			}
		}
	}
	return nil
}
