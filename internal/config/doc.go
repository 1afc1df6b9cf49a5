// Package config holds the settings of a commentscan run.
//
// Config is built from CLI flags on top of NewConfig defaults and checked
// once with Validate before any request is made. Site-specific settings
// (base URL, URL templates, selectors, cookie, headers) live in SiteConfig
// and can be overridden by the site section of a YAML config file found
// by FindConfigFile.
package config
