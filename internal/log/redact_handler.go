package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// MaskValue replaces redacted values.
const MaskValue = "***REDACTED***"

// sensitiveKeys are attribute keys whose values are always masked.
var sensitiveKeys = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
	"x-auth-token":        true,
	"session":             true,
	"session_id":          true,
	"sessionid":           true,
	"sid":                 true,
	"auth":                true,
}

// sensitiveKeywords mask any key that contains them.
var sensitiveKeywords = []string{
	"password", "passwd", "secret", "token", "authorization", "credential", "cookie",
}

// sensitivePatterns mask string values regardless of key.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^bearer\s+.+`),
	regexp.MustCompile(`(?i)^basic\s+[A-Za-z0-9+/=]+$`),
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),
}

// urlUserinfo matches "user:password@" inside a URL.
var urlUserinfo = regexp.MustCompile(`(://)[^/@\s:]+:[^/@\s]+@`)

// RedactHandler wraps an slog.Handler and masks sensitive attribute values.
type RedactHandler struct {
	handler slog.Handler
	extra   map[string]bool
}

// NewRedactHandler wraps handler. Attributes keyed by any of extraKeys
// (compared case-insensitively) are masked as well. A nil handler uses
// slog.Default().Handler().
func NewRedactHandler(handler slog.Handler, extraKeys ...string) *RedactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	extra := make(map[string]bool, len(extraKeys))
	for _, k := range extraKeys {
		extra[strings.ToLower(k)] = true
	}
	return &RedactHandler{handler: handler, extra: extra}
}

// Enabled reports whether the underlying handler handles level.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it on.
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(h.redact(a))
		return true
	})
	return h.handler.Handle(ctx, redacted)
}

// WithAttrs returns a handler with the masked attributes attached.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.redact(a)
	}
	return &RedactHandler{handler: h.handler.WithAttrs(redacted), extra: h.extra}
}

// WithGroup returns a handler that nests attributes under name.
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{handler: h.handler.WithGroup(name), extra: h.extra}
}

func (h *RedactHandler) redact(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			redacted[i] = h.redact(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	if h.isSensitiveKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() == slog.KindString {
		v := a.Value.String()
		if isSensitiveValue(v) {
			return slog.String(a.Key, MaskValue)
		}
		if urlUserinfo.MatchString(v) {
			return slog.String(a.Key, urlUserinfo.ReplaceAllString(v, "${1}"+MaskValue+"@"))
		}
	}

	return a
}

func (h *RedactHandler) isSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if sensitiveKeys[k] || h.extra[k] {
		return true
	}
	for _, kw := range sensitiveKeywords {
		if strings.Contains(k, kw) {
			return true
		}
	}
	return false
}

func isSensitiveValue(v string) bool {
	for _, p := range sensitivePatterns {
		if p.MatchString(v) {
			return true
		}
	}
	return false
}

func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewLogger returns a text logger writing to w through a RedactHandler.
// Verbose selects Debug, otherwise Info.
func NewLogger(w io.Writer, verbose bool, extraKeys ...string) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level(verbose)})
	return slog.New(NewRedactHandler(h, extraKeys...))
}

// NewJSONLogger is NewLogger with JSON output.
func NewJSONLogger(w io.Writer, verbose bool, extraKeys ...string) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level(verbose)})
	return slog.New(NewRedactHandler(h, extraKeys...))
}
