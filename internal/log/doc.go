// Package log builds the slog loggers used across commentscan.
//
// Loggers write text or JSON through a RedactHandler, which masks values
// that could carry credentials before they reach the output:
//   - attributes whose key names a credential (cookie, authorization,
//     token, password, session and similar),
//   - attributes whose key is one of the extra keys given at
//     construction, typically the names of custom request headers,
//   - values that look like bearer or basic credentials,
//   - user information embedded in URLs such as proxy addresses.
//
// Redaction applies inside groups and to attributes attached with With.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose, "X-Api-Key")
//	logger.Info("fetching", "url", u, "cookie", cookie) // cookie is masked
//
// Info is the default level so per-date throughput is always visible;
// verbose enables Debug.
package log
