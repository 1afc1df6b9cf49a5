// Package fetch performs the HTTP GETs the crawlers depend on.
//
// A fetch has three outcomes, and callers must handle each of them:
//
//   - a Page with StatusFound for any 2xx response,
//   - a Page with StatusNotFound and a nil error for a 404,
//   - a nil Page and a *TransportError for every other status or a
//     network failure.
//
// The crawlers decide whether a 404 is meaningful (a missing comments
// section) or a failure (a missing listing page or reaction snippet).
// NotFoundError builds the error for the latter case.
//
// HTTPFetcher shares a single http.Client across all callers, so one
// instance can be used by every dispatcher worker concurrently.
package fetch
