// Package pipeline drives a crawl run over a window of dates.
//
// Each date is processed by a Pipeline of two steps: IndexStep lists the
// date's articles and DispatchStep crawls their comment trees through a
// bounded Dispatcher. The Driver pulls dates from a DateSource, most often
// a DateWindow walking backward from today, and hands each finished
// model.DateReport to a report.Writer before moving to the previous date.
//
// Any error from the index step ends the run. Failures of individual
// articles are recorded in the report and never stop a batch. Cancellation
// of the context is checked before every date and every step.
package pipeline
