// Package report renders per-date crawl results.
//
// Writers:
//   - SimpleWriter: aligned text for terminal display
//   - JSONWriter: one JSON object per date (JSON lines)
//   - MarkdownWriter: headings, tables and a pie chart per date
//   - MultiWriter: fans a report out to several writers
//
// All writers implement Writer and consume a *model.DateReport.
package report
