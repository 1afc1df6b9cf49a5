// Package main provides the entry point for the commentscan CLI.
//
// commentscan walks the date-indexed article listings of a news site
// backwards from today, crawls the reader comments of every listed article
// concurrently and reports, per date, how many articles and comments were
// collected.
//
// Usage:
//
//	commentscan crawl
//	commentscan crawl --until 2024-02-01 --workers 8
//	commentscan crawl --days 3 --json -o report.jsonl
//
// See --help for all available options.
package main

func main() {
	Execute()
}
