// Package extract turns fetched HTML pages into typed crawl records.
//
// Each parser takes one page body and returns what the crawlers need from
// it: article links and pagination state for a date listing, comment
// records and pagination state for a comment page, and reply comments for
// a reaction snippet. Selector strings live in Selectors so a site layout
// change is a configuration edit.
//
// Listing pages must carry a pagination control; its absence is an
// ExtractionError. Comment pages treat a missing control as the last page.
package extract
