// Package model defines the data produced by a commentscan run.
//
// This package contains the following main types:
//   - Article: A listing entry discovered for a given date
//   - Comment: A top-level comment or one of its reactions
//   - CommentTree: The per-article crawl result, distinguishing a missing
//     comments section from an empty one
//   - Cursor: A day-granularity position in the date walk
//   - DateReport: Everything produced while processing one date
//
// Models are plain values shared by the crawler, pipeline and report
// packages. They are serializable to JSON for report output.
package model
