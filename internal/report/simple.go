package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/newsdesk/commentscan/internal/model"
)

const (
	// lineWidth is the width of separator lines.
	lineWidth = 70

	// maxURLWidth truncates article URLs in the listing.
	maxURLWidth = 90

	// maxCommentWidth truncates comment text in verbose output.
	maxCommentWidth = 60
)

// SimpleWriter outputs human-readable text reports for the terminal.
type SimpleWriter struct {
	baseWriter

	// verbose lists every comment under its article.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose lists comments and reactions under each article.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the date header followed by one line per article in
// listing order.
func (w *SimpleWriter) Write(report *model.DateReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeArticles(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.DateReport) {
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "DATE %s\n", report.Date)
	sb.WriteString(strings.Repeat("=", lineWidth))
	sb.WriteString("\n")

	fmt.Fprintf(sb, "Articles:     %d\n", len(report.Articles))
	fmt.Fprintf(sb, "Comments:     %d (%d reactions)\n", report.CommentCount(), report.ReactionCount())
	if n := report.NoSectionCount(); n > 0 {
		fmt.Fprintf(sb, "No section:   %d\n", n)
	}
	if n := report.FailedCount(); n > 0 {
		fmt.Fprintf(sb, "Failed:       %d\n", n)
	}
	fmt.Fprintf(sb, "Elapsed:      %s (%.2f articles/s)\n", report.Elapsed.Round(time.Millisecond), report.ArticlesPerSecond())
	fmt.Fprintf(sb, "Fingerprint:  %s\n", report.Fingerprint)
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeArticles(sb *strings.Builder, report *model.DateReport) {
	width := countWidth(report.Outcomes)

	for _, o := range report.Outcomes {
		url := runewidth.Truncate(o.Article.URL, maxURLWidth, "...")

		switch {
		case o.Failed():
			fmt.Fprintf(sb, "  %s  %s\n", runewidth.FillLeft("ERR", width), url)
			fmt.Fprintf(sb, "  %s  error: %v\n", strings.Repeat(" ", width), o.Err)
		case !o.Tree.HasSection():
			fmt.Fprintf(sb, "  %s  %s (no comments section)\n", runewidth.FillLeft("-", width), url)
		default:
			fmt.Fprintf(sb, "  %s  %s\n", runewidth.FillLeft(strconv.Itoa(o.Tree.Count()), width), url)
			if w.verbose {
				w.writeComments(sb, o.Tree.Comments(), width)
			}
		}
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeComments(sb *strings.Builder, comments []model.Comment, width int) {
	indent := strings.Repeat(" ", width+4)
	for _, c := range comments {
		fmt.Fprintf(sb, "%s[%s] %s: %s\n", indent,
			c.Timestamp.Format(model.TimestampLayout),
			c.Author,
			runewidth.Truncate(c.Content, maxCommentWidth, "..."))
		for _, r := range c.Reactions {
			fmt.Fprintf(sb, "%s  > [%s] %s: %s\n", indent,
				r.Timestamp.Format(model.TimestampLayout),
				r.Author,
				runewidth.Truncate(r.Content, maxCommentWidth, "..."))
		}
	}
}

// countWidth returns the column width needed for the count column.
func countWidth(outcomes []model.ArticleOutcome) int {
	width := runewidth.StringWidth("ERR")
	for _, o := range outcomes {
		if n := runewidth.StringWidth(strconv.Itoa(o.Tree.Count())); n > width {
			width = n
		}
	}
	return width
}
