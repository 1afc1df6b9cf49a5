package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/newsdesk/commentscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown, one section per date.
// The document title is written before the first date only.
type MarkdownWriter struct {
	baseWriter

	wroteTitle bool
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the date section in Markdown format.
func (w *MarkdownWriter) Write(report *model.DateReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	if !w.wroteTitle {
		md.H1("Comment Crawl Report")
		md.PlainText("")
		md.PlainTextf("Run `%s`", report.RunID)
		md.PlainText("")
		w.wroteTitle = true
	}

	w.writeSummary(md, report)
	w.writeChart(md, report)
	w.writeAlert(md, report)
	w.writeArticles(md, report)
	w.writeFailures(md, report)

	md.HorizontalRule()
	md.PlainText("")

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.DateReport) {
	md.H2(report.Date.String())
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Articles", strconv.Itoa(len(report.Articles))},
			{"Comments", strconv.Itoa(report.CommentCount())},
			{"Reactions", strconv.Itoa(report.ReactionCount())},
			{"Without comments section", strconv.Itoa(report.NoSectionCount())},
			{"Failed", strconv.Itoa(report.FailedCount())},
			{"Elapsed", report.Elapsed.String()},
			{"Articles/s", fmt.Sprintf("%.2f", report.ArticlesPerSecond())},
			{"Fingerprint", "`" + report.Fingerprint + "`"},
		},
	})
	md.PlainText("")
}

// writeChart writes a mermaid pie chart of article outcomes.
func (w *MarkdownWriter) writeChart(md *markdown.Markdown, report *model.DateReport) {
	if len(report.Outcomes) == 0 {
		return
	}

	var withComments, empty int
	for _, o := range report.Outcomes {
		if o.Failed() || !o.Tree.HasSection() {
			continue
		}
		if o.Tree.Count() > 0 {
			withComments++
		} else {
			empty++
		}
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Articles by outcome"),
		piechart.WithShowData(true),
	)
	if withComments > 0 {
		chart.LabelAndIntValue("With comments", uint64(withComments))
	}
	if empty > 0 {
		chart.LabelAndIntValue("No comments yet", uint64(empty))
	}
	if n := report.NoSectionCount(); n > 0 {
		chart.LabelAndIntValue("No comments section", uint64(n))
	}
	if n := report.FailedCount(); n > 0 {
		chart.LabelAndIntValue("Failed", uint64(n))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.DateReport) {
	switch failed := report.FailedCount(); {
	case failed > 0:
		md.Cautionf("%d of %d article(s) could not be crawled.", failed, len(report.Outcomes))
	case len(report.Articles) == 0:
		md.Note("No articles were listed for this date.")
	default:
		md.Tip("All articles were crawled.")
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeArticles(md *markdown.Markdown, report *model.DateReport) {
	if len(report.Outcomes) == 0 {
		return
	}

	rows := make([][]string, 0, len(report.Outcomes))
	for i, o := range report.Outcomes {
		comments := strconv.Itoa(o.Tree.Count())
		reactions := strconv.Itoa(o.Tree.ReactionCount())
		if o.Failed() || !o.Tree.HasSection() {
			comments, reactions = "-", "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			o.Article.URL,
			comments,
			reactions,
			outcomeStatus(o),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Article", "Comments", "Reactions", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeFailures(md *markdown.Markdown, report *model.DateReport) {
	for _, o := range report.Outcomes {
		if o.Failed() {
			md.Details(o.Article.URL, o.Err.Error())
		}
	}
	if report.FailedCount() > 0 {
		md.PlainText("")
	}
}
