package report

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/newsdesk/commentscan/internal/model"
)

// JSONWriter outputs one JSON document per date. Without indentation the
// output is JSON lines.
type JSONWriter struct {
	baseWriter

	// comments includes full comment trees in the output.
	comments bool

	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithComments includes every article's comments and reactions.
func WithComments(include bool) JSONWriterOption {
	return func(w *JSONWriter) {
		w.comments = include
	}
}

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type jsonArticle struct {
	URL           string          `json:"url"`
	Status        string          `json:"status"`
	CommentCount  int             `json:"comment_count"`
	ReactionCount int             `json:"reaction_count"`
	Error         string          `json:"error,omitempty"`
	Comments      []model.Comment `json:"comments,omitempty"`
}

type jsonReport struct {
	RunID             string        `json:"run_id"`
	Date              string        `json:"date"`
	StartedAt         time.Time     `json:"started_at"`
	Fingerprint       string        `json:"fingerprint"`
	ArticleCount      int           `json:"article_count"`
	CommentCount      int           `json:"comment_count"`
	ReactionCount     int           `json:"reaction_count"`
	NoSectionCount    int           `json:"no_section_count"`
	FailedCount       int           `json:"failed_count"`
	ElapsedSeconds    float64       `json:"elapsed_seconds"`
	ArticlesPerSecond float64       `json:"articles_per_second"`
	Articles          []jsonArticle `json:"articles"`
}

// Write outputs the report as a single JSON document followed by a newline.
func (w *JSONWriter) Write(report *model.DateReport) (int, error) {
	doc := jsonReport{
		RunID:             report.RunID,
		Date:              report.Date.String(),
		StartedAt:         report.StartedAt,
		Fingerprint:       report.Fingerprint,
		ArticleCount:      len(report.Articles),
		CommentCount:      report.CommentCount(),
		ReactionCount:     report.ReactionCount(),
		NoSectionCount:    report.NoSectionCount(),
		FailedCount:       report.FailedCount(),
		ElapsedSeconds:    report.Elapsed.Seconds(),
		ArticlesPerSecond: report.ArticlesPerSecond(),
		Articles:          make([]jsonArticle, 0, len(report.Outcomes)),
	}

	for _, o := range report.Outcomes {
		a := jsonArticle{
			URL:           o.Article.URL,
			Status:        outcomeStatus(o),
			CommentCount:  o.Tree.Count(),
			ReactionCount: o.Tree.ReactionCount(),
		}
		if o.Err != nil {
			a.Error = o.Err.Error()
		}
		if w.comments {
			a.Comments = o.Tree.Comments()
		}
		doc.Articles = append(doc.Articles, a)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indent {
		enc.SetIndent(w.indentPrefix, w.indentString)
	}
	if err := enc.Encode(doc); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
