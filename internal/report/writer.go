package report

import (
	"io"

	"github.com/newsdesk/commentscan/internal/model"
)

// Writer outputs the report of one processed date.
// Write is called once per date, in processing order.
type Writer interface {
	// Write outputs the report and returns the number of bytes written.
	Write(report *model.DateReport) (int, error)
}

// MultiWriter writes each report to several Writers.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to every Writer and returns the total bytes
// written. It stops on the first error.
func (m *MultiWriter) Write(report *model.DateReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// outcomeStatus names the result of one article for reports.
func outcomeStatus(o model.ArticleOutcome) string {
	switch {
	case o.Failed():
		return "error"
	case !o.Tree.HasSection():
		return "no_section"
	default:
		return "ok"
	}
}
