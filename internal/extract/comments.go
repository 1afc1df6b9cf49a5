package extract

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// CommentRecord is one top-level comment as it appears on a comment page,
// before its reactions are resolved.
type CommentRecord struct {
	ID           string
	Author       string
	Content      string
	Timestamp    time.Time
	HasReactions bool
}

// CommentPage is what one comment page yields.
type CommentPage struct {
	// Records are the comments in document order.
	Records []CommentRecord

	// LastPage reports whether pagination ends on this page.
	LastPage bool
}

// ParseCommentPage extracts comment records and pagination state from a
// comment page. A page without a pagination control, or with a control
// that has no anchors, is the last page.
func ParseCommentPage(body []byte, sel Selectors, layout string) (*CommentPage, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}

	page := &CommentPage{Records: make([]CommentRecord, 0)}

	var recordErr error
	doc.Find(sel.Comment).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		record, err := parseRecord(s, sel, layout)
		if err != nil {
			recordErr = err
			return false
		}
		page.Records = append(page.Records, record)
		return true
	})
	if recordErr != nil {
		return nil, recordErr
	}

	control := doc.Find(sel.CommentPagination).First()
	if control.Length() == 0 {
		page.LastPage = true
		return page, nil
	}
	last, ok := isLastPage(control, sel.LastPageHref)
	page.LastPage = last || !ok

	return page, nil
}

func parseRecord(s *goquery.Selection, sel Selectors, layout string) (CommentRecord, error) {
	author, content, ts, err := parseComment(s, sel, layout)
	if err != nil {
		return CommentRecord{}, err
	}

	record := CommentRecord{
		Author:    author,
		Content:   content,
		Timestamp: ts,
	}
	if id, ok := s.Attr(sel.CommentIDAttr); ok {
		record.ID = strings.TrimSpace(id)
	}

	link := s.Find(sel.ReactionsLink).First()
	if link.Length() == 0 {
		return record, nil
	}
	record.HasReactions = true
	if record.ID == "" {
		if id, ok := link.Attr(sel.CommentIDAttr); ok {
			record.ID = strings.TrimSpace(id)
		}
	}
	if record.ID == "" {
		return CommentRecord{}, missing("comment identifier")
	}

	return record, nil
}
