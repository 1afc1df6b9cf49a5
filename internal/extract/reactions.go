package extract

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/newsdesk/commentscan/internal/model"
)

// ParseReactions extracts one comment per reply box of a reaction snippet,
// in document order. Replies never carry reactions of their own.
func ParseReactions(body []byte, sel Selectors, layout string) ([]model.Comment, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}

	reactions := make([]model.Comment, 0)
	var replyErr error
	doc.Find(sel.Reply).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		author, content, ts, err := parseComment(s, sel, layout)
		if err != nil {
			replyErr = err
			return false
		}
		reactions = append(reactions, model.Comment{
			Author:    author,
			Content:   content,
			Timestamp: ts,
			Reactions: []model.Comment{},
		})
		return true
	})
	if replyErr != nil {
		return nil, replyErr
	}

	return reactions, nil
}
