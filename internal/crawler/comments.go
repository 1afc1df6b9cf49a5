package crawler

import (
	"context"
	"fmt"

	"github.com/newsdesk/commentscan/internal/extract"
	"github.com/newsdesk/commentscan/internal/fetch"
	"github.com/newsdesk/commentscan/internal/model"
)

// CommentCrawler collects the comment tree of an article.
type CommentCrawler struct {
	fetcher   fetch.Fetcher
	templates Templates
	reactions *ReactionFetcher
	opts      options
}

// NewCommentCrawler creates a CommentCrawler. Reactions are fetched with a
// ReactionFetcher sharing the same fetcher and options.
func NewCommentCrawler(fetcher fetch.Fetcher, templates Templates, opts ...Option) *CommentCrawler {
	return &CommentCrawler{
		fetcher:   fetcher,
		templates: templates,
		reactions: NewReactionFetcher(fetcher, templates, opts...),
		opts:      newOptions(opts),
	}
}

// Crawl walks the comment pages of articleURL from page 1 until the last
// page and returns every top-level comment in page-then-document order,
// each with its reactions attached.
//
// A 404 on any comment page returns model.NoSection immediately. Any other
// fetch failure, a failed reaction lookup included, is returned as an
// error.
func (c *CommentCrawler) Crawl(ctx context.Context, articleURL string) (model.CommentTree, error) {
	comments := make([]model.Comment, 0)

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return model.CommentTree{}, err
		}

		u, err := c.templates.CommentsURL(articleURL, page)
		if err != nil {
			return model.CommentTree{}, err
		}

		p, err := c.fetcher.Get(ctx, u)
		if err != nil {
			return model.CommentTree{}, err
		}
		if !p.Found() {
			c.opts.logger.Debug("no comments section", "article", articleURL, "page", page)
			return model.NoSection(), nil
		}

		parsed, err := extract.ParseCommentPage(p.Body, c.opts.selectors, c.opts.layout)
		if err != nil {
			return model.CommentTree{}, fmt.Errorf("comments %s: %w", u, err)
		}

		for _, rec := range parsed.Records {
			comment, err := c.resolve(ctx, rec)
			if err != nil {
				return model.CommentTree{}, err
			}
			comments = append(comments, comment)
		}

		if parsed.LastPage {
			return model.Section(comments), nil
		}
	}
}

// resolve turns a record into a comment, fetching its reactions when the
// record is flagged as having them.
func (c *CommentCrawler) resolve(ctx context.Context, rec extract.CommentRecord) (model.Comment, error) {
	comment := model.Comment{
		ID:        rec.ID,
		Author:    rec.Author,
		Content:   rec.Content,
		Timestamp: rec.Timestamp,
		Reactions: []model.Comment{},
	}
	if !rec.HasReactions {
		return comment, nil
	}

	reactions, err := c.reactions.Fetch(ctx, rec.ID)
	if err != nil {
		return model.Comment{}, fmt.Errorf("reactions of comment %s: %w", rec.ID, err)
	}
	comment.Reactions = reactions
	return comment, nil
}
