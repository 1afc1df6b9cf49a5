package crawler

import (
	"context"
	"fmt"

	"github.com/newsdesk/commentscan/internal/extract"
	"github.com/newsdesk/commentscan/internal/fetch"
	"github.com/newsdesk/commentscan/internal/model"
)

// ReactionFetcher fetches the replies attached to a comment.
type ReactionFetcher struct {
	fetcher   fetch.Fetcher
	templates Templates
	opts      options
}

// NewReactionFetcher creates a ReactionFetcher.
func NewReactionFetcher(fetcher fetch.Fetcher, templates Templates, opts ...Option) *ReactionFetcher {
	return &ReactionFetcher{
		fetcher:   fetcher,
		templates: templates,
		opts:      newOptions(opts),
	}
}

// Fetch returns the replies of the comment with the given identifier in
// document order. Replies are not followed further.
//
// The snippet must exist: a 404 is returned as a *fetch.TransportError
// wrapping fetch.ErrNotFound.
func (r *ReactionFetcher) Fetch(ctx context.Context, commentID string) ([]model.Comment, error) {
	u, err := r.templates.ReactionsURL(commentID)
	if err != nil {
		return nil, err
	}

	p, err := r.fetcher.Get(ctx, u)
	if err != nil {
		return nil, err
	}
	if !p.Found() {
		return nil, fetch.NotFoundError(u)
	}

	reactions, err := extract.ParseReactions(p.Body, r.opts.selectors, r.opts.layout)
	if err != nil {
		return nil, fmt.Errorf("reactions %s: %w", u, err)
	}
	return reactions, nil
}
