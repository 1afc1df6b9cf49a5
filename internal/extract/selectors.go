package extract

// Selectors holds the CSS selectors for one site layout.
type Selectors struct {
	// ArticleCard matches one article entry on a date listing.
	ArticleCard string `yaml:"article_card,omitempty"`

	// ArticleLink matches the link inside an article card.
	ArticleLink string `yaml:"article_link,omitempty"`

	// ListingPagination matches the pagination control of a date listing.
	ListingPagination string `yaml:"listing_pagination,omitempty"`

	// ReportedTotal matches the article count shown on the last listing page.
	ReportedTotal string `yaml:"reported_total,omitempty"`

	// Comment matches one top-level comment on a comment page.
	Comment string `yaml:"comment,omitempty"`

	// CommentIDAttr is the attribute of the comment element holding its
	// identifier.
	CommentIDAttr string `yaml:"comment_id_attr,omitempty"`

	// Author, Timestamp and Content match fields inside a comment or reply.
	Author    string `yaml:"author,omitempty"`
	Timestamp string `yaml:"timestamp,omitempty"`
	Content   string `yaml:"content,omitempty"`

	// ReactionsLink matches the affordance present on comments with replies.
	ReactionsLink string `yaml:"reactions_link,omitempty"`

	// CommentPagination matches the pagination control of a comment page.
	CommentPagination string `yaml:"comment_pagination,omitempty"`

	// Reply matches one reply box in a reaction snippet.
	Reply string `yaml:"reply,omitempty"`

	// LastPageHref is the href the final pagination anchor carries on the
	// last page.
	LastPageHref string `yaml:"last_page_href,omitempty"`
}

// DefaultSelectors returns the selectors for the vecernji.hr layout.
func DefaultSelectors() Selectors {
	return Selectors{
		ArticleCard:       "div.card-group__item",
		ArticleLink:       "a.card__link",
		ListingPagination: "div.author__pagination",
		ReportedTotal:     "div.article-stats__number",
		Comment:           "div.comment",
		CommentIDAttr:     "data-comment-id",
		Author:            ".comment__author",
		Timestamp:         ".comment__time",
		Content:           ".comment__body",
		ReactionsLink:     "a.comment__reactions",
		CommentPagination: "div.comments__pagination",
		Reply:             "div.reply",
		LastPageHref:      "#",
	}
}

// Merge returns s with every empty field taken from defaults.
func (s Selectors) Merge(defaults Selectors) Selectors {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Selectors{
		ArticleCard:       pick(s.ArticleCard, defaults.ArticleCard),
		ArticleLink:       pick(s.ArticleLink, defaults.ArticleLink),
		ListingPagination: pick(s.ListingPagination, defaults.ListingPagination),
		ReportedTotal:     pick(s.ReportedTotal, defaults.ReportedTotal),
		Comment:           pick(s.Comment, defaults.Comment),
		CommentIDAttr:     pick(s.CommentIDAttr, defaults.CommentIDAttr),
		Author:            pick(s.Author, defaults.Author),
		Timestamp:         pick(s.Timestamp, defaults.Timestamp),
		Content:           pick(s.Content, defaults.Content),
		ReactionsLink:     pick(s.ReactionsLink, defaults.ReactionsLink),
		CommentPagination: pick(s.CommentPagination, defaults.CommentPagination),
		Reply:             pick(s.Reply, defaults.Reply),
		LastPageHref:      pick(s.LastPageHref, defaults.LastPageHref),
	}
}
