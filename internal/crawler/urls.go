package crawler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/newsdesk/commentscan/internal/model"
)

// URL template placeholders.
const (
	placeholderDate    = "{date}"
	placeholderPage    = "{page}"
	placeholderArticle = "{article}"
	placeholderID      = "{id}"
)

// Templates builds the URLs of the pages the crawlers visit.
// Relative results are resolved against BaseURL.
type Templates struct {
	// BaseURL is the site root, e.g. "https://www.vecernji.hr".
	BaseURL string

	// Listing is the date listing template; it uses {date} and {page}.
	Listing string

	// Comments is the comment page template; it uses {article} and {page}.
	Comments string

	// Reactions is the reaction snippet template; it uses {id}.
	Reactions string
}

// DefaultTemplates returns the templates for vecernji.hr.
func DefaultTemplates() Templates {
	return Templates{
		BaseURL:   "https://www.vecernji.hr",
		Listing:   "/najnovije-vijesti/{date}?page={page}",
		Comments:  "{article}/komentari?page={page}",
		Reactions: "/komentari/reakcije/{id}",
	}
}

// ListingURL returns the URL of a date listing page.
func (t Templates) ListingURL(date model.Cursor, page int) (string, error) {
	return t.expand(t.Listing, placeholderDate, date.String(), placeholderPage, strconv.Itoa(page))
}

// CommentsURL returns the URL of an article's comment page.
func (t Templates) CommentsURL(articleURL string, page int) (string, error) {
	return t.expand(t.Comments,
		placeholderArticle, strings.TrimRight(articleURL, "/"),
		placeholderPage, strconv.Itoa(page))
}

// ReactionsURL returns the URL of the reaction snippet for a comment.
func (t Templates) ReactionsURL(commentID string) (string, error) {
	return t.expand(t.Reactions, placeholderID, url.PathEscape(commentID))
}

func (t Templates) expand(tmpl string, oldnew ...string) (string, error) {
	base, err := url.Parse(t.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", t.BaseURL, err)
	}
	ref, err := url.Parse(strings.NewReplacer(oldnew...).Replace(tmpl))
	if err != nil {
		return "", fmt.Errorf("invalid URL from template %q: %w", tmpl, err)
	}
	return base.ResolveReference(ref).String(), nil
}
