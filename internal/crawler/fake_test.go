package crawler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/newsdesk/commentscan/internal/fetch"
)

var testTemplates = Templates{
	BaseURL:   "https://news.test",
	Listing:   "/dan/{date}?page={page}",
	Comments:  "{article}/komentari?page={page}",
	Reactions: "/reakcije/{id}",
}

type fakeResponse struct {
	body     string
	notFound bool
	err      error
}

// fakeFetcher serves canned pages and records every requested URL.
// Unknown URLs fail with a 500.
type fakeFetcher struct {
	mu    sync.Mutex
	pages map[string]fakeResponse
	calls []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{pages: make(map[string]fakeResponse)}
}

func (f *fakeFetcher) set(url string, resp fakeResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[url] = resp
}

func (f *fakeFetcher) Get(_ context.Context, url string) (*fetch.Page, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	resp, ok := f.pages[url]
	f.mu.Unlock()

	switch {
	case !ok:
		return nil, &fetch.TransportError{URL: url, StatusCode: http.StatusInternalServerError, Err: fetch.ErrUnexpectedStatus}
	case resp.err != nil:
		return nil, resp.err
	case resp.notFound:
		return &fetch.Page{URL: url, StatusCode: http.StatusNotFound, Status: fetch.StatusNotFound}, nil
	}
	return &fetch.Page{URL: url, StatusCode: http.StatusOK, Status: fetch.StatusFound, Body: []byte(resp.body)}, nil
}

func (f *fakeFetcher) callCount(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// listingPage renders a listing page. total < 0 omits the total element.
func listingPage(hrefs []string, last bool, total int) string {
	var b strings.Builder
	for _, h := range hrefs {
		fmt.Fprintf(&b, `<div class="card-group__item"><a class="card__link" href="%s">x</a></div>`, h)
	}
	next := "?page=next"
	if last {
		next = "#"
	}
	fmt.Fprintf(&b, `<div class="author__pagination"><a href="?page=1">1</a><a href="%s">&raquo;</a></div>`, next)
	if total >= 0 {
		fmt.Fprintf(&b, `<div class="article-stats__number">%d</div>`, total)
	}
	return b.String()
}

type testComment struct {
	id        string
	author    string
	reactions bool
}

// commentPage renders a comment page. An empty next omits the pagination
// control.
func commentPage(comments []testComment, next string) string {
	var b strings.Builder
	for _, c := range comments {
		link := ""
		if c.reactions {
			link = `<a class="comment__reactions" href="#">Odgovori</a>`
		}
		fmt.Fprintf(&b, `<div class="comment" data-comment-id="%s"><span class="comment__author">%s</span>`+
			`<time class="comment__time">01.02.2024. 10:00</time><div class="comment__body">tekst %s</div>%s</div>`,
			c.id, c.author, c.id, link)
	}
	if next != "" {
		fmt.Fprintf(&b, `<div class="comments__pagination"><a href="?page=1">1</a><a href="%s">&raquo;</a></div>`, next)
	}
	return b.String()
}

func replySnippet(authors ...string) string {
	var b strings.Builder
	for _, a := range authors {
		fmt.Fprintf(&b, `<div class="reply"><span class="comment__author">%s</span>`+
			`<time class="comment__time">01.02.2024. 11:00</time><div class="comment__body">odgovor</div></div>`, a)
	}
	return b.String()
}
