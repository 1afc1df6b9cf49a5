package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/newsdesk/commentscan/internal/model"
)

func articles(urls ...string) []model.Article {
	out := make([]model.Article, len(urls))
	for i, u := range urls {
		out[i] = model.Article{URL: u}
	}
	return out
}

// TestNewDispatcher tests the Dispatcher constructor.
func TestNewDispatcher(t *testing.T) {
	t.Parallel()

	noop := TreeCrawlerFunc(func(context.Context, string) (model.CommentTree, error) {
		return model.Section(nil), nil
	})

	t.Run("creates dispatcher with defaults", func(t *testing.T) {
		t.Parallel()

		d := NewDispatcher(noop)
		if d.Concurrency() != DefaultConcurrency {
			t.Errorf("expected default concurrency %d, got %d", DefaultConcurrency, d.Concurrency())
		}
		if d.logger == nil {
			t.Error("expected non-nil logger")
		}
	})

	t.Run("applies WithConcurrency option", func(t *testing.T) {
		t.Parallel()

		if d := NewDispatcher(noop, WithConcurrency(8)); d.Concurrency() != 8 {
			t.Errorf("expected concurrency 8, got %d", d.Concurrency())
		}
	})

	t.Run("ignores non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		if d := NewDispatcher(noop, WithConcurrency(0)); d.Concurrency() != DefaultConcurrency {
			t.Errorf("expected default concurrency, got %d", d.Concurrency())
		}
	})
}

// TestDispatcherDispatch tests ordering, isolation and bounds of a batch.
func TestDispatcherDispatch(t *testing.T) {
	t.Parallel()

	t.Run("results follow input order with failures in place", func(t *testing.T) {
		t.Parallel()

		errB := errors.New("b failed")
		crawler := TreeCrawlerFunc(func(_ context.Context, url string) (model.CommentTree, error) {
			switch url {
			case "A":
				time.Sleep(40 * time.Millisecond)
				return model.Section([]model.Comment{{Author: "a"}}), nil
			case "B":
				return model.CommentTree{}, errB
			default:
				time.Sleep(5 * time.Millisecond)
				return model.NoSection(), nil
			}
		})

		batch := NewDispatcher(crawler, WithConcurrency(3)).Dispatch(context.Background(), articles("A", "B", "C"))

		if len(batch.Outcomes) != 3 {
			t.Fatalf("expected 3 outcomes, got %d", len(batch.Outcomes))
		}
		for i, want := range []string{"A", "B", "C"} {
			if batch.Outcomes[i].Article.URL != want {
				t.Errorf("outcome %d belongs to %q, want %q", i, batch.Outcomes[i].Article.URL, want)
			}
		}
		if batch.Outcomes[0].Failed() || batch.Outcomes[0].Tree.Count() != 1 {
			t.Errorf("unexpected A outcome: %+v", batch.Outcomes[0])
		}
		if !errors.Is(batch.Outcomes[1].Err, errB) {
			t.Errorf("expected B error, got %v", batch.Outcomes[1].Err)
		}
		if batch.Outcomes[2].Failed() || batch.Outcomes[2].Tree.HasSection() {
			t.Errorf("unexpected C outcome: %+v", batch.Outcomes[2])
		}
		if batch.Elapsed <= 0 {
			t.Error("expected elapsed time to be measured")
		}
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var current, peak atomic.Int32
		crawler := TreeCrawlerFunc(func(context.Context, string) (model.CommentTree, error) {
			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			current.Add(-1)
			return model.Section(nil), nil
		})

		in := articles("1", "2", "3", "4", "5", "6", "7", "8", "9", "10")
		batch := NewDispatcher(crawler, WithConcurrency(3)).Dispatch(context.Background(), in)

		if len(batch.Outcomes) != len(in) {
			t.Fatalf("expected %d outcomes, got %d", len(in), len(batch.Outcomes))
		}
		if p := peak.Load(); p > 3 || p < 1 {
			t.Errorf("expected peak concurrency between 1 and 3, got %d", p)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		called := false
		crawler := TreeCrawlerFunc(func(context.Context, string) (model.CommentTree, error) {
			called = true
			return model.Section(nil), nil
		})

		batch := NewDispatcher(crawler).Dispatch(context.Background(), nil)
		if len(batch.Outcomes) != 0 {
			t.Errorf("expected no outcomes, got %d", len(batch.Outcomes))
		}
		if called {
			t.Error("expected crawler not to be called")
		}
	})

	t.Run("hook sees every index", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		seen := make(map[int]string)
		crawler := TreeCrawlerFunc(func(context.Context, string) (model.CommentTree, error) {
			return model.Section(nil), nil
		})
		hook := func(i int, o model.ArticleOutcome) {
			mu.Lock()
			defer mu.Unlock()
			seen[i] = o.Article.URL
		}

		NewDispatcher(crawler, WithOutcomeHook(hook)).Dispatch(context.Background(), articles("x", "y", "z"))

		if len(seen) != 3 || seen[0] != "x" || seen[1] != "y" || seen[2] != "z" {
			t.Errorf("unexpected hook calls: %v", seen)
		}
	})

	t.Run("canceled context fails remaining articles", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		crawler := TreeCrawlerFunc(func(context.Context, string) (model.CommentTree, error) {
			calls.Add(1)
			return model.Section(nil), nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		batch := NewDispatcher(crawler).Dispatch(ctx, articles("a", "b"))

		for i, o := range batch.Outcomes {
			if !errors.Is(o.Err, context.Canceled) {
				t.Errorf("outcome %d: expected context.Canceled, got %v", i, o.Err)
			}
		}
		if calls.Load() != 0 {
			t.Errorf("expected no crawls, got %d", calls.Load())
		}
	})
}

// TestBatchArticlesPerSecond tests throughput accounting.
func TestBatchArticlesPerSecond(t *testing.T) {
	t.Parallel()

	b := &Batch{Outcomes: make([]model.ArticleOutcome, 10), Elapsed: 4 * time.Second}
	if got := b.ArticlesPerSecond(); got != 2.5 {
		t.Errorf("expected 2.5, got %f", got)
	}
	if got := (&Batch{}).ArticlesPerSecond(); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
}
