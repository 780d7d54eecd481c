package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/newscrawl"
	main "github.com/fwojciec/newscrawl/cmd/newscrawl"
	"github.com/fwojciec/newscrawl/crawl"
	"github.com/fwojciec/newscrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oneArticleCrawler returns a crawler whose category lists one article.
func oneArticleCrawler() *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return url, nil
			},
		},
		Listings: &mock.ListingExtractor{
			ExtractListingFn: func(_, _ string) (*newscrawl.ListingPage, error) {
				return &newscrawl.ListingPage{ArticleLinks: []string{"/a"}}, nil
			},
		},
		Articles: &mock.ArticleExtractor{
			ExtractArticleFn: func(_, _ string) (*newscrawl.ArticleContent, bool) {
				return &newscrawl.ArticleContent{Title: "A", Content: "Body"}, true
			},
		},
	}
}

func testDeps(ctx context.Context, stdout io.Writer, crawler *crawl.Crawler, sink newscrawl.ArticleSink) *main.Dependencies {
	return &main.Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  &bytes.Buffer{},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:     func() time.Time { return time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC) },
		Crawler: crawler,
		Sink:    sink,
	}
}

var testCategories = []newscrawl.Category{{Name: "news", SeedURL: "https://example.com/news"}}

func TestCrawlCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("persists collected articles", func(t *testing.T) {
		t.Parallel()

		var persisted []*newscrawl.Article
		var capturedAt time.Time
		sink := &mock.ArticleSink{
			PersistFn: func(_ context.Context, captured time.Time, articles []*newscrawl.Article) (string, error) {
				capturedAt = captured
				persisted = articles
				return "out/news_2024-05-17.parquet", nil
			},
		}
		stdout := &bytes.Buffer{}

		cmd := &main.CrawlCmd{Categories: testCategories}
		err := cmd.Run(testDeps(context.Background(), stdout, oneArticleCrawler(), sink))

		require.NoError(t, err)
		require.Len(t, persisted, 1)
		assert.Equal(t, "https://example.com/a", persisted[0].SourceURL)
		assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), capturedAt)
		assert.Contains(t, stdout.String(), "Total articles scraped: 1")
		assert.Contains(t, stdout.String(), "out/news_2024-05-17.parquet")
	})

	t.Run("dates every record with the run's capture day", func(t *testing.T) {
		t.Parallel()

		var persisted []*newscrawl.Article
		var capturedAt time.Time
		sink := &mock.ArticleSink{
			PersistFn: func(_ context.Context, captured time.Time, articles []*newscrawl.Article) (string, error) {
				capturedAt = captured
				persisted = articles
				return "out", nil
			},
		}
		deps := testDeps(context.Background(), &bytes.Buffer{}, oneArticleCrawler(), sink)
		calls := 0
		deps.Now = func() time.Time {
			calls++
			// The run starts a second before midnight; later readings fall on the next day.
			return time.Date(2024, 5, 17, 23, 59, 59, 0, time.UTC).Add(time.Duration(calls-1) * time.Hour)
		}

		cmd := &main.CrawlCmd{Categories: testCategories}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, persisted, 1)
		assert.Equal(t, 1, calls)
		assert.Equal(t, "2024-05-17", capturedAt.Format(newscrawl.DateLayout))
		assert.Equal(t, "2024-05-17", persisted[0].Date())
	})

	t.Run("does not persist an empty run", func(t *testing.T) {
		t.Parallel()

		crawler := oneArticleCrawler()
		crawler.Listings = &mock.ListingExtractor{
			ExtractListingFn: func(_, _ string) (*newscrawl.ListingPage, error) {
				return &newscrawl.ListingPage{}, nil
			},
		}
		sink := &mock.ArticleSink{
			PersistFn: func(_ context.Context, _ time.Time, _ []*newscrawl.Article) (string, error) {
				t.Error("persist should not be called")
				return "", nil
			},
		}
		stdout := &bytes.Buffer{}

		cmd := &main.CrawlCmd{Categories: testCategories}
		err := cmd.Run(testDeps(context.Background(), stdout, crawler, sink))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Total articles scraped: 0")
	})

	t.Run("returns persistence failure", func(t *testing.T) {
		t.Parallel()

		sink := &mock.ArticleSink{
			PersistFn: func(_ context.Context, _ time.Time, _ []*newscrawl.Article) (string, error) {
				return "", errors.New("disk full")
			},
		}

		cmd := &main.CrawlCmd{Categories: testCategories}
		err := cmd.Run(testDeps(context.Background(), &bytes.Buffer{}, oneArticleCrawler(), sink))

		require.EqualError(t, err, "disk full")
	})

	t.Run("saves partial result when interrupted", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		crawler := oneArticleCrawler()
		crawler.Articles = &mock.ArticleExtractor{
			ExtractArticleFn: func(_, _ string) (*newscrawl.ArticleContent, bool) {
				cancel()
				return &newscrawl.ArticleContent{Title: "A"}, true
			},
		}
		var persistCtxErr error
		persisted := 0
		sink := &mock.ArticleSink{
			PersistFn: func(ctx context.Context, _ time.Time, articles []*newscrawl.Article) (string, error) {
				persistCtxErr = ctx.Err()
				persisted = len(articles)
				return "out", nil
			},
		}

		cmd := &main.CrawlCmd{Categories: testCategories}
		err := cmd.Run(testDeps(ctx, &bytes.Buffer{}, crawler, sink))

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, persisted)
		assert.NoError(t, persistCtxErr)
	})
}
