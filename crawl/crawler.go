package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/newscrawl"
	"golang.org/x/sync/errgroup"
)

// Crawler walks a set of categories and gathers their articles.
type Crawler struct {
	Fetcher     newscrawl.Fetcher
	Listings    newscrawl.ListingExtractor
	Articles    newscrawl.ArticleExtractor
	Seen        newscrawl.URLSet        // defaults to an exact SeenSet
	RateLimiter newscrawl.DomainLimiter // optional
	Collector   *Collector              // defaults to a new Collector

	// Concurrency bounds article fetches per listing page.
	Concurrency int
	// CategoryConcurrency bounds how many categories are walked at once.
	// Values below 2 walk categories one after another.
	CategoryConcurrency int
	RetryDelays         []time.Duration
	Now                 func() time.Time
}

// Result summarizes a crawl run.
type Result struct {
	Categories int
	Pages      int
	Saved      int
	Failed     int
	Skipped    int
	Articles   []*newscrawl.Article
}

// Run walks every category and returns everything collected.
//
// Per-page and per-article failures never abort the run; they are counted
// and reported through progress. An error is returned only for invalid input,
// or ctx's error if the run was canceled, in which case the partial result
// is returned with it.
func (c *Crawler) Run(ctx context.Context, categories []newscrawl.Category, progress ProgressFunc) (*Result, error) {
	if len(categories) == 0 {
		return nil, newscrawl.Errorf(newscrawl.EINVALID, "no categories to crawl")
	}
	for _, cat := range categories {
		if _, err := newscrawl.CategoryFromURL(cat.SeedURL); err != nil {
			return nil, err
		}
	}

	seen := c.Seen
	if seen == nil {
		seen = NewSeenSet(0)
	}
	collector := c.Collector
	if collector == nil {
		collector = NewCollector()
	}
	limit := c.CategoryConcurrency
	if limit < 1 {
		limit = 1
	}

	result := &Result{}
	var mu sync.Mutex

	// Count failures as they stream by, then hand the event on.
	progress = progress.synchronized()
	counting := func(event ProgressEvent) {
		mu.Lock()
		switch event.Type {
		case ProgressFailed:
			result.Failed++
		case ProgressSkipped:
			result.Skipped++
		}
		mu.Unlock()
		progress.emit(event)
	}

	pool := &Pool{
		Fetcher:     c.Fetcher,
		Extractor:   c.Articles,
		RateLimiter: c.RateLimiter,
		Concurrency: c.Concurrency,
		RetryDelays: c.RetryDelays,
		Now:         c.Now,
	}
	walker := &Walker{
		Fetcher:     c.Fetcher,
		Extractor:   c.Listings,
		Seen:        seen,
		Pool:        pool,
		Collector:   collector,
		RateLimiter: c.RateLimiter,
		RetryDelays: c.RetryDelays,
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for _, cat := range categories {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			walked := walker.Walk(ctx, cat, counting)
			mu.Lock()
			result.Categories++
			result.Pages += walked.Pages
			result.Saved += walked.Saved
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	result.Articles = collector.Articles()
	return result, ctx.Err()
}
