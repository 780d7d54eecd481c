package crawl

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/newscrawl"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of concurrent article fetches per batch.
const DefaultConcurrency = 4

// Pool fetches and extracts batches of article URLs with bounded concurrency.
type Pool struct {
	Fetcher     newscrawl.Fetcher
	Extractor   newscrawl.ArticleExtractor
	RateLimiter newscrawl.DomainLimiter // optional
	Concurrency int
	RetryDelays []time.Duration // nil means a single attempt

	// Now returns the capture time; defaults to time.Now.
	Now func() time.Time
}

// fetchResult holds the outcome of processing a single article URL.
type fetchResult struct {
	url     string
	article *newscrawl.Article
	miss    bool
	err     error
}

// FetchAll fetches and extracts every URL and returns the articles that
// were extracted successfully, in no particular order. A failure for one
// URL does not affect the others. FetchAll returns only after all work
// has finished. Once ctx is canceled no further URLs are started.
//
// The category label is attached to progress events.
func (p *Pool) FetchAll(ctx context.Context, category string, urls []string, progress ProgressFunc) []*newscrawl.Article {
	if len(urls) == 0 {
		return nil
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	progress = progress.synchronized()

	resultCh := make(chan fetchResult, len(urls))

	var g errgroup.Group
	g.SetLimit(concurrency)

	go func() {
		for _, u := range urls {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				resultCh <- p.process(ctx, category, u, progress)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var articles []*newscrawl.Article
	for result := range resultCh {
		switch {
		case result.err != nil:
			progress.emit(ProgressEvent{
				Type:     ProgressFailed,
				Category: category,
				URL:      result.url,
				Error:    result.err,
			})
		case result.miss:
			progress.emit(ProgressEvent{
				Type:     ProgressSkipped,
				Category: category,
				URL:      result.url,
			})
		default:
			articles = append(articles, result.article)
			progress.emit(ProgressEvent{
				Type:     ProgressCompleted,
				Category: category,
				URL:      result.url,
			})
		}
	}

	return articles
}

// process fetches and extracts a single article URL.
func (p *Pool) process(ctx context.Context, category, rawURL string, progress ProgressFunc) fetchResult {
	result := fetchResult{url: rawURL}

	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	if err := waitForDomain(ctx, p.RateLimiter, rawURL); err != nil {
		result.err = err
		return result
	}

	onRetry := func(u string, attempt int, err error) {
		progress.emit(ProgressEvent{
			Type:     ProgressRetry,
			Category: category,
			URL:      u,
			Attempt:  attempt,
			Error:    err,
		})
	}
	html, err := FetchWithRetry(ctx, rawURL, p.Fetcher.Fetch, p.RetryDelays, onRetry)
	if err != nil {
		result.err = err
		return result
	}

	content, ok, err := extractArticle(p.Extractor, rawURL, html)
	if err != nil {
		result.err = err
		return result
	}
	if !ok {
		result.miss = true
		return result
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	result.article = &newscrawl.Article{
		Title:       content.Title,
		Content:     content.Content,
		CaptureDate: newscrawl.CaptureDay(now()),
		SourceURL:   rawURL,
	}
	return result
}

// extractArticle runs the extractor, turning a panic on malformed markup
// into an error for this URL only.
func extractArticle(e newscrawl.ArticleExtractor, pageURL, html string) (content *newscrawl.ArticleContent, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			content, ok = nil, false
			err = newscrawl.Errorf(newscrawl.EINTERNAL, "extracting %s: %v", pageURL, r)
		}
	}()
	content, ok = e.ExtractArticle(pageURL, html)
	if ok && content == nil {
		ok = false
	}
	return content, ok, nil
}

// waitForDomain applies the optional per-domain limit for rawURL.
func waitForDomain(ctx context.Context, limiter newscrawl.DomainLimiter, rawURL string) error {
	if limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return &newscrawl.FetchError{URL: rawURL, Err: fmt.Errorf("parsing URL: %w", err)}
	}
	return limiter.Wait(ctx, u.Hostname())
}
