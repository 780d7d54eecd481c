package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/newscrawl"
	"github.com/fwojciec/newscrawl/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	// Every record carries the run's capture date, even across midnight.
	captured := deps.Now()
	deps.Crawler.Now = func() time.Time { return captured }

	result, runErr := deps.Crawler.Run(deps.Ctx, c.Categories, logProgress(deps.Logger))
	if result == nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newscrawl.ErrorMessage(runErr))
		return runErr
	}

	fmt.Fprintf(deps.Stdout, "Total articles scraped: %d\n", len(result.Articles))
	if result.Failed > 0 || result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, "Failed: %d, skipped: %d\n", result.Failed, result.Skipped)
	}

	if len(result.Articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles to save")
		return runErr
	}

	// An interrupted run still saves what it collected.
	path, err := deps.Sink.Persist(context.WithoutCancel(deps.Ctx), captured, result.Articles)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error saving: %s\n", newscrawl.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %d articles to %s\n", len(result.Articles), path)

	return runErr
}

// logProgress renders crawl progress events as log records.
func logProgress(logger *slog.Logger) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressCategoryStarted:
			logger.Info(e.Type.String(), "category", e.Category, "url", e.URL)
		case crawl.ProgressPageListed:
			logger.Info(e.Type.String(), "category", e.Category, "page", e.Page, "found", e.Found, "new", e.New)
		case crawl.ProgressListingFailed:
			logger.Warn(e.Type.String(), "category", e.Category, "page", e.Page, "url", e.URL, "err", e.Error)
		case crawl.ProgressFailed:
			logger.Warn(e.Type.String(), "category", e.Category, "url", e.URL, "err", e.Error)
		case crawl.ProgressRetry:
			logger.Debug(e.Type.String(), "url", e.URL, "attempt", e.Attempt, "err", e.Error)
		case crawl.ProgressCategoryFinished:
			logger.Info(e.Type.String(), "category", e.Category, "pages", e.Page, "found", e.Found, "new", e.New)
		default:
			logger.Debug(e.Type.String(), "category", e.Category, "url", e.URL)
		}
	}
}
