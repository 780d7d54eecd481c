package crawl

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/newscrawl"
)

// Walker drives one category's listing pages forward until a page has no
// next-page link, fetching the articles each page links to.
type Walker struct {
	Fetcher     newscrawl.Fetcher
	Extractor   newscrawl.ListingExtractor
	Seen        newscrawl.URLSet
	Pool        *Pool
	Collector   *Collector
	RateLimiter newscrawl.DomainLimiter // optional
	RetryDelays []time.Duration
}

// WalkResult summarizes one category walk.
type WalkResult struct {
	Pages      int // listing pages parsed
	Discovered int // article links found
	Dispatched int // links not seen before, sent to the pool
	Saved      int // articles added to the collector
}

// Walk visits the category's listing pages in order, starting at its seed URL.
// The walk ends when a page has no next-page link, when a listing page cannot
// be fetched or parsed, when a listing URL repeats, or when ctx is canceled.
// None of these are errors; failures are reported through progress.
func (w *Walker) Walk(ctx context.Context, category newscrawl.Category, progress ProgressFunc) WalkResult {
	var result WalkResult
	visited := make(map[string]struct{})

	progress.emit(ProgressEvent{
		Type:     ProgressCategoryStarted,
		Category: category.Name,
		URL:      category.SeedURL,
	})

	for pageURL := category.SeedURL; pageURL != ""; {
		if ctx.Err() != nil {
			break
		}
		if _, ok := visited[pageURL]; ok {
			break
		}
		visited[pageURL] = struct{}{}

		page, err := w.listPage(ctx, category.Name, pageURL, progress)
		if err != nil {
			progress.emit(ProgressEvent{
				Type:     ProgressListingFailed,
				Category: category.Name,
				URL:      pageURL,
				Page:     result.Pages + 1,
				Error:    err,
			})
			break
		}
		result.Pages++

		links := resolveLinks(pageURL, page.ArticleLinks)
		var fresh []string
		for _, link := range links {
			// Offer before dispatch so no URL is ever scheduled twice.
			if w.Seen.Offer(link) {
				fresh = append(fresh, link)
			}
		}
		result.Discovered += len(links)
		result.Dispatched += len(fresh)

		progress.emit(ProgressEvent{
			Type:     ProgressPageListed,
			Category: category.Name,
			URL:      pageURL,
			Page:     result.Pages,
			Found:    len(links),
			New:      len(fresh),
		})

		articles := w.Pool.FetchAll(ctx, category.Name, fresh, progress)
		result.Saved += w.Collector.Add(articles...)

		next := ""
		if page.HasNext() {
			next = resolveLink(pageURL, page.NextPageLink)
		}
		pageURL = next
	}

	progress.emit(ProgressEvent{
		Type:     ProgressCategoryFinished,
		Category: category.Name,
		Page:     result.Pages,
		Found:    result.Discovered,
		New:      result.Dispatched,
	})

	return result
}

// listPage fetches and parses one listing page.
func (w *Walker) listPage(ctx context.Context, category, pageURL string, progress ProgressFunc) (*newscrawl.ListingPage, error) {
	if err := waitForDomain(ctx, w.RateLimiter, pageURL); err != nil {
		return nil, err
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
	html, err := FetchWithRetry(ctx, pageURL, w.Fetcher.Fetch, w.RetryDelays, onRetry)
	if err != nil {
		return nil, err
	}

	page, err := w.Extractor.ExtractListing(pageURL, html)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, newscrawl.Errorf(newscrawl.EINVALID, "no listing parsed from %s", pageURL)
	}
	return page, nil
}

// resolveLinks resolves hrefs against pageURL, dropping unusable ones.
func resolveLinks(pageURL string, hrefs []string) []string {
	links := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		if link := resolveLink(pageURL, href); link != "" {
			links = append(links, link)
		}
	}
	return links
}

// resolveLink returns href as an absolute http(s) URL without fragment.
// Returns an empty string if href cannot be used.
func resolveLink(pageURL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	resolved.Fragment = ""
	return resolved.String()
}
