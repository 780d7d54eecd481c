package newscrawl

import "context"

// Fetcher retrieves raw page content from URLs.
type Fetcher interface {
	// Fetch retrieves the body of the page at url.
	// Transport failures are reported as *FetchError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}
