package newscrawl

import "context"

// URLSet records URLs already scheduled for fetching during a run.
// Implementations must be safe for concurrent use.
type URLSet interface {
	// Offer adds url to the set.
	// Returns true if url was not present before, i.e. it should be fetched.
	Offer(url string) bool

	// Len returns the number of URLs accepted so far.
	Len() int
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
