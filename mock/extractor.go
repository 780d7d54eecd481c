package mock

import "github.com/fwojciec/newscrawl"

// Compile-time interface verification.
var (
	_ newscrawl.ListingExtractor = (*ListingExtractor)(nil)
	_ newscrawl.ArticleExtractor = (*ArticleExtractor)(nil)
)

// ListingExtractor is a mock implementation of newscrawl.ListingExtractor.
type ListingExtractor struct {
	ExtractListingFn func(pageURL, html string) (*newscrawl.ListingPage, error)
}

func (e *ListingExtractor) ExtractListing(pageURL, html string) (*newscrawl.ListingPage, error) {
	return e.ExtractListingFn(pageURL, html)
}

// ArticleExtractor is a mock implementation of newscrawl.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(pageURL, html string) (*newscrawl.ArticleContent, bool)
}

func (e *ArticleExtractor) ExtractArticle(pageURL, html string) (*newscrawl.ArticleContent, bool) {
	return e.ExtractArticleFn(pageURL, html)
}
