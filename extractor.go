package newscrawl

// ListingPage is the parse result of one listing page.
type ListingPage struct {
	// ArticleLinks holds article hrefs in document order, as written in the page.
	ArticleLinks []string

	// NextPageLink is the href of the pagination control, empty when absent.
	NextPageLink string
}

// HasNext reports whether the page links to a following listing page.
func (p *ListingPage) HasNext() bool {
	return p != nil && p.NextPageLink != ""
}

// ListingExtractor parses listing pages.
type ListingExtractor interface {
	// ExtractListing returns the article links and next-page link of a listing page.
	// An error is returned only when the document cannot be parsed at all;
	// a page without markers yields an empty ListingPage.
	ExtractListing(pageURL string, html string) (*ListingPage, error)
}

// ArticleExtractor parses article pages.
type ArticleExtractor interface {
	// ExtractArticle returns the title and body of an article page.
	// The bool result is false when the page holds no recognizable article.
	ExtractArticle(pageURL string, html string) (*ArticleContent, bool)
}
