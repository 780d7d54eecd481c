package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newscrawl"
)

// Compile-time interface verification.
var (
	_ newscrawl.ListingExtractor = (*Extractor)(nil)
	_ newscrawl.ArticleExtractor = (*Extractor)(nil)
)

// Extractor parses listing and article pages with site-specific markers.
type Extractor struct {
	registry *Registry
}

// NewExtractor creates an Extractor that looks up markers in registry.
func NewExtractor(registry *Registry) *Extractor {
	return &Extractor{registry: registry}
}

// NewMoneycontrolExtractor creates an Extractor using MoneycontrolMarkers for every host.
func NewMoneycontrolExtractor() *Extractor {
	return NewExtractor(NewRegistry(MoneycontrolMarkers()))
}

// ExtractListing parses a listing page.
func (e *Extractor) ExtractListing(pageURL string, html string) (*newscrawl.ListingPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newscrawl.Errorf(newscrawl.EINVALID, "failed to parse HTML: %v", err)
	}
	return ParseListing(doc, e.registry.ForURL(pageURL)), nil
}

// ExtractArticle parses an article page.
// Documents that cannot be parsed are reported as a miss.
func (e *Extractor) ExtractArticle(pageURL string, html string) (*newscrawl.ArticleContent, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}
	return ParseArticle(doc, e.registry.ForURL(pageURL))
}
