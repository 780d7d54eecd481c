// Package trafilatura provides a generic article extractor for news sites
// without known structural markers.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/newscrawl"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements newscrawl.ArticleExtractor at compile time.
var _ newscrawl.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract an article's headline and text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticle returns the metadata title and main plain-text content.
// Pages without a detectable title are reported as a miss.
func (e *Extractor) ExtractArticle(pageURL string, rawHTML string) (*newscrawl.ArticleContent, bool) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, false
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result == nil {
		return nil, false
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		return nil, false
	}

	return &newscrawl.ArticleContent{
		Title:   title,
		Content: strings.TrimSpace(result.ContentText),
	}, true
}
