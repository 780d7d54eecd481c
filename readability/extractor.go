// Package readability provides a Readability-based article extractor.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/newscrawl"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements newscrawl.ArticleExtractor at compile time.
var _ newscrawl.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract an article's headline and body.
// With a Converter the body is rendered as Markdown; otherwise it is plain text.
type Extractor struct {
	converter newscrawl.Converter
}

// NewExtractor creates a new Extractor. converter may be nil.
func NewExtractor(converter newscrawl.Converter) *Extractor {
	return &Extractor{converter: converter}
}

// ExtractArticle returns the article title and body.
func (e *Extractor) ExtractArticle(pageURL string, rawHTML string) (*newscrawl.ArticleContent, bool) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, false
	}

	var u *url.URL
	if parsed, err := url.Parse(pageURL); err == nil && parsed.IsAbs() {
		u = parsed
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, false
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		return nil, false
	}

	content := strings.TrimSpace(article.TextContent)
	if e.converter != nil && strings.TrimSpace(article.Content) != "" {
		md, err := e.converter.Convert(pageURL, article.Content)
		if err == nil {
			content = md
		}
	}

	return &newscrawl.ArticleContent{Title: title, Content: content}, true
}
