package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newscrawl"
)

// ParseArticle returns the headline and body text of an article page.
// The bool result is false when no non-blank headline is present.
// A missing body container yields empty content.
func ParseArticle(doc *goquery.Document, m Markers) (*newscrawl.ArticleContent, bool) {
	title := strings.TrimSpace(doc.Find(m.Title).First().Text())
	if title == "" {
		return nil, false
	}

	body := doc.Find(m.Body).First()
	if body.Length() == 0 {
		return &newscrawl.ArticleContent{Title: title}, true
	}

	var paragraphs []string
	body.Find(m.Paragraph).Each(func(_ int, p *goquery.Selection) {
		paragraphs = append(paragraphs, strings.TrimSpace(p.Text()))
	})

	return &newscrawl.ArticleContent{
		Title:   title,
		Content: strings.Join(paragraphs, "\n"),
	}, true
}
