package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newscrawl"
)

// ParseListing returns the article links and next-page link of a listing page.
// Article rows without a usable hyperlink are skipped.
func ParseListing(doc *goquery.Document, m Markers) *newscrawl.ListingPage {
	page := &newscrawl.ListingPage{}

	doc.Find(m.ArticleItem).Each(func(_ int, item *goquery.Selection) {
		// Only the first anchor of a row is considered.
		href, ok := item.Find("a").First().Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		page.ArticleLinks = append(page.ArticleLinks, strings.TrimSpace(href))
	})

	page.NextPageLink = nextPageLink(doc, m)
	return page
}

// nextPageLink reads the href of the element wrapping the pagination symbol.
func nextPageLink(doc *goquery.Document, m Markers) string {
	marker := doc.Find(m.NextContainer).FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return strings.TrimSpace(sel.Text()) == m.NextSymbol
	}).First()
	if marker.Length() == 0 {
		return ""
	}

	href, ok := marker.Parent().Attr("href")
	if !ok {
		return ""
	}
	return strings.TrimSpace(href)
}
