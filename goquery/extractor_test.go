package goquery_test

import (
	"testing"

	"github.com/fwojciec/newscrawl"
	"github.com/fwojciec/newscrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time verification of the extractor interfaces.
var (
	_ newscrawl.ListingExtractor = (*goquery.Extractor)(nil)
	_ newscrawl.ArticleExtractor = (*goquery.Extractor)(nil)
)

func TestExtractor_ExtractListing(t *testing.T) {
	t.Parallel()

	t.Run("parses listing HTML with default markers", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewMoneycontrolExtractor()
		page, err := e.ExtractListing("https://www.moneycontrol.com/news/business",
			`<li class="clearfix"><a href="https://www.moneycontrol.com/news/business/a.html">A</a></li>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://www.moneycontrol.com/news/business/a.html"}, page.ArticleLinks)
		assert.False(t, page.HasNext())
	})

	t.Run("selects markers by page host", func(t *testing.T) {
		t.Parallel()

		registry := goquery.NewRegistry(goquery.MoneycontrolMarkers())
		registry.Register("www.othernews.example", goquery.Markers{
			ArticleItem:   "article.story",
			NextContainer: "i",
			NextSymbol:    ">",
			Title:         "h1.headline",
			Body:          "section.body",
			Paragraph:     "p",
		})
		e := goquery.NewExtractor(registry)

		html := `<article class="story"><a href="/s1">S1</a></article>
<li class="clearfix"><a href="/mc">MC</a></li>
<a href="/p2"><i>&gt;</i></a>`

		page, err := e.ExtractListing("https://othernews.example/world", html)
		require.NoError(t, err)
		assert.Equal(t, []string{"/s1"}, page.ArticleLinks)
		assert.Equal(t, "/p2", page.NextPageLink)

		page, err = e.ExtractListing("https://www.moneycontrol.com/news/markets", html)
		require.NoError(t, err)
		assert.Equal(t, []string{"/mc"}, page.ArticleLinks)
	})
}

func TestExtractor_ExtractArticle(t *testing.T) {
	t.Parallel()

	e := goquery.NewMoneycontrolExtractor()

	content, ok := e.ExtractArticle("https://www.moneycontrol.com/news/a.html",
		`<h1 class="article_title artTitle">Title</h1><div class="content_wrapper arti-flow" id="contentdata"><p>One</p><p>Two</p></div>`)
	require.True(t, ok)
	assert.Equal(t, "Title", content.Title)
	assert.Equal(t, "One\nTwo", content.Content)

	_, ok = e.ExtractArticle("https://www.moneycontrol.com/news/b.html", "")
	assert.False(t, ok)
}

func TestRegistry_ForURL(t *testing.T) {
	t.Parallel()

	fallback := goquery.MoneycontrolMarkers()
	custom := goquery.Markers{ArticleItem: "div.row"}
	registry := goquery.NewRegistry(fallback)
	registry.Register("News.Example.com", custom)

	assert.Equal(t, custom, registry.ForURL("https://www.news.example.com/a"))
	assert.Equal(t, custom, registry.ForURL("http://news.example.com:8080/a"))
	assert.Equal(t, fallback, registry.ForURL("https://elsewhere.example.com/a"))
	assert.Equal(t, fallback, registry.ForURL("://bad"))
}
