package readability_test

import (
	"testing"

	"github.com/fwojciec/newscrawl"
	"github.com/fwojciec/newscrawl/mock"
	"github.com/fwojciec/newscrawl/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements newscrawl.ArticleExtractor at compile time.
var _ newscrawl.ArticleExtractor = (*readability.Extractor)(nil)

const storyHTML = `<!DOCTYPE html>
<html>
<head><title>Gold slips as dollar firms</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<p>Gold prices slipped on Tuesday as the dollar firmed ahead of the Federal Reserve's policy decision later this week.</p>
<p>Spot gold was down 0.4 percent, while silver fell 0.7 percent in early trade on the commodity exchange.</p>
</article>
<footer><p>Footer Copyright Notice</p></footer>
</body>
</html>`

func TestExtractor_MissesEmptyInput(t *testing.T) {
	t.Parallel()

	content, ok := readability.NewExtractor(nil).ExtractArticle("https://news.example.com/gold", "")

	assert.False(t, ok)
	assert.Nil(t, content)
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	content, ok := readability.NewExtractor(nil).ExtractArticle("https://news.example.com/gold", storyHTML)

	require.True(t, ok)
	assert.Equal(t, "Gold slips as dollar firms", content.Title)
}

func TestExtractor_ExtractsPlainText(t *testing.T) {
	t.Parallel()

	content, ok := readability.NewExtractor(nil).ExtractArticle("https://news.example.com/gold", storyHTML)

	require.True(t, ok)
	assert.Contains(t, content.Content, "Gold prices slipped on Tuesday")
	assert.NotContains(t, content.Content, "<p>")
	assert.NotContains(t, content.Content, "Home Nav Link")
}

func TestExtractor_UsesConverterForBody(t *testing.T) {
	t.Parallel()

	var gotURL, gotHTML string
	converter := &mock.Converter{
		ConvertFn: func(pageURL, html string) (string, error) {
			gotURL, gotHTML = pageURL, html
			return "converted body", nil
		},
	}

	content, ok := readability.NewExtractor(converter).ExtractArticle("https://news.example.com/gold", storyHTML)

	require.True(t, ok)
	assert.Equal(t, "converted body", content.Content)
	assert.Equal(t, "https://news.example.com/gold", gotURL)
	assert.Contains(t, gotHTML, "Spot gold was down")
}

func TestExtractor_FallsBackToTextWhenConverterFails(t *testing.T) {
	t.Parallel()

	converter := &mock.Converter{
		ConvertFn: func(_, _ string) (string, error) {
			return "", newscrawl.Errorf(newscrawl.EINVALID, "boom")
		},
	}

	content, ok := readability.NewExtractor(converter).ExtractArticle("https://news.example.com/gold", storyHTML)

	require.True(t, ok)
	assert.Contains(t, content.Content, "Spot gold was down")
}
