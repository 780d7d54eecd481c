package slog_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/newscrawl"
	"github.com/fwojciec/newscrawl/mock"
	ncslog "github.com/fwojciec/newscrawl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingListingExtractor_ExtractListing(t *testing.T) {
	t.Parallel()

	t.Run("logs link count and next page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ListingExtractor{
			ExtractListingFn: func(_, _ string) (*newscrawl.ListingPage, error) {
				return &newscrawl.ListingPage{
					ArticleLinks: []string{"/a", "/b"},
					NextPageLink: "/page2",
				}, nil
			},
		}

		e := ncslog.NewLoggingListingExtractor(inner, debugLogger(&buf))
		page, err := e.ExtractListing("https://example.com/news", "<html></html>")

		require.NoError(t, err)
		assert.Len(t, page.ArticleLinks, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=listing")
		assert.Contains(t, output, "links=2")
		assert.Contains(t, output, "next=/page2")
	})

	t.Run("logs zero links on error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ListingExtractor{
			ExtractListingFn: func(_, _ string) (*newscrawl.ListingPage, error) {
				return nil, newscrawl.Errorf(newscrawl.EINVALID, "bad markup")
			},
		}

		e := ncslog.NewLoggingListingExtractor(inner, debugLogger(&buf))
		_, err := e.ExtractListing("https://example.com/news", "")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "links=0")
	})
}
