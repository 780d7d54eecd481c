package slog

import (
	"log/slog"

	"github.com/fwojciec/newscrawl"
)

// Ensure LoggingListingExtractor implements newscrawl.ListingExtractor.
var _ newscrawl.ListingExtractor = (*LoggingListingExtractor)(nil)

// LoggingListingExtractor wraps a ListingExtractor with debug logging.
type LoggingListingExtractor struct {
	next   newscrawl.ListingExtractor
	logger *slog.Logger
}

// NewLoggingListingExtractor creates a new LoggingListingExtractor.
func NewLoggingListingExtractor(next newscrawl.ListingExtractor, logger *slog.Logger) *LoggingListingExtractor {
	return &LoggingListingExtractor{next: next, logger: logger}
}

// ExtractListing delegates to the wrapped extractor and logs what it found.
func (e *LoggingListingExtractor) ExtractListing(pageURL, html string) (page *newscrawl.ListingPage, err error) {
	defer func() {
		var links int
		var next string
		if page != nil {
			links = len(page.ArticleLinks)
			next = page.NextPageLink
		}
		e.logger.Debug("listing",
			"url", pageURL,
			"links", links,
			"next", next,
			"err", err,
		)
	}()
	return e.next.ExtractListing(pageURL, html)
}
