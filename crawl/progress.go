// Package crawl walks paginated news listings and fetches the articles
// they link to with a bounded worker pool.
package crawl

import "sync"

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type     ProgressType
	Category string
	URL      string

	// Page is the 1-based listing page number within the category.
	Page int
	// Found is the number of article links on a listing page.
	Found int
	// New is the number of those links not seen before in the run.
	New int
	// Attempt is the upcoming attempt number of a retry.
	Attempt int

	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressCategoryStarted is emitted before the first listing page of a category.
	ProgressCategoryStarted ProgressType = iota
	// ProgressPageListed is emitted after a listing page is parsed.
	ProgressPageListed
	// ProgressListingFailed is emitted when a listing page cannot be fetched or parsed;
	// the category walk ends.
	ProgressListingFailed
	// ProgressCompleted is emitted for each extracted article.
	ProgressCompleted
	// ProgressFailed is emitted when an article fetch fails.
	ProgressFailed
	// ProgressSkipped is emitted when an article page holds no recognizable article.
	ProgressSkipped
	// ProgressRetry is emitted before a fetch is retried.
	ProgressRetry
	// ProgressCategoryFinished is emitted when a category walk ends.
	ProgressCategoryFinished
)

// String returns a short label for the event type.
func (t ProgressType) String() string {
	switch t {
	case ProgressCategoryStarted:
		return "category started"
	case ProgressPageListed:
		return "page listed"
	case ProgressListingFailed:
		return "listing failed"
	case ProgressCompleted:
		return "article saved"
	case ProgressFailed:
		return "article failed"
	case ProgressSkipped:
		return "article skipped"
	case ProgressRetry:
		return "retry"
	case ProgressCategoryFinished:
		return "category finished"
	default:
		return "unknown"
	}
}

// ProgressFunc is a callback for reporting crawl progress.
// Calls are never concurrent.
type ProgressFunc func(event ProgressEvent)

func (f ProgressFunc) emit(event ProgressEvent) {
	if f != nil {
		f(event)
	}
}

// synchronized returns a ProgressFunc that serializes calls to f.
func (f ProgressFunc) synchronized() ProgressFunc {
	if f == nil {
		return nil
	}
	var mu sync.Mutex
	return func(event ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		f(event)
	}
}
